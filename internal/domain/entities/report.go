package entities

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report aggregates the outcomes of a provisioning run.
type Report struct {
	Designation string
	Namespace   string
	DryRun      bool
	Entries     []EntryOutcome
}

// Completed counts the entries that reached the done state.
func (r *Report) Completed() int {
	count := 0
	for _, entry := range r.Entries {
		if entry.Completed() {
			count++
		}
	}
	return count
}

// Skipped counts the entries that ended in a skip state.
func (r *Report) Skipped() int {
	count := 0
	for _, entry := range r.Entries {
		switch entry.State {
		case StateSkippedNoIdentities, StateSkippedCreateFailed, StateSkippedExists:
			count++
		}
	}
	return count
}

type reportDocument struct {
	Designation string          `yaml:"designation"`
	Namespace   string          `yaml:"namespace"`
	DryRun      bool            `yaml:"dry_run"`
	Completed   int             `yaml:"completed"`
	Skipped     int             `yaml:"skipped"`
	Entries     []entryDocument `yaml:"entries"`
}

type entryDocument struct {
	Row          int                `yaml:"row"`
	Name         string             `yaml:"name"`
	State        EntryState         `yaml:"state"`
	ProjectID    int64              `yaml:"project_id,omitempty"`
	MembersAdded int                `yaml:"members_added"`
	Identities   []ResolvedIdentity `yaml:"identities,omitempty"`
	Error        string             `yaml:"error,omitempty"`
	Failures     []string           `yaml:"failures,omitempty"`
}

// MarshalYAML renders the report as a machine-readable document.
func (r *Report) MarshalYAML() (interface{}, error) {
	doc := reportDocument{
		Designation: r.Designation,
		Namespace:   r.Namespace,
		DryRun:      r.DryRun,
		Completed:   r.Completed(),
		Skipped:     r.Skipped(),
		Entries:     make([]entryDocument, 0, len(r.Entries)),
	}
	for _, entry := range r.Entries {
		entryDoc := entryDocument{
			Row:          entry.Index + 1,
			Name:         entry.Name,
			State:        entry.State,
			ProjectID:    entry.ProjectID,
			MembersAdded: entry.MembersAdded,
			Identities:   entry.Identities,
		}
		if entry.Err != nil {
			entryDoc.Error = entry.Err.Error()
		}
		for _, step := range entry.FailedSteps() {
			entryDoc.Failures = append(entryDoc.Failures, step.Err.Error())
		}
		doc.Entries = append(doc.Entries, entryDoc)
	}
	return doc, nil
}

// WriteFile saves the report as YAML at path.
func (r *Report) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write report %q: %w", path, writeErr)
	}
	return nil
}
