//go:build unit

package entities_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

func sampleReport() *entities.Report {
	return &entities.Report{
		Designation: "a1",
		Namespace:   "ece459-1231",
		Entries: []entities.EntryOutcome{
			{
				Index:        0,
				Name:         "ece459-1231-a1-alice",
				State:        entities.StateDone,
				ProjectID:    101,
				MembersAdded: 1,
				Identities:   []entities.ResolvedIdentity{{Identity: "alice", UserID: 7, Resolved: true}},
				Steps: []entities.StepResult{
					{Step: entities.StepUnprotect},
					{Step: entities.StepProtect, Err: errors.New("forbidden")},
				},
			},
			{Index: 1, Name: "ece459-1231-a1-g2", State: entities.StateSkippedCreateFailed, Err: errors.New("name taken")},
			{Index: 2, Name: "ece459-1231-a1-g3", State: entities.StateSkippedNoIdentities},
		},
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("should count completed and skipped entries", func(t *testing.T) {
		t.Parallel()

		// given
		report := sampleReport()

		// when / then
		assert.Equal(t, 1, report.Completed())
		assert.Equal(t, 2, report.Skipped())
	})

	t.Run("should write failures and errors to the YAML file", func(t *testing.T) {
		t.Parallel()

		// given
		report := sampleReport()
		path := filepath.Join(t.TempDir(), "report.yaml")

		// when
		err := report.WriteFile(path)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)

		var decoded map[string]interface{}
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, 1, decoded["completed"])
		assert.Equal(t, 2, decoded["skipped"])

		entries, ok := decoded["entries"].([]interface{})
		require.True(t, ok)
		require.Len(t, entries, 3)
		first := entries[0].(map[string]interface{})
		assert.Equal(t, 1, first["row"])
		assert.Equal(t, "done", first["state"])
		assert.Equal(t, []interface{}{"forbidden"}, first["failures"])
		second := entries[1].(map[string]interface{})
		assert.Equal(t, "name taken", second["error"])
	})
}
