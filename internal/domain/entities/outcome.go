package entities

// EntryState is the position of a roster entry in the provisioning workflow.
type EntryState string

// State values. Kept untyped so they convert to state machine identifiers.
const (
	StateNamingResolved      = "naming_resolved"
	StateIdentitiesResolved  = "identities_resolved"
	StateProjectCreated      = "project_created"
	StatePolicyApplied       = "policy_applied"
	StateMembersGranted      = "members_granted"
	StateDone                = "done"
	StateSkippedNoIdentities = "skipped_no_identities"
	StateSkippedCreateFailed = "skipped_create_failed"
	StateSkippedExists       = "skipped_exists"
	StatePlanned             = "planned"
)

// IsTerminal reports whether no further transition can happen from the state.
func (s EntryState) IsTerminal() bool {
	switch s {
	case StateDone, StateSkippedNoIdentities, StateSkippedCreateFailed, StateSkippedExists, StatePlanned:
		return true
	default:
		return false
	}
}

// Step names recorded in StepResult.
const (
	StepSettle    = "settle"
	StepUnprotect = "unprotect"
	StepProtect   = "protect"
	StepAddMember = "add_member"
)

// StepResult is the outcome of one best-effort sub-step. A nil Err means success.
type StepResult struct {
	Step   string
	Target string
	Err    error
}

// Succeeded reports whether the step completed.
func (r StepResult) Succeeded() bool { return r.Err == nil }

// EntryOutcome is everything the orchestrator learned while processing one roster entry.
type EntryOutcome struct {
	Index        int
	Name         string
	State        EntryState
	ProjectID    int64
	Identities   []ResolvedIdentity
	Steps        []StepResult
	MembersAdded int
	Err          error
}

// Completed reports whether the entry reached the done state.
func (o EntryOutcome) Completed() bool { return o.State == StateDone }

// FailedSteps returns the recoverable failures recorded for the entry.
func (o EntryOutcome) FailedSteps() []StepResult {
	var failed []StepResult
	for _, step := range o.Steps {
		if !step.Succeeded() {
			failed = append(failed, step)
		}
	}
	return failed
}
