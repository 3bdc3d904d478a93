package commands

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// Events driving an entry through the workflow.
const (
	eventIdentitiesResolved = "identities_resolved"
	eventNoIdentities       = "no_identities"
	eventPlanned            = "planned"
	eventProjectCreated     = "project_created"
	eventCreateFailed       = "create_failed"
	eventProjectExists      = "project_exists"
	eventPolicyApplied      = "policy_applied"
	eventMembersGranted     = "members_granted"
	eventCompleted          = "completed"
)

// EntryContext identifies the roster entry a machine belongs to.
type EntryContext struct {
	Index int
	Name  string
}

// EntryStateMachine tracks one roster entry from naming to done or a skip state.
type EntryStateMachine struct {
	interpreter *statekit.Interpreter[EntryContext]
}

// NewEntryStateMachine builds a machine starting in naming_resolved.
func NewEntryStateMachine(index int, name string) (*EntryStateMachine, error) {
	builder := statekit.NewMachine[EntryContext]("entry-machine").
		WithInitial(statekit.StateID(entities.StateNamingResolved)).
		WithContext(EntryContext{Index: index, Name: name})

	builder.State(entities.StateNamingResolved).
		On(eventIdentitiesResolved).Target(entities.StateIdentitiesResolved).
		Done()

	builder.State(entities.StateIdentitiesResolved).
		On(eventNoIdentities).Target(entities.StateSkippedNoIdentities).
		On(eventPlanned).Target(entities.StatePlanned).
		On(eventProjectCreated).Target(entities.StateProjectCreated).
		On(eventCreateFailed).Target(entities.StateSkippedCreateFailed).
		On(eventProjectExists).Target(entities.StateSkippedExists).
		Done()

	// the settle wait happens while in project_created
	builder.State(entities.StateProjectCreated).
		On(eventPolicyApplied).Target(entities.StatePolicyApplied).
		Done()

	builder.State(entities.StatePolicyApplied).
		On(eventMembersGranted).Target(entities.StateMembersGranted).
		Done()

	builder.State(entities.StateMembersGranted).
		On(eventCompleted).Target(entities.StateDone).
		Done()

	builder.State(entities.StateDone).Done()
	builder.State(entities.StateSkippedNoIdentities).Done()
	builder.State(entities.StateSkippedCreateFailed).Done()
	builder.State(entities.StateSkippedExists).Done()
	builder.State(entities.StatePlanned).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build entry state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &EntryStateMachine{interpreter: interpreter}, nil
}

// Transition sends event and fails when the current state does not accept it.
func (sm *EntryStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if sm.Current() != before {
		return nil
	}
	return fmt.Errorf("event %q is not allowed in state %q", event, before)
}

// Current returns the current state.
func (sm *EntryStateMachine) Current() entities.EntryState {
	return entities.EntryState(sm.interpreter.State().Value)
}
