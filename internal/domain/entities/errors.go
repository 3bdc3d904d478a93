package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionMiss is returned when a student identity has no matching platform user.
	ErrResolutionMiss = errors.New("no matching user")

	// ErrProjectExists is returned when the destination already holds a project with the generated name.
	ErrProjectExists = errors.New("project already exists")
)

// InputError reports a roster or credential file that cannot be opened or read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// LookupError reports a failed caller-identity, namespace or template lookup.
type LookupError struct {
	Subject string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up %s: %v", e.Subject, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ProvisionError reports that the platform rejected a project creation.
type ProvisionError struct {
	Project string
	Err     error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to create project %q: %v", e.Project, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// PolicyError reports a failed branch protection step.
type PolicyError struct {
	ProjectID int64
	Step      string
	Err       error
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("branch policy step %q failed for project %d: %v", e.Step, e.ProjectID, e.Err)
}

func (e *PolicyError) Unwrap() error { return e.Err }

// MembershipError reports a failed add-member request.
type MembershipError struct {
	ProjectID int64
	UserID    int64
	Err       error
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("failed to add user %d to project %d: %v", e.UserID, e.ProjectID, e.Err)
}

func (e *MembershipError) Unwrap() error { return e.Err }
