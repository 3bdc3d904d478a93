package repositories

import (
	"context"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// NamespaceRepository resolves the run-wide identifiers.
type NamespaceRepository interface {
	// CurrentUsername returns the username of the authenticated caller.
	CurrentUsername(ctx context.Context) (string, error)

	// GroupID returns the platform id of the group with the given full path.
	GroupID(ctx context.Context, name string) (int64, error)
}

// UserRepository looks up students in the platform's user directory.
type UserRepository interface {
	// FindUserID returns the id of the first user whose username is exactly username.
	// It returns entities.ErrResolutionMiss when there is no such user.
	FindUserID(ctx context.Context, username string) (int64, error)
}

// ProjectRepository creates projects.
type ProjectRepository interface {
	// CreateProject creates a private project importing from input.ImportURL.
	CreateProject(ctx context.Context, input entities.CreateProjectInput) (int64, error)

	// ProjectExists reports whether namespace/name already exists.
	ProjectExists(ctx context.Context, namespace, name string) (bool, error)
}

// BranchRepository manages default-branch protection.
type BranchRepository interface {
	// BranchExists reports whether the branch is visible on the project yet.
	BranchExists(ctx context.Context, projectID int64, branch string) (bool, error)

	// UnprotectBranch removes any protection from the branch. An already
	// unprotected branch is not an error.
	UnprotectBranch(ctx context.Context, projectID int64, branch string) error

	// ProtectBranch applies the policy to the branch.
	ProtectBranch(ctx context.Context, projectID int64, policy entities.BranchProtectionPolicy) error
}

// MemberRepository grants project access.
type MemberRepository interface {
	AddMember(ctx context.Context, projectID, userID int64, level entities.AccessLevel) error
}

// PlatformRepository abstracts the hosted Git platform the projects are provisioned on.
type PlatformRepository interface {
	Name() string
	NamespaceRepository
	UserRepository
	ProjectRepository
	BranchRepository
	MemberRepository
}
