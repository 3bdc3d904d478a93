//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// SpyPlatformRepository implements repositories.PlatformRepository as a configurable spy.
// Every call is appended to Calls as "<operation>:<argument>" so tests can check ordering.
type SpyPlatformRepository struct {
	Calls []string

	// --- CurrentUsername ---
	Username       string
	CurrentUserErr error

	// --- GroupID ---
	GroupIDs   map[string]int64
	GroupIDErr error

	// --- FindUserID ---
	Users        map[string]int64 // username -> id; missing means ErrResolutionMiss
	FindUserErrs map[string]error

	// --- ProjectExists ---
	ExistingProjects map[string]bool // "namespace/name" -> exists
	ProjectExistsErr error

	// --- CreateProject ---
	NextProjectID   int64
	CreateErrs      map[string]error // project name -> error
	CreatedProjects []entities.CreateProjectInput

	// --- BranchExists ---
	BranchMissingPolls int // number of polls answering "not yet"
	BranchExistsErr    error
	branchPolls        int

	// --- UnprotectBranch / ProtectBranch ---
	UnprotectErr    error
	ProtectErr      error
	AppliedPolicies []entities.BranchProtectionPolicy

	// --- AddMember ---
	AddMemberErrs map[int64]error // user id -> error
	AddedMembers  []AddedMember
}

// AddedMember records a single AddMember call.
type AddedMember struct {
	ProjectID int64
	UserID    int64
	Level     entities.AccessLevel
}

var _ repositories.PlatformRepository = (*SpyPlatformRepository)(nil)

func (p *SpyPlatformRepository) Name() string { return "spy" }

func (p *SpyPlatformRepository) CurrentUsername(_ context.Context) (string, error) {
	p.Calls = append(p.Calls, "current_user")
	return p.Username, p.CurrentUserErr
}

func (p *SpyPlatformRepository) GroupID(_ context.Context, name string) (int64, error) {
	p.Calls = append(p.Calls, "group:"+name)
	if p.GroupIDErr != nil {
		return 0, p.GroupIDErr
	}
	id, ok := p.GroupIDs[name]
	if !ok {
		return 0, fmt.Errorf("group not found: %s", name)
	}
	return id, nil
}

func (p *SpyPlatformRepository) FindUserID(_ context.Context, username string) (int64, error) {
	p.Calls = append(p.Calls, "user:"+username)
	if err, ok := p.FindUserErrs[username]; ok {
		return 0, err
	}
	id, ok := p.Users[username]
	if !ok {
		return 0, entities.ErrResolutionMiss
	}
	return id, nil
}

func (p *SpyPlatformRepository) ProjectExists(_ context.Context, namespace, name string) (bool, error) {
	p.Calls = append(p.Calls, "exists:"+name)
	return p.ExistingProjects[namespace+"/"+name], p.ProjectExistsErr
}

func (p *SpyPlatformRepository) CreateProject(
	_ context.Context,
	input entities.CreateProjectInput,
) (int64, error) {
	p.Calls = append(p.Calls, "create:"+input.Name)
	if err, ok := p.CreateErrs[input.Name]; ok {
		return 0, err
	}
	p.CreatedProjects = append(p.CreatedProjects, input)
	if p.NextProjectID == 0 {
		p.NextProjectID = 100
	}
	p.NextProjectID++
	return p.NextProjectID, nil
}

func (p *SpyPlatformRepository) BranchExists(_ context.Context, projectID int64, _ string) (bool, error) {
	p.Calls = append(p.Calls, fmt.Sprintf("branch:%d", projectID))
	if p.BranchExistsErr != nil {
		return false, p.BranchExistsErr
	}
	p.branchPolls++
	return p.branchPolls > p.BranchMissingPolls, nil
}

func (p *SpyPlatformRepository) UnprotectBranch(_ context.Context, projectID int64, _ string) error {
	p.Calls = append(p.Calls, fmt.Sprintf("unprotect:%d", projectID))
	return p.UnprotectErr
}

func (p *SpyPlatformRepository) ProtectBranch(
	_ context.Context,
	projectID int64,
	policy entities.BranchProtectionPolicy,
) error {
	p.Calls = append(p.Calls, fmt.Sprintf("protect:%d", projectID))
	p.AppliedPolicies = append(p.AppliedPolicies, policy)
	return p.ProtectErr
}

func (p *SpyPlatformRepository) AddMember(
	_ context.Context,
	projectID, userID int64,
	level entities.AccessLevel,
) error {
	p.Calls = append(p.Calls, fmt.Sprintf("member:%d:%d", projectID, userID))
	if err, ok := p.AddMemberErrs[userID]; ok {
		return err
	}
	p.AddedMembers = append(p.AddedMembers, AddedMember{ProjectID: projectID, UserID: userID, Level: level})
	return nil
}

// CallsWithPrefix returns the recorded calls starting with prefix, in order.
func (p *SpyPlatformRepository) CallsWithPrefix(prefix string) []string {
	var matched []string
	for _, call := range p.Calls {
		if strings.HasPrefix(call, prefix) {
			matched = append(matched, call)
		}
	}
	return matched
}
