package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

const providerName = "gitlab"

// ClientConfig holds what is needed to build the API client.
type ClientConfig struct {
	BaseURL  string // e.g. "https://git.uwaterloo.ca"; the client appends /api/v4
	Token    string
	Auth     string // entities.AuthBearer or entities.AuthPrivateToken
	RetryMax int
	Backoff  string // entities.BackoffExponential or entities.BackoffLinearJitter
}

// GitLabPlatformRepository implements repositories.PlatformRepository for GitLab.
type GitLabPlatformRepository struct {
	client *gl.Client
}

var _ repositories.PlatformRepository = (*GitLabPlatformRepository)(nil)

// NewGitLabPlatformRepository creates a GitLab client for the given configuration.
func NewGitLabPlatformRepository(config ClientConfig) (*GitLabPlatformRepository, error) {
	options := []gl.ClientOptionFunc{
		gl.WithBaseURL(config.BaseURL),
		gl.WithCustomRetryMax(config.RetryMax),
	}

	if config.Backoff == entities.BackoffLinearJitter {
		options = append(options, gl.WithCustomBackoff(retryablehttp.LinearJitterBackoff))
	} else {
		options = append(options, gl.WithCustomBackoff(retryablehttp.DefaultBackoff))
	}

	client, err := newClient(config, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab client: %w", err)
	}
	return &GitLabPlatformRepository{client: client}, nil
}

// newClient picks the auth source: bearer sends only "Authorization: Bearer",
// private-token sends only the PRIVATE-TOKEN header.
func newClient(config ClientConfig, options []gl.ClientOptionFunc) (*gl.Client, error) {
	if config.Auth == entities.AuthBearer {
		//nolint:exhaustruct // a static access token needs no refresh metadata
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token, TokenType: "Bearer"})
		return gl.NewAuthSourceClient(gl.OAuthTokenSource{TokenSource: source}, options...)
	}
	return gl.NewClient(config.Token, options...)
}

// NewPlatformRepository builds the GitLab repository from run settings.
func NewPlatformRepository(
	settings *entities.Settings,
	token string,
) (repositories.PlatformRepository, error) {
	return NewGitLabPlatformRepository(ClientConfig{
		BaseURL:  "https://" + settings.Host,
		Token:    token,
		Auth:     settings.Auth,
		RetryMax: settings.HTTP.RetryMax,
		Backoff:  settings.HTTP.Backoff,
	})
}

func (p *GitLabPlatformRepository) Name() string { return providerName }

func (p *GitLabPlatformRepository) CurrentUsername(ctx context.Context) (string, error) {
	user, _, err := p.client.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	if user.Username == "" {
		return "", errors.New("current user has no username")
	}
	return user.Username, nil
}

func (p *GitLabPlatformRepository) GroupID(ctx context.Context, name string) (int64, error) {
	group, _, err := p.client.Groups.GetGroup(name, nil, gl.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to get group %q: %w", name, err)
	}
	if group.ID == 0 {
		return 0, fmt.Errorf("group %q has no id", name)
	}
	return group.ID, nil
}

func (p *GitLabPlatformRepository) FindUserID(ctx context.Context, username string) (int64, error) {
	users, _, err := p.client.Users.ListUsers(
		&gl.ListUsersOptions{Username: gl.Ptr(username)},
		gl.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to list users named %q: %w", username, err)
	}
	if len(users) == 0 {
		return 0, entities.ErrResolutionMiss
	}
	return users[0].ID, nil
}

func (p *GitLabPlatformRepository) ProjectExists(
	ctx context.Context,
	namespace, name string,
) (bool, error) {
	_, resp, err := p.client.Projects.GetProject(namespace+"/"+name, nil, gl.WithContext(ctx))
	if err != nil {
		if statusOf(resp) == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to get project %s/%s: %w", namespace, name, err)
	}
	return true, nil
}

func (p *GitLabPlatformRepository) CreateProject(
	ctx context.Context,
	input entities.CreateProjectInput,
) (int64, error) {
	project, _, err := p.client.Projects.CreateProject(
		&gl.CreateProjectOptions{
			Name:          gl.Ptr(input.Name),
			NamespaceID:   gl.Ptr(input.NamespaceID),
			Visibility:    gl.Ptr(gl.PrivateVisibility),
			DefaultBranch: gl.Ptr(input.DefaultBranch),
			ImportURL:     gl.Ptr(input.ImportURL),
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return project.ID, nil
}

func (p *GitLabPlatformRepository) BranchExists(
	ctx context.Context,
	projectID int64,
	branch string,
) (bool, error) {
	_, resp, err := p.client.Branches.GetBranch(pid(projectID), branch, gl.WithContext(ctx))
	if err != nil {
		if statusOf(resp) == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to get branch %q: %w", branch, err)
	}
	return true, nil
}

func (p *GitLabPlatformRepository) UnprotectBranch(
	ctx context.Context,
	projectID int64,
	branch string,
) error {
	resp, err := p.client.ProtectedBranches.UnprotectRepositoryBranches(
		pid(projectID), branch, gl.WithContext(ctx),
	)
	if classifyErr := classifyUnprotect(resp, err); classifyErr != nil {
		return fmt.Errorf("failed to unprotect branch %q: %w", branch, classifyErr)
	}
	return nil
}

func (p *GitLabPlatformRepository) ProtectBranch(
	ctx context.Context,
	projectID int64,
	policy entities.BranchProtectionPolicy,
) error {
	_, resp, err := p.client.ProtectedBranches.ProtectRepositoryBranches(
		pid(projectID),
		&gl.ProtectRepositoryBranchesOptions{
			Name:                 gl.Ptr(policy.Branch),
			AllowForcePush:       gl.Ptr(policy.AllowForcePush),
			PushAccessLevel:      gl.Ptr(accessLevel(policy.PushAccess)),
			MergeAccessLevel:     gl.Ptr(accessLevel(policy.MergeAccess)),
			UnprotectAccessLevel: gl.Ptr(accessLevel(policy.UnprotectAccess)),
		},
		gl.WithContext(ctx),
	)
	if classifyErr := classifySuccess(resp, err); classifyErr != nil {
		return fmt.Errorf("failed to protect branch %q: %w", policy.Branch, classifyErr)
	}
	return nil
}

func (p *GitLabPlatformRepository) AddMember(
	ctx context.Context,
	projectID, userID int64,
	level entities.AccessLevel,
) error {
	_, resp, err := p.client.ProjectMembers.AddProjectMember(
		pid(projectID),
		&gl.AddProjectMemberOptions{
			UserID:      userID,
			AccessLevel: gl.Ptr(accessLevel(level)),
		},
		gl.WithContext(ctx),
	)
	if err != nil && statusOf(resp) == http.StatusConflict {
		logger.Debugf("User %d is already a member of project %d", userID, projectID)
		return nil
	}
	if classifyErr := classifySuccess(resp, err); classifyErr != nil {
		return fmt.Errorf("failed to add member: %w", classifyErr)
	}
	return nil
}

func pid(projectID int64) string {
	return strconv.FormatInt(projectID, 10)
}

func accessLevel(level entities.AccessLevel) gl.AccessLevelValue {
	return gl.AccessLevelValue(level)
}
