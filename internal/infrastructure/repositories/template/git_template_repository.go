package template

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// GitTemplateRepository lists template refs over HTTPS without cloning.
type GitTemplateRepository struct{}

var _ repositories.TemplateRepository = (*GitTemplateRepository)(nil)

// NewGitTemplateRepository creates a GitTemplateRepository.
func NewGitTemplateRepository() *GitTemplateRepository {
	return &GitTemplateRepository{}
}

// HasBranch runs the equivalent of `git ls-remote` against rawURL.
func (r *GitTemplateRepository) HasBranch(ctx context.Context, rawURL, branch string) (bool, error) {
	remoteURL, auth, err := splitCredentials(rawURL)
	if err != nil {
		return false, err
	}

	//nolint:exhaustruct // Minimal RemoteConfig for an anonymous in-memory remote
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "template",
		URLs: []string{remoteURL},
	})

	//nolint:exhaustruct // Minimal ListOptions with auth only
	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: auth})
	if err != nil {
		return false, fmt.Errorf("failed to list template refs: %w", err)
	}

	want := plumbing.NewBranchReferenceName(branch)
	for _, ref := range refs {
		if ref.Name() == want {
			return true, nil
		}
	}
	return false, nil
}

// splitCredentials moves userinfo out of the URL into basic auth.
func splitCredentials(rawURL string) (string, transport.AuthMethod, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("invalid template url: %w", err)
	}
	if parsed.User == nil {
		return rawURL, nil, nil
	}

	password, _ := parsed.User.Password()
	auth := &githttp.BasicAuth{Username: parsed.User.Username(), Password: password}
	parsed.User = nil
	return parsed.String(), auth, nil
}
