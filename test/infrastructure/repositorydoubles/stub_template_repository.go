//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// StubTemplateRepository implements repositories.TemplateRepository with fixed answers.
type StubTemplateRepository struct {
	Found      bool
	Err        error
	CheckedURL string
}

var _ repositories.TemplateRepository = (*StubTemplateRepository)(nil)

func (s *StubTemplateRepository) HasBranch(_ context.Context, url, _ string) (bool, error) {
	s.CheckedURL = url
	return s.Found, s.Err
}
