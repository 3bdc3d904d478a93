package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/classrepos/internal/domain/repositories"
	glRepo "github.com/rios0rios0/classrepos/internal/infrastructure/repositories/gitlab"
	tplRepo "github.com/rios0rios0/classrepos/internal/infrastructure/repositories/template"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Platform registry with all platform factories
	if err := container.Provide(func() *PlatformRegistry {
		reg := NewPlatformRegistry()
		reg.Register("gitlab", glRepo.NewPlatformRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.TemplateRepository {
		return tplRepo.NewGitTemplateRepository()
	}); err != nil {
		return err
	}

	return nil
}
