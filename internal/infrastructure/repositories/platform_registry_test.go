//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	domainRepos "github.com/rios0rios0/classrepos/internal/domain/repositories"
	"github.com/rios0rios0/classrepos/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/classrepos/test/infrastructure/repositorydoubles"
)

func TestPlatformRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should pass settings and token to the factory", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewPlatformRegistry()
		var gotToken string
		var gotHost string
		registry.Register("spy", func(settings *entities.Settings, token string) (domainRepos.PlatformRepository, error) {
			gotToken = token
			gotHost = settings.Host
			return &doubles.SpyPlatformRepository{}, nil
		})
		settings := entities.NewDefaultSettings()

		// when
		platform, err := registry.Get("spy", settings, "glpat-secret")

		// then
		require.NoError(t, err)
		assert.Equal(t, "spy", platform.Name())
		assert.Equal(t, "glpat-secret", gotToken)
		assert.Equal(t, entities.DefaultHost, gotHost)
	})

	t.Run("should return error for unknown platform", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewPlatformRegistry()

		// when
		platform, err := registry.Get("bitbucket", entities.NewDefaultSettings(), "token")

		// then
		require.Error(t, err)
		assert.Nil(t, platform)
		assert.Contains(t, err.Error(), "unknown platform type")
	})

	t.Run("should list registered platform names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewPlatformRegistry()
		factory := func(_ *entities.Settings, _ string) (domainRepos.PlatformRepository, error) {
			return &doubles.SpyPlatformRepository{}, nil
		}
		registry.Register("gitlab", factory)
		registry.Register("forgejo", factory)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"forgejo", "gitlab"}, names)
	})
}
