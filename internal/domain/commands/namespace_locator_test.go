//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/classrepos/internal/domain/commands"
	"github.com/rios0rios0/classrepos/internal/domain/entities"
	doubles "github.com/rios0rios0/classrepos/test/infrastructure/repositorydoubles"
)

func TestNamespaceLocatorLocate(t *testing.T) {
	t.Parallel()

	t.Run("should return the caller and group id", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{
			Username: "instructor",
			GroupIDs: map[string]int64{"ece459-1231": 9},
		}
		locator := commands.NewNamespaceLocator(platform)

		// when
		dest, err := locator.Locate(context.Background(), "ece459-1231")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Destination{Username: "instructor", NamespaceID: 9}, dest)
		assert.Equal(t, []string{"current_user", "group:ece459-1231"}, platform.Calls)
	})

	t.Run("should wrap a group lookup failure", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{Username: "instructor", GroupIDErr: errors.New("404")}
		locator := commands.NewNamespaceLocator(platform)

		// when
		_, err := locator.Locate(context.Background(), "ece459-1231")

		// then
		var lookupErr *entities.LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "group ece459-1231", lookupErr.Subject)
	})
}
