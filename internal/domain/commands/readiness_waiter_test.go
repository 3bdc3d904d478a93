//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/classrepos/internal/domain/commands"
	"github.com/rios0rios0/classrepos/internal/domain/entities"
	builders "github.com/rios0rios0/classrepos/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/classrepos/test/infrastructure/repositorydoubles"
)

func TestReadinessWaiterWait(t *testing.T) {
	t.Parallel()

	project := entities.ProvisionedProject{Name: "ece459-1231-a1-alice", ID: 101}

	t.Run("should return once the default branch shows up", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{BranchMissingPolls: 2}
		settings := builders.NewSettingsBuilder().WithReadyAttempts(5).BuildSettings()
		waiter := commands.NewReadinessWaiter(platform, settings)

		// when
		err := waiter.Wait(context.Background(), project)

		// then
		require.NoError(t, err)
		assert.Len(t, platform.CallsWithPrefix("branch:101"), 3)
	})

	t.Run("should report a settle failure after the last attempt", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{BranchMissingPolls: 100}
		settings := builders.NewSettingsBuilder().WithReadyAttempts(3).BuildSettings()
		waiter := commands.NewReadinessWaiter(platform, settings)

		// when
		err := waiter.Wait(context.Background(), project)

		// then
		var policyErr *entities.PolicyError
		require.ErrorAs(t, err, &policyErr)
		assert.Equal(t, entities.StepSettle, policyErr.Step)
		assert.Equal(t, int64(101), policyErr.ProjectID)
		assert.Len(t, platform.CallsWithPrefix("branch:"), 3)
	})

	t.Run("should keep polling through lookup errors", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{BranchExistsErr: errors.New("502 bad gateway")}
		settings := builders.NewSettingsBuilder().WithReadyAttempts(2).BuildSettings()
		waiter := commands.NewReadinessWaiter(platform, settings)

		// when
		err := waiter.Wait(context.Background(), project)

		// then
		require.Error(t, err)
		assert.Len(t, platform.CallsWithPrefix("branch:"), 2)
	})

	t.Run("should poll at least once when attempts are not configured", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{}
		settings := builders.NewSettingsBuilder().WithReadyAttempts(0).BuildSettings()
		waiter := commands.NewReadinessWaiter(platform, settings)

		// when
		err := waiter.Wait(context.Background(), project)

		// then
		require.NoError(t, err)
		assert.Len(t, platform.CallsWithPrefix("branch:"), 1)
	})

	t.Run("should stop the settle delay when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		platform := &doubles.SpyPlatformRepository{}
		settings := builders.NewSettingsBuilder().WithSettleDelay(time.Hour).BuildSettings()
		waiter := commands.NewReadinessWaiter(platform, settings)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		err := waiter.Wait(ctx, project)

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, platform.Calls)
	})
}
