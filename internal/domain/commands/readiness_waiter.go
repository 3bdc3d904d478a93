package commands

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

var errBranchNotReady = errors.New("default branch not available yet")

// ReadinessWaiter blocks until a freshly created project accepts branch calls.
// The platform finishes the import in the background, so it first sleeps a fixed
// settle delay and then polls for the default branch with exponential backoff.
type ReadinessWaiter struct {
	branches    repositories.BranchRepository
	branch      string
	settleDelay time.Duration
	retryConfig retry.Config
}

// NewReadinessWaiter creates a ReadinessWaiter from the run settings.
func NewReadinessWaiter(branches repositories.BranchRepository, settings *entities.Settings) *ReadinessWaiter {
	attempts := settings.Readiness.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &ReadinessWaiter{
		branches:    branches,
		branch:      settings.DefaultBranch,
		settleDelay: settings.Settle(),
		//nolint:exhaustruct // only the knobs exposed in settings
		retryConfig: retry.Config{
			MaxAttempts:   attempts,
			InitialDelay:  settings.Readiness.InitialDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Wait returns nil once the default branch is visible. A context cancellation is
// returned as is; running out of attempts is reported as *entities.PolicyError.
func (it *ReadinessWaiter) Wait(ctx context.Context, project entities.ProvisionedProject) error {
	if it.settleDelay > 0 {
		logger.Infof("Waiting %s for project %s to settle...", it.settleDelay, project.Name)
		if err := sleep(ctx, it.settleDelay); err != nil {
			return err
		}
	}

	retryer := retry.New[bool](it.retryConfig)
	_, err := retryer.Do(ctx, func(ctx context.Context) (bool, error) {
		ready, err := it.branches.BranchExists(ctx, project.ID, it.branch)
		if err != nil {
			return false, err
		}
		if !ready {
			logger.Debugf("Branch %s of project %s is not ready yet", it.branch, project.Name)
			return false, errBranchNotReady
		}
		return true, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &entities.PolicyError{ProjectID: project.ID, Step: entities.StepSettle, Err: err}
	}
	return nil
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
