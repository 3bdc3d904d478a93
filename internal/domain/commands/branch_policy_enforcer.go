package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// BranchPolicyEnforcer resets and reapplies protection on a project's default branch.
// The platform only offers protect/unprotect toggles, so the policy is applied as
// unprotect followed by protect to reach the same final state from any starting point.
type BranchPolicyEnforcer struct {
	branches repositories.BranchRepository
	policy   entities.BranchProtectionPolicy
}

// NewBranchPolicyEnforcer creates a BranchPolicyEnforcer applying policy.
func NewBranchPolicyEnforcer(
	branches repositories.BranchRepository,
	policy entities.BranchProtectionPolicy,
) *BranchPolicyEnforcer {
	return &BranchPolicyEnforcer{branches: branches, policy: policy}
}

// Apply runs both steps and reports each one; failures never stop the second step.
func (it *BranchPolicyEnforcer) Apply(ctx context.Context, project entities.ProvisionedProject) []entities.StepResult {
	logger.Infof("Protecting default branch in project %s...", project.Name)

	unprotect := entities.StepResult{Step: entities.StepUnprotect, Target: it.policy.Branch}
	if err := it.branches.UnprotectBranch(ctx, project.ID, it.policy.Branch); err != nil {
		unprotect.Err = &entities.PolicyError{ProjectID: project.ID, Step: entities.StepUnprotect, Err: err}
		logger.Warn(unprotect.Err)
	}

	protect := entities.StepResult{Step: entities.StepProtect, Target: it.policy.Branch}
	if err := it.branches.ProtectBranch(ctx, project.ID, it.policy); err != nil {
		protect.Err = &entities.PolicyError{ProjectID: project.ID, Step: entities.StepProtect, Err: err}
		logger.Warn(protect.Err)
	}

	if unprotect.Succeeded() && protect.Succeeded() {
		logger.Infof("Protections applied to default branch in project %s.", project.Name)
	}
	return []entities.StepResult{unprotect, protect}
}
