package commands

import (
	"context"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// MembershipGrantor adds students to a project with developer access.
type MembershipGrantor struct {
	members repositories.MemberRepository
}

// NewMembershipGrantor creates a MembershipGrantor.
func NewMembershipGrantor(members repositories.MemberRepository) *MembershipGrantor {
	return &MembershipGrantor{members: members}
}

// Grant sends one add-member request per user and returns how many succeeded.
// A failed request is recorded and the remaining users are still attempted.
func (it *MembershipGrantor) Grant(
	ctx context.Context,
	project entities.ProvisionedProject,
	userIDs []int64,
) (int, []entities.StepResult) {
	logger.Infof("Adding user(s) to project %s...", project.Name)

	added := 0
	results := make([]entities.StepResult, 0, len(userIDs))
	for _, userID := range userIDs {
		result := entities.StepResult{Step: entities.StepAddMember, Target: strconv.FormatInt(userID, 10)}
		err := it.members.AddMember(ctx, project.ID, userID, entities.DeveloperAccess)
		if err != nil {
			result.Err = &entities.MembershipError{ProjectID: project.ID, UserID: userID, Err: err}
			logger.Warn(result.Err)
		} else {
			added++
		}
		results = append(results, result)
	}

	logger.Infof("Added %d student(s) to project %s.", added, project.Name)
	return added, results
}
