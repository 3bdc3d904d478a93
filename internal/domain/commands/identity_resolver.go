package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// IdentityResolver maps roster identities to platform user ids by exact username.
type IdentityResolver struct {
	users repositories.UserRepository
}

// NewIdentityResolver creates an IdentityResolver backed by the given repository.
func NewIdentityResolver(users repositories.UserRepository) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve looks up every identity of the entry. It never fails: identities
// without a match, or whose lookup errored, come back unresolved.
func (it *IdentityResolver) Resolve(
	ctx context.Context,
	entry entities.RosterEntry,
) []entities.ResolvedIdentity {
	resolved := make([]entities.ResolvedIdentity, 0, len(entry))
	for _, student := range entry {
		logger.Infof("Looking up student %s...", student)

		identity := entities.ResolvedIdentity{Identity: student}
		userID, err := it.users.FindUserID(ctx, student)
		switch {
		case err == nil:
			identity.UserID = userID
			identity.Resolved = true
			logger.Infof("Student %s has a user ID of %d.", student, userID)
		case errors.Is(err, entities.ErrResolutionMiss):
			logger.Warnf("No user found for student %s", student)
		default:
			logger.Warnf("Lookup of student %s failed: %v", student, err)
		}
		resolved = append(resolved, identity)
	}
	return resolved
}
