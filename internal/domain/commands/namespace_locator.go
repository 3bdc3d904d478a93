package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

// NamespaceLocator resolves the caller and destination group once per run.
type NamespaceLocator struct {
	namespaces repositories.NamespaceRepository
}

// NewNamespaceLocator creates a NamespaceLocator backed by the given repository.
func NewNamespaceLocator(namespaces repositories.NamespaceRepository) *NamespaceLocator {
	return &NamespaceLocator{namespaces: namespaces}
}

// Locate returns the caller's username and the id of the named group.
// Both failures are fatal for the run and are reported as *entities.LookupError.
func (it *NamespaceLocator) Locate(ctx context.Context, namespace string) (entities.Destination, error) {
	logger.Info("Finding current user...")
	username, err := it.namespaces.CurrentUsername(ctx)
	if err != nil {
		return entities.Destination{}, &entities.LookupError{Subject: "current user", Err: err}
	}
	logger.Infof("Current user is %s", username)

	logger.Infof("Finding group ID for group %s...", namespace)
	groupID, err := it.namespaces.GroupID(ctx, namespace)
	if err != nil {
		return entities.Destination{}, &entities.LookupError{Subject: "group " + namespace, Err: err}
	}
	logger.Debugf("Group %s has id %d", namespace, groupID)

	return entities.Destination{Username: username, NamespaceID: groupID}, nil
}
