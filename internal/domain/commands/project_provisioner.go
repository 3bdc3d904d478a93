package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
)

var errMissingProjectID = errors.New("platform returned no project id")

// ProjectProvisioner creates one private project per roster entry from the template.
type ProjectProvisioner struct {
	projects      repositories.ProjectRepository
	defaultBranch string
	skipExisting  bool
}

// NewProjectProvisioner creates a ProjectProvisioner.
// With skipExisting set, an existing project with the same name is left alone.
func NewProjectProvisioner(
	projects repositories.ProjectRepository,
	defaultBranch string,
	skipExisting bool,
) *ProjectProvisioner {
	return &ProjectProvisioner{
		projects:      projects,
		defaultBranch: defaultBranch,
		skipExisting:  skipExisting,
	}
}

// Provision creates the project named name in the destination namespace, importing importURL.
// It returns entities.ErrProjectExists when the project is already there and
// *entities.ProvisionError when the platform rejects the creation.
func (it *ProjectProvisioner) Provision(
	ctx context.Context,
	dest entities.Destination,
	namespace, name, importURL string,
) (entities.ProvisionedProject, error) {
	project := entities.ProvisionedProject{Name: name, NamespaceID: dest.NamespaceID}

	if it.skipExisting {
		exists, err := it.projects.ProjectExists(ctx, namespace, name)
		if err != nil {
			logger.Warnf("Could not check whether project %s exists: %v", name, err)
		} else if exists {
			return project, entities.ErrProjectExists
		}
	}

	logger.Infof("Creating project %s...", name)
	projectID, err := it.projects.CreateProject(ctx, entities.CreateProjectInput{
		Name:          name,
		NamespaceID:   dest.NamespaceID,
		DefaultBranch: it.defaultBranch,
		ImportURL:     importURL,
	})
	if err != nil {
		return project, &entities.ProvisionError{Project: name, Err: err}
	}
	if projectID == 0 {
		return project, &entities.ProvisionError{Project: name, Err: errMissingProjectID}
	}

	project.ID = projectID
	return project, nil
}
