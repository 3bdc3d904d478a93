package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
	"github.com/rios0rios0/classrepos/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/classrepos/internal/infrastructure/repositories"
)

const defaultPlatform = "gitlab"

// Provision is the interface for the provision command.
type Provision interface {
	Execute(ctx context.Context, input ProvisionInput, opts ProvisionOptions) (*entities.Report, error)
}

// ProvisionInput is everything read from the command line and files.
type ProvisionInput struct {
	Config   entities.ProvisioningConfig
	Roster   entities.Roster
	Settings *entities.Settings
}

// ProvisionOptions holds runtime options for a single run.
type ProvisionOptions struct {
	DryRun   bool
	Verbose  bool
	Platform string // defaults to "gitlab"
}

// ProvisionCommand orchestrates the provisioning of every roster entry:
// resolve identities -> create project -> settle -> protect branch -> add members.
// Entries run strictly in roster order and a failed entry is never retried.
type ProvisionCommand struct {
	platformRegistry *infraRepos.PlatformRegistry
	templates        repositories.TemplateRepository
}

// NewProvisionCommand creates a new ProvisionCommand.
func NewProvisionCommand(
	platformRegistry *infraRepos.PlatformRegistry,
	templates repositories.TemplateRepository,
) *ProvisionCommand {
	return &ProvisionCommand{
		platformRegistry: platformRegistry,
		templates:        templates,
	}
}

// provisionRun carries the components wired for one Execute call.
type provisionRun struct {
	config      entities.ProvisioningConfig
	destination entities.Destination
	importURL   string
	dryRun      bool
	resolver    *IdentityResolver
	provisioner *ProjectProvisioner
	waiter      *ReadinessWaiter
	enforcer    *BranchPolicyEnforcer
	grantor     *MembershipGrantor
}

// Execute provisions a project for every roster entry. Only fatal errors are
// returned (platform setup, lookups, template preflight, cancellation); per-entry
// failures are recorded in the report.
func (it *ProvisionCommand) Execute(
	ctx context.Context,
	input ProvisionInput,
	opts ProvisionOptions,
) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings := input.Settings
	if settings == nil {
		settings = entities.NewDefaultSettings()
	}

	platformName := opts.Platform
	if platformName == "" {
		platformName = defaultPlatform
	}
	platform, err := it.platformRegistry.Get(platformName, settings, input.Config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize platform %q: %w", platformName, err)
	}

	destination, err := NewNamespaceLocator(platform).Locate(ctx, input.Config.Namespace)
	if err != nil {
		return nil, err
	}

	importURL := input.Config.ImportURL(settings.Host, destination.Username)
	if settings.ShouldCheckTemplate() {
		if checkErr := it.checkTemplate(ctx, input.Config, importURL, settings.DefaultBranch); checkErr != nil {
			return nil, checkErr
		}
	}

	run := &provisionRun{
		config:      input.Config,
		destination: destination,
		importURL:   importURL,
		dryRun:      opts.DryRun,
		resolver:    NewIdentityResolver(platform),
		provisioner: NewProjectProvisioner(platform, settings.DefaultBranch, settings.ShouldSkipExisting()),
		waiter:      NewReadinessWaiter(platform, settings),
		enforcer: NewBranchPolicyEnforcer(
			platform, entities.DefaultBranchProtectionPolicy(settings.DefaultBranch),
		),
		grantor: NewMembershipGrantor(platform),
	}

	report := &entities.Report{
		Designation: input.Config.Designation,
		Namespace:   input.Config.Namespace,
		DryRun:      opts.DryRun,
		Entries:     make([]entities.EntryOutcome, 0, len(input.Roster)),
	}

	for index, entry := range input.Roster {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		outcome, entryErr := run.processEntry(ctx, index, entry)
		report.Entries = append(report.Entries, outcome)
		if entryErr != nil {
			return report, entryErr
		}
	}

	logger.Infof(
		"Run complete: %d entries, %d projects set up, %d skipped",
		len(report.Entries), report.Completed(), report.Skipped(),
	)
	return report, nil
}

func (it *ProvisionCommand) checkTemplate(
	ctx context.Context,
	config entities.ProvisioningConfig,
	importURL, branch string,
) error {
	logger.Infof("Checking template repository %s...", config.TemplatePath)
	found, err := it.templates.HasBranch(ctx, importURL, branch)
	if err != nil {
		return &entities.LookupError{Subject: "template " + config.TemplatePath, Err: err}
	}
	if !found {
		return &entities.LookupError{
			Subject: "template " + config.TemplatePath,
			Err:     fmt.Errorf("branch %q not found", branch),
		}
	}
	return nil
}

// processEntry walks one entry through the state machine. The returned error is
// only set when the run must stop (context cancelled).
func (r *provisionRun) processEntry(
	ctx context.Context,
	index int,
	entry entities.RosterEntry,
) (entities.EntryOutcome, error) {
	name := r.config.ProjectName(entry, index)
	outcome := entities.EntryOutcome{Index: index, Name: name, State: entities.StateNamingResolved}
	entryLog := logger.WithFields(logger.Fields{"row": index + 1, "project": name})

	machine, err := NewEntryStateMachine(index, name)
	if err != nil {
		outcome.Err = err
		entryLog.Errorf("Cannot track entry: %v", err)
		return outcome, nil
	}
	advance := func(event string) {
		if transitionErr := machine.Transition(event); transitionErr != nil {
			entryLog.Warn(transitionErr)
		}
		outcome.State = machine.Current()
	}

	if entry.IsEmpty() {
		entryLog.Debug("Skipping empty roster row")
		advance(eventIdentitiesResolved)
		advance(eventNoIdentities)
		return outcome, nil
	}

	outcome.Identities = r.resolver.Resolve(ctx, entry)
	advance(eventIdentitiesResolved)

	userIDs := entities.UserIDs(outcome.Identities)
	if len(userIDs) == 0 {
		entryLog.Warnf("Unable to create project %s; no users found", name)
		advance(eventNoIdentities)
		return outcome, ctx.Err()
	}

	if r.dryRun {
		entryLog.Infof("Would create project %s with %d member(s)", name, len(userIDs))
		advance(eventPlanned)
		return outcome, nil
	}

	project, err := r.provisioner.Provision(ctx, r.destination, r.config.Namespace, name, r.importURL)
	if err != nil {
		outcome.Err = err
		if errors.Is(err, entities.ErrProjectExists) {
			entryLog.Warnf("Project %s already exists, skipping", name)
			advance(eventProjectExists)
		} else {
			entryLog.Errorf("Failed to create project %s: %v", name, err)
			advance(eventCreateFailed)
		}
		return outcome, ctx.Err()
	}
	outcome.ProjectID = project.ID
	entryLog.Infof("Created project %s with id %d!", name, project.ID)
	advance(eventProjectCreated)

	// policy calls must not precede the wait
	if waitErr := r.waiter.Wait(ctx, project); waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return outcome, ctxErr
		}
		entryLog.Warn(waitErr)
		outcome.Steps = append(outcome.Steps, entities.StepResult{Step: entities.StepSettle, Err: waitErr})
	}

	outcome.Steps = append(outcome.Steps, r.enforcer.Apply(ctx, project)...)
	advance(eventPolicyApplied)

	added, memberSteps := r.grantor.Grant(ctx, project, userIDs)
	outcome.MembersAdded = added
	outcome.Steps = append(outcome.Steps, memberSteps...)
	advance(eventMembersGranted)

	advance(eventCompleted)
	entryLog.Infof("Setup of repo %s is complete.", name)
	return outcome, nil
}
