package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/classrepos/internal/domain/commands"
	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// ProvisionArgs is the number of positional arguments the command takes.
// The last one, the token file, may instead come from token_file in the config.
const ProvisionArgs = 5

// ProvisionController binds the provision command to the CLI.
type ProvisionController struct {
	command  commands.Provision
	renderer *SummaryRenderer
}

// NewProvisionController creates a new ProvisionController.
func NewProvisionController(command commands.Provision, renderer *SummaryRenderer) *ProvisionController {
	return &ProvisionController{command: command, renderer: renderer}
}

// GetBind returns the Cobra command metadata for the provision controller.
func (it *ProvisionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "classrepos <designation> <gitlab_group_name> <template_repo> <list_of_student_groups.csv> [token_file]",
		Short: "Provision student repositories from a template",
		Long: `Create one private project per roster row in a GitLab group,
import the template repository into it, protect its default branch
and add the row's students as developers.

Each roster line is one team: a single username, or several
comma-separated usernames for a group project.

The token file argument may be left out when the config file sets token_file.`,
		Example: "  classrepos a1 ece459-1231 ece459/ece459-a1 students.csv token.git",
	}
}

// Execute runs one provisioning batch.
func (it *ProvisionController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != ProvisionArgs && len(args) != ProvisionArgs-1 {
		return cmd.Help()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	tokenPath := tokenPathFor(args, settings)
	if tokenPath == "" {
		return cmd.Help()
	}
	token, err := entities.ReadToken(tokenPath)
	if err != nil {
		return err
	}

	roster, err := entities.ReadRoster(args[3])
	if err != nil {
		return err
	}
	logger.Infof("Read %d roster entries from %s", len(roster), args[3])

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	reportPath, _ := cmd.Flags().GetString("report")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, runErr := it.command.Execute(ctx, commands.ProvisionInput{
		Config: entities.ProvisioningConfig{
			Designation:  args[0],
			Namespace:    args[1],
			TemplatePath: args[2],
			Token:        token,
		},
		Roster:   roster,
		Settings: settings,
	}, commands.ProvisionOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	})

	if report != nil {
		it.renderer.Render(report)
		if reportPath != "" {
			if writeErr := report.WriteFile(reportPath); writeErr != nil {
				logger.Errorf("Could not save report: %v", writeErr)
			} else {
				logger.Infof("Report written to %s", reportPath)
			}
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return fmt.Errorf("run interrupted, later entries were not processed: %w", runErr)
		}
		return fmt.Errorf("provisioning aborted: %w", runErr)
	}
	return nil
}

// AddFlags adds the provision flags to the given Cobra command.
func (it *ProvisionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().String("host", "", fmt.Sprintf("GitLab host (default %q)", entities.DefaultHost))
	cmd.Flags().String("default-branch", "", fmt.Sprintf("Default branch of new projects (default %q)", entities.DefaultBranch))
	cmd.Flags().String("auth", "", "Token header: bearer or private-token (default bearer)")
	cmd.Flags().Duration("settle-delay", 0, fmt.Sprintf("Pause after project creation (default %s)", entities.DefaultSettleDelay))
	cmd.Flags().Bool("dry-run", false, "Resolve students and print project names without creating anything")
	cmd.Flags().Bool("no-skip-existing", false, "Do not check for an existing project before creating one")
	cmd.Flags().Bool("no-template-check", false, "Do not verify the template repository before the run")
	cmd.Flags().String("report", "", "Write a YAML report of every entry to this file")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}

// tokenPathFor prefers the positional token file over token_file from the config.
func tokenPathFor(args []string, settings *entities.Settings) string {
	if len(args) == ProvisionArgs {
		return args[ProvisionArgs-1]
	}
	if settings.TokenFile != "" {
		logger.Infof("Using token file from config: %s", settings.TokenFile)
	}
	return settings.TokenFile
}

// loadSettings reads the config file, if any, and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			configPath = found
		}
	}

	settings := entities.NewDefaultSettings()
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		settings.Host, _ = flags.GetString("host")
	}
	if flags.Changed("default-branch") {
		settings.DefaultBranch, _ = flags.GetString("default-branch")
	}
	if flags.Changed("auth") {
		settings.Auth, _ = flags.GetString("auth")
	}
	if flags.Changed("settle-delay") {
		settle, _ := flags.GetDuration("settle-delay")
		settings.SettleDelay = &settle
	}
	if noSkip, _ := flags.GetBool("no-skip-existing"); noSkip {
		skip := false
		settings.SkipExisting = &skip
	}
	if noCheck, _ := flags.GetBool("no-template-check"); noCheck {
		check := false
		settings.CheckTemplate = &check
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
