package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/classrepos/internal/infrastructure/controllers"
)

func buildRootCommand(provisionController *controllers.ProvisionController) *cobra.Command {
	bind := provisionController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Example:       bind.Example,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return provisionController.Execute(command, args)
		},
	}
	provisionController.AddFlags(cmd)
	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	provisionController := injectProvisionController()
	cobraRoot := buildRootCommand(provisionController)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'classrepos': %s", err)
	}
}
