package entities

import "github.com/spf13/cobra"

// ControllerBind holds the cobra metadata a controller exposes.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Example string
}

// Controller is a CLI entrypoint backed by a domain command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
