package commands

import (
	"utb/internal/bridge"
	"utb/internal/config"
	"utb/internal/host"
	"utb/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *host.ModuleRegistry
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, registry *host.ModuleRegistry) *ListCommand {
	return &ListCommand{config: cfg, registry: registry}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	session := bridge.NewSession(lc.config, lc.registry)

	groups, err := session.Discover(cmd.Context())
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		color.Yellow("No scenarios found")
		return nil
	}

	formatter := ui.NewFormatter(lc.config)
	formatter.PrintScenarioList(groups)
	return nil
}
