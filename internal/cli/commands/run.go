package commands

import (
	"fmt"
	"os"

	"utb/internal/bridge"
	"utb/internal/config"
	"utb/internal/host"
	"utb/internal/ui"
	"utb/xunit"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *host.ModuleRegistry
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, registry *host.ModuleRegistry) *RunCommand {
	return &RunCommand{config: cfg, registry: registry}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Verbose {
		xunit.Output = os.Stderr
	}

	session := bridge.NewSession(rc.config, rc.registry)

	groups, err := session.Discover(cmd.Context())
	if err != nil {
		return err
	}
	total := 0
	for _, g := range groups {
		total += len(g.Scenarios)
	}
	if total == 0 {
		color.Yellow("No scenarios to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(total)
	report, err := session.Run(cmd.Context(), progressBar)
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(rc.config)
	formatter.PrintReport(report)

	if report.Failed > 0 {
		if rc.config.Interactive {
			viewer := ui.NewErrorViewer(rc.config)
			if err := viewer.View(report); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d scenario(s) failed", report.Failed)
	}
	return nil
}
