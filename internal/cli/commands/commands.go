package commands

import (
	"utb/internal/cli"
	"utb/internal/config"
	"utb/internal/host"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *host.ModuleRegistry) *Commands {
	return &Commands{
		Run:  NewRunCommand(cfg, registry),
		List: NewListCommand(cfg, registry),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	reload := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run legacy test scenarios",
		Long:    "Wrap registered xUnit-style test modules into scenarios and execute them",
		RunE:    c.Run.Execute,
		PreRunE: reload,
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter scenarios by name pattern (supports wildcards, e.g., 'Scenario_User*' or '*Payment*')")
	runCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Open the failure viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.NoAggregate, "no-aggregate", false, "Report only the first recorded error of a multi-failure scenario")
	runCmd.Flags().BoolVar(&flags.NoFilterTracebacks, "no-filter-tracebacks", false, "Keep engine-internal frames in reported tracebacks")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered scenarios",
		Long:    "Build and list all scenarios without executing them",
		RunE:    c.List.Execute,
		PreRunE: reload,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter scenarios by name pattern (supports wildcards, e.g., 'Scenario_User*' or '*Payment*')")
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
}
