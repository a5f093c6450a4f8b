package utb

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"utb/internal/cli"
	"utb/internal/cli/commands"
	"utb/internal/config"
)

var version = "dev"

// Execute runs the CLI over the default module registry. It returns
// the process exit code.
func Execute() int {
	rootCmd := &cobra.Command{
		Use:     "utb",
		Short:   "Scenario bridge for xUnit-style tests",
		Long:    `Run legacy xUnit-style test cases as scenarios. Registered test modules are wrapped into scenarios, executed sequentially and reported with scenario semantics.`,
		Version: version,
	}

	cfg := config.New()
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, defaultRegistry)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
