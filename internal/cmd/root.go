package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fsnamer
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsnamer",
		Short: "Enforce filename naming conventions",
		Long: `fsnamer keeps filenames consistent across a directory tree.

fix renames files to a case convention (kebab-case by default), or
translates names read from stdin when given --text.

check validates filenames in the groups of a check configuration
(fsnamer.toml by default) against per-group regular expressions.

Both modes honour .gitignore files, a per-user ignore file and any
--ignore-file given on the command line, and refuse to run outside a
git repository unless --no-require-git is set.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("settings", "", "Path to settings file (default: nearest .fsnamer/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("log-dir", "", "Directory for run logs (disabled when empty)")

	cmd.AddCommand(NewFixCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewConventionsCommand())

	return cmd
}
