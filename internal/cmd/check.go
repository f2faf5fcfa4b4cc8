package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/fsnamer/internal/checker"
	"github.com/harrison/fsnamer/internal/config"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [group...]",
		Short: "Validate filenames against the check configuration",
		Long: `Validate the filenames of every group in the check configuration
against the group's regular expression. Only the named groups are checked
when group names are given.

The configuration is TOML, YAML or JSON depending on its extension:

  [paths.docs]
  path = "docs"
  pattern = '^[a-z0-9-]+\.md$'
  ignore = [".checkignore"]   # gitignore-style files
  exclude = ["drafts/"]       # inline gitignore-style patterns
  recursive = true            # default

Checking stops at the first file that does not match unless --all is given.`,
		RunE: runCheck,
	}

	cmd.Flags().StringP("config", "C", "", "Check configuration file (default: fsnamer.toml)")
	cmd.Flags().Bool("all", false, "Report every mismatching file instead of stopping at the first")
	cmd.Flags().Bool("hidden", false, "Include hidden files and directories")
	cmd.Flags().Bool("no-require-git", false, "Allow running outside a git repository")

	return cmd
}

// runCheck implements the check command logic
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config")
		cfg.MergeWithFlags(nil, nil, nil, nil, nil, &path)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, closeLog, err := newLogger(cmd, cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	log.LogDebug(fmt.Sprintf("Config file: %s", cfg.CheckConfig))
	checkCfg, err := config.LoadCheckConfig(cfg.CheckConfig)
	if err != nil {
		return err
	}

	groups, err := checkCfg.Select(args)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	c := &checker.Checker{
		RequireRepository: cfg.RequireRepository,
		IncludeHidden:     cfg.IncludeHidden,
		Global:            globalPaths.GlobalIgnore(),
		Logger:            log,
		KeepGoing:         all,
	}
	if err := c.CheckGroups(groups); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s checked, all filenames conform\n", len(groups), pluralize(len(groups), "group", "groups"))
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
