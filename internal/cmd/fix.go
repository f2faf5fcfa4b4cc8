package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/fsnamer/internal/codec"
	"github.com/harrison/fsnamer/internal/display"
	"github.com/harrison/fsnamer/internal/filelock"
	"github.com/harrison/fsnamer/internal/fixer"
	"github.com/harrison/fsnamer/internal/ignore"
	"github.com/harrison/fsnamer/internal/logger"
	"github.com/harrison/fsnamer/internal/models"
	"github.com/harrison/fsnamer/internal/walker"
)

// NewFixCommand creates the fix command
func NewFixCommand() *cobra.Command {
	convention := codec.KebabCase

	cmd := &cobra.Command{
		Use:   "fix [dir]",
		Short: "Rename files to a naming convention",
		Long: `Rename the files in a directory so their names follow a naming
convention. Only the immediate children of the directory are renamed unless
--recursive is given; directories are kept unless --include-dir is given.

Names that would collide with an existing entry are reported and left alone.

With --text, names are read from stdin one per line (until an empty line)
and their canonical form is written to stdout. Nothing on disk is touched.

Examples:
  fsnamer fix                          # kebab-case the current directory
  fsnamer fix -r -D docs               # recurse, renaming directories too
  fsnamer fix -c snake --dry-run src   # preview snake_case renames
  ls | fsnamer fix -t -c Title_Case    # translate names only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, convention)
		},
	}

	cmd.Flags().BoolP("recursive", "r", false, "Rename files in subdirectories too")
	cmd.Flags().BoolP("include-dir", "D", false, "Rename directories too")
	cmd.Flags().BoolP("quiet", "q", false, "Only print errors")
	cmd.Flags().BoolP("text", "t", false, "Translate names read from stdin instead of renaming files")
	cmd.Flags().VarP(&convention, "convention", "c", "Naming convention (see 'fsnamer conventions')")
	cmd.Flags().StringArray("ignore-file", nil, "Extra gitignore-style file (repeatable)")
	cmd.Flags().Bool("hidden", false, "Include hidden files and directories")
	cmd.Flags().Bool("no-require-git", false, "Allow running outside a git repository")
	cmd.Flags().Bool("dry-run", false, "Show what would be renamed without renaming")

	return cmd
}

// runFix implements the fix command logic
func runFix(cmd *cobra.Command, args []string, convention codec.Convention) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("convention") {
		name := convention.String()
		cfg.MergeWithFlags(&name, nil, nil, nil, nil, nil)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	text, _ := cmd.Flags().GetBool("text")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	log, closeLog, err := newLogger(cmd, cfg, quiet)
	if err != nil {
		return err
	}
	defer closeLog()

	engine := &fixer.Engine{
		Convention: cfg.ParsedConvention(),
		Logger:     log,
		DryRun:     dryRun,
	}

	if text {
		return fixText(cmd, engine, log, quiet)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if !dryRun {
		unlock, err := lockRepository(dir)
		if err != nil {
			return err
		}
		defer unlock()
	}

	extra, _ := cmd.Flags().GetStringArray("ignore-file")
	var sources []ignore.Source
	for _, f := range append(cfg.IgnoreFiles, extra...) {
		sources = append(sources, ignore.File(f))
	}

	recursive, _ := cmd.Flags().GetBool("recursive")
	includeDir, _ := cmd.Flags().GetBool("include-dir")
	maxDepth := 1
	if recursive {
		maxDepth = 0
	}

	if dryRun {
		log.LogInfo("Dry run: nothing will be renamed")
	}
	log.LogDebug(fmt.Sprintf("Fixing %s with %s", dir, engine.Convention))

	result, err := engine.FixTree(walker.Options{
		Root:              dir,
		MaxDepth:          maxDepth,
		RequireRepository: cfg.RequireRepository,
		Ignore:            sources,
		Global:            globalPaths.GlobalIgnore(),
		IncludeHidden:     cfg.IncludeHidden,
		Logger:            log,
	}, includeDir)
	if err != nil {
		return err
	}

	log.LogFixSummary(result, false)
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), logger.SummaryLine(result, false))
	}

	return reportFailures(cmd, result)
}

// fixText translates names from stdin to stdout.
func fixText(cmd *cobra.Command, engine *fixer.Engine, log logger.Logger, quiet bool) error {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter one name per line, an empty line to finish:")
	}

	result, err := engine.FixStream(in, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log.LogFixSummary(result, true)
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), logger.SummaryLine(result, true))
	}

	return reportFailures(cmd, result)
}

// lockRepository takes the repository lock when dir is inside a repository.
func lockRepository(dir string) (func(), error) {
	repo, err := ignore.FindRepository(dir)
	if err != nil {
		if models.IsNoRepository(err) {
			return func() {}, nil
		}
		return nil, err
	}

	lock := filelock.ForRepository(repo)
	if err := lock.Acquire(); err != nil {
		if errors.Is(err, filelock.ErrLocked) {
			return nil, err
		}
		return nil, &models.IOError{Op: "lock", Path: lock.Path(), Err: err}
	}
	return func() { _ = lock.Unlock() }, nil
}

// reportFailures prints the per-entry failures of a run and turns them into
// the command's error.
func reportFailures(cmd *cobra.Command, result *models.FixResult) error {
	if !result.Failed() {
		return nil
	}

	errOut := cmd.ErrOrStderr()
	warning := display.WarnRenameFailures(result.Errors)
	warning.Plain = !isTerminal(errOut) || os.Getenv("NO_COLOR") != ""
	warning.Display(errOut)

	total := len(result.Errors) + result.Renamed + result.Unchanged
	return fmt.Errorf("%d of %d entries could not be fixed", len(result.Errors), total)
}
