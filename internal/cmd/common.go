package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/fsnamer/internal/config"
	"github.com/harrison/fsnamer/internal/logger"
)

// globalPaths locates the per-user ignore file.
var globalPaths = config.Paths{}

// loadSettings loads the tool settings and applies the persistent flags and
// the walk flags shared by fix and check.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	settingsPath, _ := cmd.Flags().GetString("settings")
	cfg, err := config.LoadSettings(settingsPath, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	var logLevel, logDir *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDir = &v
	}

	var requireRepository, includeHidden *bool
	if cmd.Flags().Changed("no-require-git") {
		v, _ := cmd.Flags().GetBool("no-require-git")
		v = !v
		requireRepository = &v
	}
	if cmd.Flags().Changed("hidden") {
		v, _ := cmd.Flags().GetBool("hidden")
		includeHidden = &v
	}

	cfg.MergeWithFlags(nil, logLevel, logDir, requireRepository, includeHidden, nil)
	return cfg, nil
}

// newLogger builds the console logger (on stderr) and, when a log directory
// is configured, a run log file. The returned func closes the run log.
func newLogger(cmd *cobra.Command, cfg *config.Config, quiet bool) (logger.Logger, func(), error) {
	level := cfg.LogLevel
	if quiet {
		level = "error"
	}
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), level)

	if cfg.LogDir == "" {
		return console, func() {}, nil
	}

	fileLogger, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	console.LogDebug(fmt.Sprintf("Run log: %s (run %s)", fileLogger.Path(), fileLogger.RunID()))

	closeLog := func() {
		if err := fileLogger.Close(); err != nil {
			console.LogWarn(err.Error())
		}
	}
	return logger.Multi{console, fileLogger}, closeLog, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
