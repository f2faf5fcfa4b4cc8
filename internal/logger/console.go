// Package logger provides logging implementations for fsnamer runs.
//
// The logger package offers leveled logging of rename and check progress.
// Implementations are thread-safe and support various output destinations
// (console, run log file, or several at once through Multi).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/fsnamer/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is implemented by every logger in this package. It satisfies the
// logger interfaces of the fixer, checker and ignore packages.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogRename(outcome models.RenameOutcome)
	LogGroupStart(group models.CheckGroup)
	LogCheck(path string, ok bool)
	LogFixSummary(result *models.FixResult, text bool)
}

// ConsoleLogger logs run progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// color.NoColor is true when NO_COLOR is set or stdout is not a TTY
		return !color.NoColor
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}

	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogRename logs a performed rename at INFO level.
// Format: "[HH:MM:SS] [INFO] <old> -> <new>"
func (cl *ConsoleLogger) LogRename(outcome models.RenameOutcome) {
	if !outcome.Renamed {
		cl.LogTrace(fmt.Sprintf("%s unchanged", outcome.OriginalPath))
		return
	}
	cl.LogInfo(fmt.Sprintf("%s -> %s", outcome.OriginalPath, outcome.NewPath))
}

// LogGroupStart logs the header of a check group at INFO level.
func (cl *ConsoleLogger) LogGroupStart(group models.CheckGroup) {
	for _, line := range groupLines(group) {
		cl.LogInfo(line)
	}
}

// LogCheck logs one checked file: OK at INFO, KO at ERROR.
func (cl *ConsoleLogger) LogCheck(path string, ok bool) {
	if ok {
		cl.LogInfo("\t\t" + cl.paint(color.FgGreen, "OK") + " " + path)
		return
	}
	cl.LogError("\t\t" + cl.paint(color.FgRed, "KO") + " " + path)
}

// LogFixSummary logs the totals of a fix run at DEBUG level. The user-facing
// summary line is printed by the command itself.
func (cl *ConsoleLogger) LogFixSummary(result *models.FixResult, text bool) {
	if result == nil {
		return
	}
	cl.LogDebug(summaryLine(result, text))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, cl.coloredLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func (cl *ConsoleLogger) coloredLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

func (cl *ConsoleLogger) paint(attr color.Attribute, s string) string {
	if !cl.colorOutput {
		return s
	}
	return color.New(attr).Sprint(s)
}

// groupLines renders the check group header shared by console and file logs.
func groupLines(group models.CheckGroup) []string {
	lines := []string{
		fmt.Sprintf("Checking %s...", group.Name),
		fmt.Sprintf("\tPath: %s", group.Path),
		fmt.Sprintf("\tPattern: %s", group.Pattern),
	}
	if len(group.Ignore) > 0 || len(group.Exclude) > 0 {
		lines = append(lines, "\tIgnoring:")
		for _, f := range group.Ignore {
			lines = append(lines, "\t- "+f)
		}
		for _, p := range group.Exclude {
			lines = append(lines, "\t- "+p)
		}
	}
	if !group.Recursive {
		lines = append(lines, "\tRecursive: false")
	}
	return lines
}

// summaryLine renders "N files renamed in X s" or, for text mode,
// "N names translated in X s".
func summaryLine(result *models.FixResult, text bool) string {
	seconds := result.Duration.Seconds()
	if text {
		return fmt.Sprintf("%d names translated in %s s", len(result.Outcomes), formatSeconds(seconds))
	}
	return fmt.Sprintf("%d files renamed in %s s", result.Renamed, formatSeconds(seconds))
}

// SummaryLine is the user-facing summary of a fix run.
func SummaryLine(result *models.FixResult, text bool) string {
	return summaryLine(result, text)
}

// formatSeconds prints seconds with microsecond precision and no trailing zeros.
func formatSeconds(s float64) string {
	out := strings.TrimRight(fmt.Sprintf("%.6f", s), "0")
	return strings.TrimSuffix(out, ".")
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string)                           {}
func (n *NoOpLogger) LogDebug(message string)                           {}
func (n *NoOpLogger) LogInfo(message string)                            {}
func (n *NoOpLogger) LogWarn(message string)                            {}
func (n *NoOpLogger) LogError(message string)                           {}
func (n *NoOpLogger) LogRename(outcome models.RenameOutcome)            {}
func (n *NoOpLogger) LogGroupStart(group models.CheckGroup)             {}
func (n *NoOpLogger) LogCheck(path string, ok bool)                     {}
func (n *NoOpLogger) LogFixSummary(result *models.FixResult, text bool) {}
