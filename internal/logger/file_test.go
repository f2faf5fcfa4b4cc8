package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/harrison/fsnamer/internal/models"
)

// TestNewFileLogger verifies the run log and latest.log symlink are created
func TestNewFileLogger(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if !strings.HasPrefix(filepath.Base(logger.Path()), "run-") || filepath.Ext(logger.Path()) != ".log" {
		t.Errorf("unexpected run log name %q", logger.Path())
	}

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(logger.Path()) {
		t.Errorf("latest.log -> %q, want %q", target, filepath.Base(logger.Path()))
	}

	if _, err := uuid.Parse(logger.RunID()); err != nil {
		t.Errorf("RunID() = %q is not a UUID: %v", logger.RunID(), err)
	}
}

// TestFileLoggerContent verifies header, renames, checks and summary are written
func TestFileLoggerContent(t *testing.T) {
	logDir := t.TempDir()
	logger, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.LogDebug("hidden at info")
	logger.LogRename(models.RenameOutcome{OriginalPath: "Foo Bar.md", NewPath: "foo-bar.md", Renamed: true})
	logger.LogGroupStart(models.CheckGroup{Name: "docs", Path: "docs", Pattern: ".", Recursive: false})
	logger.LogCheck("docs/B.md", false)
	logger.LogFixSummary(&models.FixResult{Renamed: 1, Unchanged: 4, Errors: []error{os.ErrExist}}, false)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"=== fsnamer Run Log ===",
		"Run ID: " + logger.RunID(),
		`RENAME "Foo Bar.md" -> "foo-bar.md"`,
		"Checking docs...",
		"\tRecursive: false",
		"[ERROR] KO docs/B.md",
		"1 files renamed in 0 s (4 unchanged, 1 failed)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("run log missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "hidden at info") {
		t.Error("debug message should be filtered at info level")
	}
}

// TestFileLoggerCloseTwice verifies Close is idempotent
func TestFileLoggerCloseTwice(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "debug")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	logger.LogInfo("after close is dropped")
}
