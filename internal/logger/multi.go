package logger

import "github.com/harrison/fsnamer/internal/models"

// Multi forwards every call to each of its loggers in order.
type Multi []Logger

func (m Multi) LogTrace(message string) {
	for _, l := range m {
		l.LogTrace(message)
	}
}

func (m Multi) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

func (m Multi) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

func (m Multi) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

func (m Multi) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}

func (m Multi) LogRename(outcome models.RenameOutcome) {
	for _, l := range m {
		l.LogRename(outcome)
	}
}

func (m Multi) LogGroupStart(group models.CheckGroup) {
	for _, l := range m {
		l.LogGroupStart(group)
	}
}

func (m Multi) LogCheck(path string, ok bool) {
	for _, l := range m {
		l.LogCheck(path, ok)
	}
}

func (m Multi) LogFixSummary(result *models.FixResult, text bool) {
	for _, l := range m {
		l.LogFixSummary(result, text)
	}
}
