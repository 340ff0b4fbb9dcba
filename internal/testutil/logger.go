package testutil

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/robertncl/expense/internal/logger"
)

// logWriter forwards each log line to a test's Log, so session logs only show
// for failing or verbose tests.
type logWriter struct {
	logf func(format string, args ...any)
}

func (w logWriter) Write(p []byte) (int, error) {
	w.logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestLogger returns a debug level logger bound to t.
func TestLogger(t testing.TB) *logger.Logger {
	t.Helper()

	handler := slog.NewTextHandler(logWriter{logf: t.Logf}, &slog.HandlerOptions{Level: slog.LevelDebug})

	return &logger.Logger{Logger: slog.New(handler)}
}
