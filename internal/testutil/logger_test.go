package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
)

func TestLogWriter(t *testing.T) {
	var lines []string
	w := logWriter{logf: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}

	n, err := w.Write([]byte("level=INFO msg=\"Expense added\" index=0\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 39 {
		t.Errorf("Write() = %d, want 39", n)
	}

	if len(lines) != 1 || lines[0] != "level=INFO msg=\"Expense added\" index=0" {
		t.Errorf("logged lines = %q", lines)
	}
}

func TestTestLogger(t *testing.T) {
	log := TestLogger(t)

	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("TestLogger() must log at debug level")
	}

	log.With("session", "test").Debug("Session started")
}
