package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"ntfyclient/internal/logging"
)

func TestNewNopDiscardsEverything(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected no-op logger to report disabled at every level")
	}
	logger.Error("should vanish", logging.Error(nil))
}

func TestNewComponentLoggerTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	logger := logging.NewComponentLogger(base, "ntfy")
	logger.Info("hello", logging.String("topic", "alerts"))

	line := buf.String()
	if !strings.Contains(line, "component=ntfy") {
		t.Fatalf("expected component attribute, got %q", line)
	}
	if !strings.Contains(line, "topic=alerts") {
		t.Fatalf("expected passthrough attribute, got %q", line)
	}
}

func TestNewComponentLoggerToleratesNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "ntfy")
	logger.Warn("must not panic")
}
