package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, &buf)

	slog.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("expected debug message to be logged in debug mode")
	}
}

func TestSetupInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, &buf)

	slog.Debug("hidden")
	slog.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug messages should be suppressed at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("expected info message to be logged")
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupJSON(false, &buf)

	slog.Info("structured", "key", "value")
	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}
