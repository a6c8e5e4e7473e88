// Package logging configures the global slog logger for the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger with text output. If debug is
// true the level drops to Debug; otherwise Info. Output goes to the
// provided writer (stderr if nil).
func Setup(debug bool, w io.Writer) {
	configure(debug, w, false)
}

// SetupJSON is Setup with JSON output, for log collectors.
func SetupJSON(debug bool, w io.Writer) {
	configure(debug, w, true)
}

func configure(debug bool, w io.Writer, jsonOut bool) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
