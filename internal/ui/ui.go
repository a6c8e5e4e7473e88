// Package ui provides colored status messages on stderr, keeping stdout
// free for rendered data.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto detects terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode converts a flag value to a ColorMode, defaulting to auto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

type contextKey string

const uiContextKey contextKey = "ui"

// UI writes formatted status messages with color support.
type UI struct {
	out *termenv.Output
}

// New creates a UI with the given color mode, honoring the NO_COLOR
// convention.
func New(mode ColorMode) *UI {
	return NewWithWriter(os.Stderr, mode)
}

// NewWithWriter creates a UI writing to w.
func NewWithWriter(w io.Writer, mode ColorMode) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.ColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	}

	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// WithUI attaches a UI to the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, uiContextKey, u)
}

// FromContext retrieves the UI from the context, defaulting to auto mode.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(uiContextKey).(*UI); ok {
		return u
	}
	return New(ColorAuto)
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✓ "+msg).Foreground(termenv.ANSIGreen))
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("⚠ "+msg).Foreground(termenv.ANSIYellow))
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✗ "+msg).Foreground(termenv.ANSIRed))
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}

// Writer returns the underlying writer.
func (u *UI) Writer() io.Writer {
	return u.out
}
