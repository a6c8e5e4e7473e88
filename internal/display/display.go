// Package display selects between the text and HTML table renderers and
// adapts objects and object lists into table form.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/salmonumbrella/polaris-cli/internal/table"
)

// Mode selects the rendering backend.
type Mode int

const (
	ModeText Mode = iota
	ModeHTML
)

// Display routes tables, messages and alerts to a sink in the current
// mode. It owns the "styles emitted" state for HTML output: the CSS block
// is written to the sink at most once, the first time HTML mode is
// activated, and the flag never resets.
type Display struct {
	w             io.Writer
	mode          Mode
	stylesEmitted bool
}

// New creates a Display in text mode writing to w (stdout if nil).
func New(w io.Writer) *Display {
	if w == nil {
		w = os.Stdout
	}
	return &Display{w: w}
}

// Mode returns the current rendering mode.
func (d *Display) Mode() Mode {
	return d.mode
}

// Text switches to plain-text rendering.
func (d *Display) Text() {
	d.mode = ModeText
}

// HTML switches to HTML rendering, emitting the table style block on the
// first activation. The write is best effort: the flag transitions even if
// the sink fails, so styles are never emitted twice.
func (d *Display) HTML() error {
	d.mode = ModeHTML
	if d.stylesEmitted {
		return nil
	}
	d.stylesEmitted = true
	_, err := fmt.Fprintln(d.w, table.Styles)
	return err
}

// renderer is the common surface of the text and HTML table renderers.
type renderer interface {
	Headers(headers []table.Value)
	Show(rows [][]table.Value) error
}

func (d *Display) newTable() renderer {
	if d.mode == ModeHTML {
		return table.NewHTMLTable(d.w)
	}
	return table.NewTextTable(d.w)
}

// ShowTable renders rows under the given header labels.
func (d *Display) ShowTable(rows [][]table.Value, headers []string) error {
	t := d.newTable()
	if headers != nil {
		cells := make([]table.Value, len(headers))
		for i, h := range headers {
			cells[i] = table.String(h)
		}
		t.Headers(cells)
	}
	return t.Show(rows)
}

// Message writes an informational line in the current mode.
func (d *Display) Message(msg string) error {
	if d.mode == ModeHTML {
		_, err := fmt.Fprintln(d.w, table.Wrap(msg))
		return err
	}
	_, err := fmt.Fprintln(d.w, msg)
	return err
}

// Alert writes a warning line in the current mode.
func (d *Display) Alert(msg string) error {
	if d.mode == ModeHTML {
		_, err := fmt.Fprintln(d.w, table.Wrap(`<span class="pol-alert">`+msg+`</span>`))
		return err
	}
	_, err := fmt.Fprintln(d.w, msg)
	return err
}
