package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextTable renders rows as a fixed-width, whitespace-aligned table.
// Columns are separated by two spaces and sized to the widest printed cell
// in each column; trailing whitespace is trimmed from every line.
type TextTable struct {
	Base
	w io.Writer
}

// NewTextTable creates a text renderer writing to w (stdout if nil).
func NewTextTable(w io.Writer) *TextTable {
	if w == nil {
		w = os.Stdout
	}
	return &TextTable{w: w}
}

// Show writes the table for rows. Empty input with no headers produces no
// output.
func (t *TextTable) Show(rows [][]Value) error {
	_, width := t.RowWidth(rows)
	align := t.FindAlignments(rows, width)
	headers := t.PadHeaders(width)
	rows = t.PadRows(rows, width)

	widths := make([]int, width)
	for i := 0; i < width && i < len(headers); i++ {
		widths[i] = runewidth.StringWidth(headers[i].String())
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell.String()); i < width && w > widths[i] {
				widths[i] = w
			}
		}
	}

	if headers != nil {
		if err := t.writeLine(headers, widths, align); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := t.writeLine(row, widths, align); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextTable) writeLine(cells []Value, widths []int, align []Alignment) error {
	parts := make([]string, len(widths))
	for i := range widths {
		parts[i] = alignCell(cells[i].String(), widths[i], align[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(t.w, line)
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
