package table

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Styles is the CSS block for rendered HTML tables. The display layer emits
// it at most once per sink, the first time HTML mode is activated.
const Styles = `<style>
  .pol table {
    border: 1px solid black;
    border-collapse: collapse;
  }

  .pol th, .pol td {
    padding: 4px 1em;
    text-align: left;
  }

  td.pol-right, th.pol-right {
    text-align: right;
  }

  td.pol-center, th.pol-center {
    text-align: center;
  }

  .pol .pol-left {
    text-align: left;
  }

  .pol-alert {
    color: red;
  }
</style>`

var alignClasses = map[Alignment]string{
	AlignLeft:   "pol-left",
	AlignCenter: "pol-center",
	AlignRight:  "pol-right",
}

// HTMLTable renders rows as an HTML <table> whose cells carry CSS classes
// encoding their column's resolved alignment. Cell text is not escaped;
// content is trusted to come from the caller.
type HTMLTable struct {
	Base
	w io.Writer
}

// NewHTMLTable creates an HTML renderer writing to w (stdout if nil).
func NewHTMLTable(w io.Writer) *HTMLTable {
	if w == nil {
		w = os.Stdout
	}
	return &HTMLTable{w: w}
}

// Render returns the <table> markup for rows without writing anywhere.
// Empty input with no headers yields an empty, well-formed table.
func (t *HTMLTable) Render(rows [][]Value) string {
	_, width := t.RowWidth(rows)
	align := t.FindAlignments(rows, width)
	headers := t.PadHeaders(width)
	rows = t.PadRows(rows, width)

	var sb strings.Builder
	sb.WriteString("<table>\n")
	if headers != nil {
		sb.WriteString("<tr>")
		for i, h := range headers {
			writeCell(&sb, "th", h.String(), align[i])
		}
		sb.WriteString("</tr>\n")
	}
	for _, row := range rows {
		sb.WriteString("<tr>")
		for i, cell := range row {
			writeCell(&sb, "td", cell.String(), align[i])
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>")
	return sb.String()
}

// Show renders the table and writes it to the sink wrapped in the pol
// container div so the shared styles apply.
func (t *HTMLTable) Show(rows [][]Value) error {
	_, err := fmt.Fprintln(t.w, Wrap(t.Render(rows)))
	return err
}

// Wrap encloses markup in the container div the style block targets.
func Wrap(markup string) string {
	return `<div class="pol">` + markup + `</div>`
}

func writeCell(sb *strings.Builder, tag, text string, align Alignment) {
	sb.WriteString("<")
	sb.WriteString(tag)
	if class, ok := alignClasses[align]; ok {
		sb.WriteString(fmt.Sprintf(" class=%q", class))
	}
	sb.WriteString(">")
	sb.WriteString(text)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
}
