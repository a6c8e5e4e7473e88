package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLTableRender(t *testing.T) {
	ht := NewHTMLTable(nil)
	ht.Headers([]Value{String("Name"), String("Size")})
	got := ht.Render([][]Value{
		{String("alpha"), Int(10)},
		{String("b"), Int(2000)},
	})

	assert.Equal(t, `<table>
<tr><th class="pol-left">Name</th><th class="pol-right">Size</th></tr>
<tr><td class="pol-left">alpha</td><td class="pol-right">10</td></tr>
<tr><td class="pol-left">b</td><td class="pol-right">2000</td></tr>
</table>`, got)
}

func TestHTMLTableEmpty(t *testing.T) {
	ht := NewHTMLTable(nil)
	assert.Equal(t, "<table>\n</table>", ht.Render(nil))
}

func TestHTMLTableNoHeaders(t *testing.T) {
	ht := NewHTMLTable(nil)
	got := ht.Render([][]Value{{Int(1)}})
	assert.Equal(t, "<table>\n<tr><td class=\"pol-right\">1</td></tr>\n</table>", got)
}

func TestHTMLTableHolesRenderEmptyCells(t *testing.T) {
	ht := NewHTMLTable(nil)
	got := ht.Render([][]Value{
		{String("a")},
		{String("b"), Int(2)},
	})
	// The ragged first row is padded; its second cell is an empty <td>.
	require.Contains(t, got, `<td class="pol-right"></td>`)
}

func TestHTMLTableCellTextNotEscaped(t *testing.T) {
	ht := NewHTMLTable(nil)
	got := ht.Render([][]Value{{String("<b>bold</b>")}})
	assert.Contains(t, got, "<b>bold</b>")
}

func TestHTMLTableShowWrapsInContainer(t *testing.T) {
	var buf bytes.Buffer
	ht := NewHTMLTable(&buf)
	require.NoError(t, ht.Show([][]Value{{String("x")}}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<div class="pol"><table>`))
	assert.True(t, strings.HasSuffix(out, "</table></div>\n"))
}
