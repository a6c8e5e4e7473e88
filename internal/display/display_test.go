package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmonumbrella/polaris-cli/internal/table"
)

func TestShowObjectInfersSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	err := d.ShowObject(map[string]any{"b": 2, "a": 1}, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Key  Value", lines[0])
	assert.Equal(t, "a        1", lines[1])
	assert.Equal(t, "b        2", lines[2])
}

func TestShowObjectWithSelection(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	obj := map[string]any{"name": "wiki", "id": "t1", "ignored": true}
	err := d.ShowObject(obj, Columns("name", "Name", "id", "ID"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "wiki")
	assert.NotContains(t, out, "ignored")
}

func TestShowObjectEmpty(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	require.NoError(t, d.ShowObject(map[string]any{}, nil))
	// Headers only, no body rows.
	assert.Equal(t, "Key  Value\n", buf.String())
}

func TestShowObjectListMissingKeysAreHoles(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	objs := []map[string]any{
		{"name": "a", "size": 10},
		{"name": "bb"},
	}
	err := d.ShowObjectList(objs, Columns("name", "Name", "size", "Size"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name  Size", lines[0])
	assert.Equal(t, "a       10", lines[1])
	assert.Equal(t, "bb", lines[2])
}

func TestShowObjectListInfersFromFirstObject(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	objs := []map[string]any{
		{"name": "a"},
		{"name": "b", "extra": "hidden"},
	}
	require.NoError(t, d.ShowObjectList(objs, nil))
	assert.NotContains(t, buf.String(), "hidden")
}

func TestShowObjectListEmptyWithoutSelection(t *testing.T) {
	d := New(&bytes.Buffer{})
	err := d.ShowObjectList(nil, nil)
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestShowObjectListEmptyWithSelection(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	require.NoError(t, d.ShowObjectList(nil, Columns("k", "K")))
	assert.Equal(t, "K\n", buf.String())
}

func TestHTMLStylesEmittedOnce(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	require.NoError(t, d.HTML())
	d.Text()
	require.NoError(t, d.HTML())

	assert.Equal(t, 1, strings.Count(buf.String(), "<style>"))
}

func TestHTMLModeRendersMarkup(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	require.NoError(t, d.HTML())
	buf.Reset()

	err := d.ShowTable([][]table.Value{{table.String("x"), table.Int(7)}}, []string{"Name", "N"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<div class="pol"><table>`)
	assert.Contains(t, out, `<td class="pol-right">7</td>`)
}

func TestMessageAndAlertPerMode(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	require.NoError(t, d.Message("hello"))
	assert.Equal(t, "hello\n", buf.String())

	require.NoError(t, d.HTML())
	buf.Reset()
	require.NoError(t, d.Alert("bad news"))
	assert.Equal(t, "<div class=\"pol\"><span class=\"pol-alert\">bad news</span></div>\n", buf.String())
}
