package display

import (
	"errors"
	"sort"

	"github.com/salmonumbrella/polaris-cli/internal/table"
)

// ErrNoColumns is returned when a column selection must be inferred from an
// empty object list.
var ErrNoColumns = errors.New("cannot infer columns from an empty object list")

// Column maps an object key to a display label. Selections are ordered
// slices rather than maps so callers control column order.
type Column struct {
	Key   string
	Label string
}

// Columns builds a selection from alternating key, label pairs.
func Columns(pairs ...string) []Column {
	cols := make([]Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cols = append(cols, Column{Key: pairs[i], Label: pairs[i+1]})
	}
	return cols
}

// inferColumns derives a selection from an object's keys in sorted order,
// each key labeling itself.
func inferColumns(obj map[string]any) []Column {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cols := make([]Column, len(keys))
	for i, k := range keys {
		cols[i] = Column{Key: k, Label: k}
	}
	return cols
}

// cellFor looks up a key, keeping the distinction between a missing key
// (hole) and a present null.
func cellFor(obj map[string]any, key string) table.Value {
	v, ok := obj[key]
	if !ok {
		return table.Hole
	}
	return table.From(v)
}

// ShowObject renders a single object as a two-column Key/Value table. With
// a nil selection every key is shown, in sorted order, labeled by itself.
// An object with no keys renders an empty body under the fixed headers.
func (d *Display) ShowObject(obj map[string]any, cols []Column) error {
	if cols == nil {
		cols = inferColumns(obj)
	}
	rows := make([][]table.Value, len(cols))
	for i, col := range cols {
		rows[i] = []table.Value{table.String(col.Label), cellFor(obj, col.Key)}
	}
	return d.ShowTable(rows, []string{"Key", "Value"})
}

// ShowObjectList renders one row per object under the selection's labels.
// Keys missing from an object yield holes. With a nil selection the columns
// are inferred from the first object only; inferring from an empty list is
// a precondition violation.
func (d *Display) ShowObjectList(objs []map[string]any, cols []Column) error {
	if cols == nil {
		if len(objs) == 0 {
			return ErrNoColumns
		}
		cols = inferColumns(objs[0])
	}
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Label
	}
	rows := make([][]table.Value, len(objs))
	for i, obj := range objs {
		row := make([]table.Value, len(cols))
		for j, col := range cols {
			row[j] = cellFor(obj, col.Key)
		}
		rows[i] = row
	}
	return d.ShowTable(rows, headers)
}
