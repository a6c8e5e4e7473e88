// Package table renders heterogeneous row data as fixed-width text or HTML
// tables, inferring per-column alignment and width from the data itself.
package table

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindHole marks an absent cell. It is distinct from an empty string:
	// holes never influence alignment inference and always render as "".
	KindHole Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
)

// Value is a tagged cell value: string, number, bool, null, or a hole.
// The zero value is a hole.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Hole is the absent cell value.
var Hole = Value{}

// String wraps a string cell value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric cell value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Int wraps an integer cell value.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

// Bool wraps a boolean cell value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Null is the JSON null cell value. Unlike a hole it is present, so it
// participates in alignment inference.
func Null() Value {
	return Value{kind: KindNull}
}

// From converts an arbitrary (typically JSON-decoded) value into a Value.
// nil maps to Null; unrecognized types fall back to their fmt rendering.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsHole reports whether the cell is absent.
func (v Value) IsHole() bool {
	return v.kind == KindHole
}

// String renders the value as display text. Holes render as the empty
// string, numbers in their shortest exact form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Row builds a row of cells from arbitrary values via From.
func Row(vals ...any) []Value {
	row := make([]Value, len(vals))
	for i, v := range vals {
		row[i] = From(v)
	}
	return row
}
