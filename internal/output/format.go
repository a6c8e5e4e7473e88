// Package output handles machine-readable rendering of API payloads:
// JSON, NDJSON and YAML encoding plus jq and JSONPath filtering. Human
// views (text and HTML tables) live in the display and show packages.
package output

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the human-readable tabular format (default).
	FormatText Format = "text"
	// FormatHTML is tabular output as HTML markup.
	FormatHTML Format = "html"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|html|json|ndjson|jsonl|yaml)")
	}
}

// IsStructured reports whether the format is a machine-readable encoding
// handled by Printer rather than the table display.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatNDJSON || f == FormatYAML
}

// Printer encodes API payloads in a structured format, optionally
// filtering them through a jq query or a JSONPath expression first.
type Printer struct {
	w      io.Writer
	format Format
	query  string
	path   string
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// WithQuery sets a jq filter applied before encoding.
func (p *Printer) WithQuery(query string) *Printer {
	p.query = query
	return p
}

// WithPath sets a JSONPath expression applied before encoding. The jq
// filter, when also set, runs after the path selection.
func (p *Printer) WithPath(path string) *Printer {
	p.path = path
	return p
}

// Print outputs data in the configured format.
func (p *Printer) Print(data any) error {
	if data == nil {
		return nil
	}

	if p.path != "" {
		selected, err := ApplyPath(p.path, data)
		if err != nil {
			return err
		}
		data = selected
	}
	if p.query != "" {
		results, err := ApplyQuery(p.query, data)
		if err != nil {
			return err
		}
		switch len(results) {
		case 0:
			return nil
		case 1:
			data = results[0]
		default:
			data = results
		}
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(data)
	case FormatNDJSON:
		return p.printNDJSON(data)
	case FormatYAML:
		return p.printYAML(data)
	default:
		return errors.New("unsupported format: " + string(p.format))
	}
}

func (p *Printer) printJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (p *Printer) printNDJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			if err := enc.Encode(v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.Encode(data)
}

func (p *Printer) printYAML(data any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// normalizeToInterface round-trips data through JSON so filters only see
// plain maps, slices and scalars.
func normalizeToInterface(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
