package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"html", FormatHTML, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"ndjson", FormatNDJSON, false},
		{"jsonl", FormatNDJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, FormatJSON)
	err := p.Print(map[string]any{"name": "wikipedia"})
	if err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := "{\n  \"name\": \"wikipedia\"\n}\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintNDJSONUnrollsSlices(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, FormatNDJSON)
	err := p.Print([]map[string]any{{"id": "a"}, {"id": "b"}})
	if err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := "{\"id\":\"a\"}\n{\"id\":\"b\"}\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, FormatYAML)
	err := p.Print(map[string]any{"name": "wikipedia", "rows": 42})
	if err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: wikipedia") || !strings.Contains(out, "rows: 42") {
		t.Errorf("unexpected YAML output:\n%s", out)
	}
}

func TestPrintWithQuery(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, FormatJSON).WithQuery(".values[].name")
	err := p.Print(map[string]any{"values": []map[string]any{
		{"name": "wikipedia"},
		{"name": "koalas"},
	}})
	if err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "wikipedia") || !strings.Contains(out, "koalas") {
		t.Errorf("unexpected filtered output:\n%s", out)
	}
}

func TestPrintWithInvalidQuery(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, FormatJSON).WithQuery(".values[")
	err := p.Print(map[string]any{"values": []any{}})
	if err == nil {
		t.Fatal("expected error for invalid jq query")
	}
	if !strings.Contains(err.Error(), "invalid --jq") {
		t.Errorf("error = %v", err)
	}
}

func TestPrintWithPath(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, FormatJSON).WithPath("$.values[0].name")
	err := p.Print(map[string]any{"values": []map[string]any{{"name": "wikipedia"}}})
	if err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if got := buf.String(); got != "\"wikipedia\"\n" {
		t.Errorf("output = %q", got)
	}
}

func TestApplyPathNormalizesPrefix(t *testing.T) {
	data := map[string]any{"name": "wikipedia"}
	for _, path := range []string{"$.name", ".name", "name"} {
		got, err := ApplyPath(path, data)
		if err != nil {
			t.Fatalf("ApplyPath(%q) error: %v", path, err)
		}
		if got != "wikipedia" {
			t.Errorf("ApplyPath(%q) = %#v", path, got)
		}
	}
}

func TestApplyQueryReportsRuntimeErrors(t *testing.T) {
	_, err := ApplyQuery(".foo | keys", map[string]any{"foo": "scalar"})
	if err == nil {
		t.Fatal("expected runtime query error")
	}
	if !strings.Contains(err.Error(), "query error") {
		t.Errorf("error = %v", err)
	}
}

func TestIsStructured(t *testing.T) {
	if FormatText.IsStructured() || FormatHTML.IsStructured() {
		t.Error("table formats must not be structured")
	}
	if !FormatJSON.IsStructured() || !FormatYAML.IsStructured() || !FormatNDJSON.IsStructured() {
		t.Error("encoded formats must be structured")
	}
}
