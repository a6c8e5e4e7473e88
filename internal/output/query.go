package output

import (
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// ApplyQuery runs a jq filter over data and returns the emitted values.
// Data is normalized to map/slice form first so typed values never reach
// the interpreter.
func ApplyQuery(query string, data any) ([]any, error) {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, invalidQueryErr(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, invalidQueryErr(err)
	}

	var results []any
	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %s", queryErr.Error())
		}
		results = append(results, v)
	}
	return results, nil
}

func invalidQueryErr(err error) error {
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "unexpected eof") {
		return fmt.Errorf("invalid --jq: %w\nHint: query looks incomplete; quote it fully", err)
	}
	return fmt.Errorf("invalid --jq: %w", err)
}
