package output

import (
	"strings"

	"github.com/PaesslerAG/jsonpath"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

// ApplyPath selects part of data with a JSONPath expression. A leading
// "$." may be omitted; ".foo" and "foo" both mean "$.foo".
func ApplyPath(path string, data any) (any, error) {
	normalized := normalizePath(path)
	if normalized == "" {
		return nil, clierrors.NewUserError("invalid --path value", "Example: --path '$.values[0].name'")
	}

	plain, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}
	value, err := jsonpath.Get(normalized, plain)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --path value", "Example: --path '$.values[0].name'")
	}
	return value, nil
}

func normalizePath(path string) string {
	p := strings.TrimSpace(path)
	switch {
	case p == "":
		return ""
	case p == "$":
		return "$"
	case strings.HasPrefix(p, "$"):
		return p
	case strings.HasPrefix(p, "."):
		return "$" + p
	default:
		return "$." + p
	}
}
