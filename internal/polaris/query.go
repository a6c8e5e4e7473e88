package polaris

import (
	"context"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

// SQL executes a Druid SQL statement and returns the result rows, one
// key/value object per row. Queries run in the context of the selected
// project (SetProject), falling back to project inference.
//
// The result schema is only discoverable from the first row: a query that
// returns no rows reveals nothing about its columns.
func (c *Client) SQL(ctx context.Context, stmt string) ([]map[string]any, error) {
	if isBlank(stmt) {
		return nil, &clierrors.ValidationError{Field: "stmt", Message: "SQL statement is required"}
	}
	if c.projectID == "" {
		if err := c.inferProject(ctx); err != nil {
			return nil, err
		}
	}
	var results []map[string]any
	body := map[string]any{"query": stmt}
	if err := c.postJSON(ctx, Endpoints.Query, []string{c.projectID}, body, &results); err != nil {
		return nil, err
	}
	return results, nil
}
