package polaris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

// valuesEnvelope is the list wrapper Polaris uses for collection responses.
type valuesEnvelope struct {
	Values []map[string]any `json:"values"`
}

// CreateTable creates a table from a TableRequest spec. For an empty table
// only the name is required; see CreateTableNamed.
func (c *Client) CreateTable(ctx context.Context, spec map[string]any) (*Table, error) {
	if len(spec) == 0 {
		return nil, &clierrors.ValidationError{Field: "spec", Message: "table spec is required"}
	}
	var details map[string]any
	if err := c.postJSON(ctx, Endpoints.Tables.Create, nil, spec, &details); err != nil {
		return nil, err
	}
	return newTable(c, details), nil
}

// CreateTableNamed creates an empty table with the given name.
func (c *Client) CreateTableNamed(ctx context.Context, name string) (*Table, error) {
	if isBlank(name) {
		return nil, &clierrors.ValidationError{Field: "name", Message: "table name is required"}
	}
	return c.CreateTable(ctx, map[string]any{"name": name})
}

// DropTable drops a table and all its data. Polaris returns OK even for an
// unknown ID; deletion itself completes asynchronously.
func (c *Client) DropTable(ctx context.Context, tableID string) error {
	if isBlank(tableID) {
		return &clierrors.ValidationError{Field: "tableID", Message: "table ID is required"}
	}
	return c.deleteReq(ctx, Endpoints.Tables.Delete, []string{tableID})
}

// AllTableSummaries lists summary metadata for every table.
func (c *Client) AllTableSummaries(ctx context.Context) ([]map[string]any, error) {
	return c.listTables(ctx, url.Values{"detail": {"summary"}})
}

// AllTableDetails lists detail metadata for every table.
func (c *Client) AllTableDetails(ctx context.Context) ([]map[string]any, error) {
	return c.listTables(ctx, url.Values{"detail": {"detailed"}})
}

func (c *Client) listTables(ctx context.Context, query url.Values) ([]map[string]any, error) {
	var envelope valuesEnvelope
	if err := c.getJSON(ctx, Endpoints.Tables.List, nil, query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Values, nil
}

// ResolveTableName returns summary information for a table given its name,
// or nil if no such table is defined.
func (c *Client) ResolveTableName(ctx context.Context, name string) (map[string]any, error) {
	var envelope valuesEnvelope
	if err := c.getJSON(ctx, Endpoints.Tables.List, nil, url.Values{"name": {name}}, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Values) == 0 {
		return nil, nil
	}
	return envelope.Values[0], nil
}

// TableID returns the ID for a table name, or "" if the table is not
// defined.
func (c *Client) TableID(ctx context.Context, name string) (string, error) {
	info, err := c.ResolveTableName(ctx, name)
	if err != nil || info == nil {
		return "", err
	}
	return stringField(info, "id"), nil
}

// TableSummary returns the summary metadata for a table ID.
func (c *Client) TableSummary(ctx context.Context, tableID string) (map[string]any, error) {
	return c.tableInfo(ctx, tableID, "summary")
}

// TableDetails returns the detail metadata for a table ID.
func (c *Client) TableDetails(ctx context.Context, tableID string) (map[string]any, error) {
	return c.tableInfo(ctx, tableID, "detailed")
}

func (c *Client) tableInfo(ctx context.Context, tableID, detail string) (map[string]any, error) {
	if isBlank(tableID) {
		return nil, &clierrors.ValidationError{Field: "tableID", Message: "table ID is required"}
	}
	var info map[string]any
	err := c.getJSON(ctx, Endpoints.Tables.Get, []string{tableID}, url.Values{"detail": {detail}}, &info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// TableForName returns a handle for the named table, or a not-found error
// if the name is undefined.
func (c *Client) TableForName(ctx context.Context, name string) (*Table, error) {
	info, err := c.ResolveTableName(ctx, name)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, clierrors.NotFoundError("table", name)
	}
	return newTable(c, info), nil
}

// TableForID returns a handle for the table with the given ID.
func (c *Client) TableForID(ctx context.Context, tableID string) (*Table, error) {
	info, err := c.TableSummary(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return newTable(c, info), nil
}

// Schemas returns the schemas for all tables, keyed by table name.
func (c *Client) Schemas(ctx context.Context) (map[string]any, error) {
	var schemas map[string]any
	if err := c.getJSON(ctx, Endpoints.Schemas, nil, nil, &schemas); err != nil {
		return nil, err
	}
	return schemas, nil
}

// PushEvents inserts events into a table through the Push API. The wire
// format is line-delimited JSON; each event must include the __time column
// along with the columns of the table's input schema. A nil or empty event
// list is a no-op.
func (c *Client) PushEvents(ctx context.Context, tableID string, events []map[string]any) error {
	if len(events) == 0 {
		return nil
	}
	if isBlank(tableID) {
		return &clierrors.ValidationError{Field: "tableID", Message: "table ID is required"}
	}
	var buf bytes.Buffer
	for i, event := range events {
		line, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event %d: %w", i, err)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return c.postRaw(ctx, Endpoints.Events, []string{tableID}, "application/json", buf.Bytes())
}

// EnablePush enables push streaming for a table.
func (c *Client) EnablePush(ctx context.Context, tableID string) error {
	if isBlank(tableID) {
		return &clierrors.ValidationError{Field: "tableID", Message: "table ID is required"}
	}
	return c.postRaw(ctx, Endpoints.Tables.EnablePush, []string{tableID}, "", nil)
}

// DisablePush disables push streaming for a table.
func (c *Client) DisablePush(ctx context.Context, tableID string) error {
	if isBlank(tableID) {
		return &clierrors.ValidationError{Field: "tableID", Message: "table ID is required"}
	}
	return c.deleteReq(ctx, Endpoints.Tables.DisablePush, []string{tableID})
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
