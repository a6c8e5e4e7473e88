package polaris

import (
	"context"
	"fmt"
)

// Table is a handle for one Polaris table. It carries the name and ID
// resolved at construction and caches the table's schema after the first
// lookup; everything else is fetched on demand.
type Table struct {
	client *Client
	name   string
	id     string
	schema []any
}

func newTable(c *Client, info map[string]any) *Table {
	return &Table{
		client: c,
		name:   stringField(info, "name"),
		id:     stringField(info, "id"),
	}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// ID returns the table ID.
func (t *Table) ID() string {
	return t.id
}

// Description fetches the table's description.
func (t *Table) Description(ctx context.Context) (string, error) {
	info, err := t.client.ResolveTableName(ctx, t.name)
	if err != nil {
		return "", err
	}
	if info == nil {
		return "", fmt.Errorf("table %q is not defined", t.name)
	}
	return stringField(info, "description"), nil
}

// Summary fetches the table's summary metadata.
func (t *Table) Summary(ctx context.Context) (map[string]any, error) {
	return t.client.TableSummary(ctx, t.id)
}

// Details fetches the table's detail metadata.
func (t *Table) Details(ctx context.Context) (map[string]any, error) {
	return t.client.TableDetails(ctx, t.id)
}

// InputSchema returns the table's input schema, or nil when the details
// carry none.
func (t *Table) InputSchema(ctx context.Context) ([]any, error) {
	details, err := t.Details(ctx)
	if err != nil {
		return nil, err
	}
	schema, _ := details["inputSchema"].([]any)
	return schema, nil
}

// Schema returns the table's column schema, cached after the first call.
func (t *Table) Schema(ctx context.Context) ([]any, error) {
	if t.schema != nil {
		return t.schema, nil
	}
	schemas, err := t.client.Schemas(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := schemas[t.name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema not found for table %q", t.name)
	}
	columns, _ := entry["columns"].([]any)
	t.schema = columns
	return t.schema, nil
}

// Insert pushes rows into the table using the Push API. Rows must match
// the table's input schema; events timestamped outside the last week are
// silently dropped by Polaris.
func (t *Table) Insert(ctx context.Context, rows []map[string]any) error {
	return t.client.PushEvents(ctx, t.id, rows)
}

// Drop drops the table and all its data. Deletion completes asynchronously;
// poll Exists until it reports false before recreating the name.
func (t *Table) Drop(ctx context.Context) error {
	return t.client.DropTable(ctx, t.id)
}

// Exists reports whether the table still exists. Useful after Drop to
// detect when Polaris has finished deleting.
func (t *Table) Exists(ctx context.Context) (bool, error) {
	_, err := t.Details(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnablePush enables push streaming for this table.
func (t *Table) EnablePush(ctx context.Context) error {
	return t.client.EnablePush(ctx, t.id)
}

// DisablePush disables push streaming for this table.
func (t *Table) DisablePush(ctx context.Context) error {
	return t.client.DisablePush(ctx, t.id)
}

// IsPushEnabled reports whether the table has a push endpoint configured.
func (t *Table) IsPushEnabled(ctx context.Context) (bool, error) {
	details, err := t.Details(ctx)
	if err != nil {
		return false, err
	}
	_, ok := details["pushEndpointUrl"]
	return ok && details["pushEndpointUrl"] != nil, nil
}
