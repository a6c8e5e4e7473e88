// Package show renders Polaris resources through the display layer: table
// and project listings, single-resource detail views and SQL results.
package show

import (
	"context"
	"fmt"
	"math"

	"github.com/salmonumbrella/polaris-cli/internal/display"
	"github.com/salmonumbrella/polaris-cli/internal/polaris"
	"github.com/salmonumbrella/polaris-cli/internal/table"
)

// summaryColumns labels the fields of a table summary view.
var summaryColumns = display.Columns(
	"name", "Name",
	"id", "ID",
	"version", "Version",
	"lastUpdateDateTime", "Last Update",
	"lastModifiedByUsername", "Updated By",
	"createdByUsername", "Created By",
	"timePartitioning", "Time Partitioning",
	"pushEndpointUrl", "Push Endpoint",
)

// detailColumns extends the summary view with size and status fields.
var detailColumns = append(append([]display.Column(nil), summaryColumns...), display.Columns(
	"status", "Status",
	"totalDataSize", "Data Size (bytes)",
	"totalRows", "Row Count",
)...)

// schemaColumns labels schema column listings.
var schemaColumns = display.Columns("name", "Name", "type", "Type")

// Show renders Polaris resources for interactive use.
type Show struct {
	client  *polaris.Client
	display *display.Display
}

// New creates a Show over a client and display.
func New(client *polaris.Client, d *display.Display) *Show {
	return &Show{client: client, display: d}
}

// Display exposes the underlying display for mode switching.
func (s *Show) Display() *display.Display {
	return s.display
}

// AsText switches rendering to plain text.
func (s *Show) AsText() {
	s.display.Text()
}

// AsHTML switches rendering to HTML.
func (s *Show) AsHTML() error {
	return s.display.HTML()
}

// Object renders an arbitrary object as a Key/Value table.
func (s *Show) Object(obj map[string]any) error {
	return s.display.ShowObject(obj, nil)
}

// Tables renders the list of table names.
func (s *Show) Tables(ctx context.Context) error {
	summaries, err := s.client.AllTableSummaries(ctx)
	if err != nil {
		return err
	}
	rows := make([][]table.Value, len(summaries))
	for i, t := range summaries {
		rows[i] = table.Row(t["name"])
	}
	return s.display.ShowTable(rows, []string{"Table"})
}

// TableDetails renders all tables with their summary fields.
func (s *Show) TableDetails(ctx context.Context) error {
	summaries, err := s.client.AllTableSummaries(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return s.display.Message("No tables defined.")
	}
	return s.display.ShowObjectList(summaries, nil)
}

// TableSummary renders the summary view for one table.
func (s *Show) TableSummary(ctx context.Context, name string) error {
	t, err := s.client.TableForName(ctx, name)
	if err != nil {
		return err
	}
	summary, err := t.Summary(ctx)
	if err != nil {
		return err
	}
	return s.display.ShowObject(summary, summaryColumns)
}

// Table renders the detail view for one table.
func (s *Show) Table(ctx context.Context, name string) error {
	t, err := s.client.TableForName(ctx, name)
	if err != nil {
		return err
	}
	details, err := t.Details(ctx)
	if err != nil {
		return err
	}
	return s.display.ShowObject(details, detailColumns)
}

// TableSchema renders a table's column schema.
func (s *Show) TableSchema(ctx context.Context, name string) error {
	t, err := s.client.TableForName(ctx, name)
	if err != nil {
		return err
	}
	schema, err := t.Schema(ctx)
	if err != nil {
		return err
	}
	return s.showSchema(schema)
}

// TableInputSchema renders a table's input schema. Note the input schema
// omits the mandatory __time column.
func (s *Show) TableInputSchema(ctx context.Context, name string) error {
	t, err := s.client.TableForName(ctx, name)
	if err != nil {
		return err
	}
	schema, err := t.InputSchema(ctx)
	if err != nil {
		return err
	}
	if len(schema) == 0 {
		return s.display.Message("No input schema defined.")
	}
	return s.showSchema(schema)
}

func (s *Show) showSchema(schema []any) error {
	objs := make([]map[string]any, 0, len(schema))
	for _, col := range schema {
		if obj, ok := col.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return s.display.ShowObjectList(objs, schemaColumns)
}

// Projects renders the project list.
func (s *Show) Projects(ctx context.Context) error {
	projects, err := s.client.Projects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return s.display.Message("No projects available.")
	}
	rows := make([][]table.Value, len(projects))
	for i, p := range projects {
		meta, _ := p["metadata"].(map[string]any)
		spec, _ := p["spec"].(map[string]any)
		status, _ := p["status"].(map[string]any)
		rows[i] = table.Row(
			meta["name"],
			meta["uid"],
			spec["plan"],
			toMB(status["currentBytes"]),
			status["state"],
		)
	}
	return s.display.ShowTable(rows, []string{"Name", "ID", "Plan", "Size (MB)", "State"})
}

// Project renders the detail view for one project.
func (s *Show) Project(ctx context.Context, name string) error {
	proj, err := s.client.Project(ctx, name)
	if err != nil {
		return err
	}
	if proj == nil {
		return s.display.Alert(fmt.Sprintf("Project %s is undefined", name))
	}

	details := map[string]any{}
	for _, section := range []string{"metadata", "spec", "status"} {
		if m, ok := proj[section].(map[string]any); ok {
			for k, v := range m {
				details[k] = v
			}
		}
	}
	details["maxMb"] = toMB(details["maxBytes"])
	details["currentMb"] = toMB(details["currentBytes"])

	return s.display.ShowObject(details, display.Columns(
		"name", "Name",
		"uid", "ID",
		"plan", "Plan",
		"maxMb", "Size Limit (MB)",
		"currentMb", "Current Size (MB)",
		"desiredState", "Desired State",
		"state", "Actual State",
	))
}

// SQL runs a query and renders its result rows.
func (s *Show) SQL(ctx context.Context, stmt string) error {
	results, err := s.client.SQL(ctx, stmt)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return s.display.Message("Query returned no results.")
	}
	return s.display.ShowObjectList(results, nil)
}

// toMB converts a byte count to megabytes with three decimals.
func toMB(v any) any {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	return math.Round(f/1000) / 1000
}
