package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
	"github.com/salmonumbrella/polaris-cli/internal/polaris"
	"github.com/salmonumbrella/polaris-cli/internal/ui"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Manage Polaris tables",
	}

	cmd.AddCommand(newTableListCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableCreateCmd())
	cmd.AddCommand(newTableDropCmd())
	cmd.AddCommand(newTableSchemaCmd())
	cmd.AddCommand(newTableInputSchemaCmd())
	cmd.AddCommand(newTablePushCmd())
	cmd.AddCommand(newTablePushEnableCmd())
	cmd.AddCommand(newTablePushDisableCmd())
	return cmd
}

func newTableListCmd() *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				var tables []map[string]any
				if detail {
					tables, err = client.AllTableDetails(ctx)
				} else {
					tables, err = client.AllTableSummaries(ctx)
				}
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(tables)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			if detail {
				return s.TableDetails(ctx)
			}
			return s.Tables(ctx)
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "Show all summary fields per table")
	return cmd
}

func newTableGetCmd() *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show one table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				info, err := fetchTableInfo(ctx, args[0], detail)
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(info)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			if detail {
				return s.Table(ctx, args[0])
			}
			return s.TableSummary(ctx, args[0])
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "Include status and size fields")
	return cmd
}

func fetchTableInfo(ctx context.Context, name string, detail bool) (map[string]any, error) {
	client, err := clientFromContext(ctx)
	if err != nil {
		return nil, err
	}
	t, err := client.TableForName(ctx, name)
	if err != nil {
		return nil, err
	}
	if detail {
		return t.Details(ctx)
	}
	return t.Summary(ctx)
}

func newTableCreateCmd() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a table",
		Long: `Create a table. With just a name an empty schemaless table is created;
--file supplies a full table spec as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}

			var tbl *polaris.Table
			switch {
			case specFile != "":
				spec, err := readJSONFile(specFile)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					spec["name"] = args[0]
				}
				tbl, err = client.CreateTable(ctx, spec)
				if err != nil {
					return err
				}
			case len(args) == 1:
				tbl, err = client.CreateTableNamed(ctx, args[0])
				if err != nil {
					return err
				}
			default:
				return &clierrors.ValidationError{Field: "name", Message: "a table name or --file is required"}
			}

			ui.FromContext(ctx).Success("Created table %s (%s)", tbl.Name(), tbl.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&specFile, "file", "f", "", "Table spec JSON file")
	return cmd
}

func newTableDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <name>",
		Short: "Drop a table and all its data",
		Long: `Drop a table. Deletion is asynchronous: the table may remain visible
for a short while after this returns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}
			t, err := client.TableForName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := t.Drop(ctx); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Dropped table %s", args[0])
			return nil
		},
	}
}

func newTableSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <name>",
		Short: "Show a table's column schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				t, err := client.TableForName(ctx, args[0])
				if err != nil {
					return err
				}
				schema, err := t.Schema(ctx)
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(schema)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			return s.TableSchema(ctx, args[0])
		},
	}
}

func newTableInputSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "input-schema <name>",
		Short: "Show a table's input schema",
		Long:  `Show the columns events must carry when pushed into the table.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				t, err := client.TableForName(ctx, args[0])
				if err != nil {
					return err
				}
				schema, err := t.InputSchema(ctx)
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(schema)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			return s.TableInputSchema(ctx, args[0])
		},
	}
}

func newTablePushCmd() *cobra.Command {
	var eventsFile string

	cmd := &cobra.Command{
		Use:   "push <name>",
		Short: "Push events into a table",
		Long: `Push events into a table through the streaming API. Events are read as
line-delimited JSON from --file or stdin; each event must include the
__time column. Events older than one week are silently dropped by Polaris.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}
			t, err := client.TableForName(ctx, args[0])
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if eventsFile != "" {
				f, err := os.Open(eventsFile)
				if err != nil {
					return fmt.Errorf("failed to open events file: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}
			events, err := readEvents(in)
			if err != nil {
				return err
			}
			if err := t.Insert(ctx, events); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Pushed %d events to %s", len(events), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&eventsFile, "file", "f", "", "Events file, one JSON object per line (default stdin)")
	return cmd
}

func newTablePushEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push-enable <name>",
		Short: "Enable push streaming for a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}
			t, err := client.TableForName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := t.EnablePush(ctx); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Push streaming enabled for %s", args[0])
			return nil
		},
	}
}

func newTablePushDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push-disable <name>",
		Short: "Disable push streaming for a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}
			t, err := client.TableForName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := t.DisablePush(ctx); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Push streaming disabled for %s", args[0])
			return nil
		},
	}
}

func readJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return obj, nil
}

// readEvents parses line-delimited JSON, skipping blank lines.
func readEvents(r io.Reader) ([]map[string]any, error) {
	var events []map[string]any
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event map[string]any
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			return nil, fmt.Errorf("invalid event on line %d: %w", lineNo, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
