package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newSQLCmd() *cobra.Command {
	var queryFile string

	cmd := &cobra.Command{
		Use:   "sql [statement]",
		Short: "Run a SQL query",
		Long: `Run a Druid SQL query against the selected project and render the
result rows. The statement is taken from the argument, --file, or stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stmt, err := readStatement(cmd, args, queryFile)
			if err != nil {
				return err
			}

			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				rows, err := client.SQL(ctx, stmt)
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(rows)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			return s.SQL(ctx, stmt)
		},
	}

	cmd.Flags().StringVarP(&queryFile, "file", "f", "", "Read the SQL statement from a file ('-' for stdin)")
	return cmd
}

func readStatement(cmd *cobra.Command, args []string, queryFile string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	var in io.Reader = cmd.InOrStdin()
	if queryFile != "" && queryFile != "-" {
		f, err := os.Open(queryFile)
		if err != nil {
			return "", fmt.Errorf("failed to open query file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read query: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
