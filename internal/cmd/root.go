package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/polaris-cli/internal/config"
	"github.com/salmonumbrella/polaris-cli/internal/logging"
	"github.com/salmonumbrella/polaris-cli/internal/output"
	"github.com/salmonumbrella/polaris-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	var (
		outputFlag  string
		jqFlag      string
		pathFlag    string
		debugFlag   bool
		traceFlag   bool
		orgFlag     string
		projectFlag string
		colorFlag   string
	)

	rootCmd := &cobra.Command{
		Use:   "pol",
		Short: "CLI for the Imply Polaris API",
		Long:  `A command-line interface for Imply Polaris: tables, projects, streaming ingestion and SQL queries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Error output is handled centrally in App.Execute.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugFlag, app.Stderr)

			// Skip config loading for config commands to avoid recursion.
			var cfg *config.Config
			if !isConfigCommand(cmd) {
				loaded, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			} else {
				cfg = &config.Config{}
			}

			formatInput := outputFlag
			if formatInput == "" {
				formatInput = cfg.Output
			}
			format, err := output.ParseFormat(formatInput)
			if err != nil {
				return err
			}

			colorInput := colorFlag
			if colorInput == "" {
				colorInput = cfg.Color
			}

			ctx := withApp(cmd.Context(), app)
			ctx = WithConfig(ctx, cfg)
			ctx = withOptions(ctx, options{
				format:  format,
				jq:      jqFlag,
				path:    pathFlag,
				debug:   debugFlag,
				trace:   traceFlag,
				org:     orgFlag,
				project: projectFlag,
			})
			ctx = ui.WithUI(ctx, ui.NewWithWriter(app.Stderr, ui.ParseColorMode(colorInput)))
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pol %s (commit: %s, built: %s)\n",
		app.Version, app.Commit, app.BuildTime))
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFlag, "output", "o", "", "Output format: text|html|json|ndjson|jsonl|yaml")
	flags.StringVar(&jqFlag, "jq", "", "jq expression to filter structured output")
	flags.StringVar(&pathFlag, "path", "", "JSONPath expression to select part of structured output (e.g. $.values[0].name)")
	flags.BoolVar(&debugFlag, "debug", false, "Log full HTTP requests and responses")
	flags.BoolVar(&traceFlag, "trace", false, "Log one line per API request")
	flags.StringVar(&orgFlag, "org", "", "Organization name (overrides POLARIS_ORG and config)")
	flags.StringVarP(&projectFlag, "project", "p", "", "Project to run SQL queries against")
	flags.StringVar(&colorFlag, "color", "", "Color mode: auto|always|never")
	flagAlias(flags, "output", "format")
	flagAlias(flags, "jq", "query")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newSQLCmd())

	return rootCmd
}

func isConfigCommand(cmd *cobra.Command) bool {
	if cmd.Name() == "config" {
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "config"
}
