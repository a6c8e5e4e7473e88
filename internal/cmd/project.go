package cmd

import (
	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
	"github.com/salmonumbrella/polaris-cli/internal/ui"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage Polaris projects",
	}

	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectGetCmd())
	cmd.AddCommand(newProjectUseCmd())
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				projects, err := client.Projects(ctx)
				if err != nil {
					return err
				}
				return printerFromContext(ctx).Print(projects)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			return s.Projects(ctx)
		},
	}
}

func newProjectGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if structuredOutput(ctx) {
				client, err := clientFromContext(ctx)
				if err != nil {
					return err
				}
				proj, err := client.Project(ctx, args[0])
				if err != nil {
					return err
				}
				if proj == nil {
					return clierrors.NotFoundError("project", args[0])
				}
				return printerFromContext(ctx).Print(proj)
			}

			s, err := showFromContext(ctx)
			if err != nil {
				return err
			}
			return s.Project(ctx, args[0])
		},
	}
}

func newProjectUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Select the default project for SQL queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}
			// Validates the name against the API before persisting.
			if err := client.SetProject(ctx, args[0]); err != nil {
				return err
			}

			cfg := ConfigFromContext(ctx)
			cfg.DefaultProject = args[0]
			if err := cfg.Save(); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Default project set to %s", args[0])
			return nil
		},
	}
}
