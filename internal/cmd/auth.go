package cmd

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/polaris-cli/internal/auth"
	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
	"github.com/salmonumbrella/polaris-cli/internal/ui"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Polaris API credentials",
		Long: `Manage OAuth client credentials for the Polaris API.
Credentials are stored per organization in the system keyring.`,
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var clientID, clientSecret string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store OAuth client credentials",
		Long: `Store OAuth client credentials for an organization.

Create an API client in the Polaris console (Settings > API clients) with
the client-credentials grant, then run:

  pol auth login --org <org> --client-id <id>

The client secret is read interactively, or from --client-secret for
non-interactive use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := resolveOrg(cmd.Context())
			if err != nil {
				return err
			}
			if strings.TrimSpace(clientID) == "" {
				return &clierrors.ValidationError{Field: "client-id", Message: "client ID is required"}
			}
			secret := clientSecret
			if secret == "" {
				secret, err = promptSecret(cmd, "Client secret: ")
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(secret) == "" {
				return &clierrors.ValidationError{Field: "client-secret", Message: "client secret is required"}
			}

			err = auth.SetCredentials(org, auth.Credentials{
				ClientID:     clientID,
				ClientSecret: secret,
			})
			if err != nil {
				return err
			}
			ui.FromContext(cmd.Context()).Success("Credentials stored for organization %s", org)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth client secret (omit to be prompted)")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored credential status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			org, err := resolveOrg(ctx)
			if err != nil {
				return err
			}
			out := appFromContext(ctx).Stdout

			if os.Getenv(auth.EnvClientSecret) != "" {
				fmt.Fprintf(out, "Organization: %s\nCredentials: environment (%s)\n",
					org, auth.EnvClientSecret)
				return nil
			}
			creds, err := auth.GetCredentials(org)
			if err != nil {
				fmt.Fprintf(out, "Organization: %s\nCredentials: none\n", org)
				return nil
			}
			fmt.Fprintf(out, "Organization: %s\nCredentials: keyring\nClient ID: %s\n",
				org, creds.ClientID)
			if !creds.CreatedAt.IsZero() {
				fmt.Fprintf(out, "Stored: %s\n", creds.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			org, err := resolveOrg(ctx)
			if err != nil {
				return err
			}
			if err := auth.DeleteCredentials(org); err != nil {
				return err
			}
			ui.FromContext(ctx).Success("Credentials removed for organization %s", org)
			return nil
		},
	}
}

// promptSecret reads a secret without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", &clierrors.ValidationError{
			Field:   "client-secret",
			Message: "stdin is not a terminal; pass --client-secret",
		}
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}
