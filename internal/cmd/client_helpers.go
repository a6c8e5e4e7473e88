package cmd

import (
	"context"
	"os"

	"github.com/salmonumbrella/polaris-cli/internal/auth"
	"github.com/salmonumbrella/polaris-cli/internal/display"
	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
	"github.com/salmonumbrella/polaris-cli/internal/output"
	"github.com/salmonumbrella/polaris-cli/internal/polaris"
	"github.com/salmonumbrella/polaris-cli/internal/show"
)

// Environment overrides, mostly for tests and CI.
const (
	envOrg      = "POLARIS_ORG"
	envAPIURL   = "POLARIS_API_URL"
	envTokenURL = "POLARIS_TOKEN_URL"
)

// resolveOrg picks the organization: --org flag, then environment, then
// config file.
func resolveOrg(ctx context.Context) (string, error) {
	opts := optionsFromContext(ctx)
	if opts.org != "" {
		return opts.org, nil
	}
	if org := os.Getenv(envOrg); org != "" {
		return org, nil
	}
	cfg := ConfigFromContext(ctx)
	if cfg.Org != "" {
		return cfg.Org, nil
	}
	return "", clierrors.NewUserError("no organization configured",
		"Set one with 'pol config set org <name>' or --org")
}

// clientFromContext builds a Polaris client from config, flags and stored
// credentials.
func clientFromContext(ctx context.Context) (*polaris.Client, error) {
	org, err := resolveOrg(ctx)
	if err != nil {
		return nil, err
	}
	cfg := ConfigFromContext(ctx)
	creds, err := auth.ResolveCredentials(org, cfg.ClientID)
	if err != nil {
		return nil, err
	}

	opts := optionsFromContext(ctx)
	client := polaris.NewClient(org, creds.ClientID, creds.ClientSecret).
		WithDomain(cfg.Domain)
	if apiURL := os.Getenv(envAPIURL); apiURL != "" {
		client.WithBaseURL(apiURL)
	}
	if tokenURL := os.Getenv(envTokenURL); tokenURL != "" {
		client.WithTokenURL(tokenURL)
	}
	if opts.trace {
		client.WithTrace()
	}
	if opts.debug {
		client.WithDebugOutput(appFromContext(ctx).Stderr)
	}

	project := opts.project
	if project == "" {
		project = cfg.DefaultProject
	}
	if project != "" {
		if err := client.SetProject(ctx, project); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// showFromContext builds a Show over a fresh client, switched to HTML when
// requested.
func showFromContext(ctx context.Context) (*show.Show, error) {
	client, err := clientFromContext(ctx)
	if err != nil {
		return nil, err
	}
	d := display.New(appFromContext(ctx).Stdout)
	s := show.New(client, d)
	if optionsFromContext(ctx).format == output.FormatHTML {
		if err := s.AsHTML(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// printerFromContext builds a Printer for structured output formats.
func printerFromContext(ctx context.Context) *output.Printer {
	opts := optionsFromContext(ctx)
	return output.NewPrinter(appFromContext(ctx).Stdout, opts.format).
		WithQuery(opts.jq).
		WithPath(opts.path)
}

// structuredOutput reports whether the invocation asked for a machine
// format rather than a table view.
func structuredOutput(ctx context.Context) bool {
	return optionsFromContext(ctx).format.IsStructured()
}
