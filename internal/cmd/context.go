package cmd

import (
	"context"

	"github.com/salmonumbrella/polaris-cli/internal/config"
	"github.com/salmonumbrella/polaris-cli/internal/output"
)

// options carries the resolved global flags for one invocation.
type options struct {
	format  output.Format
	jq      string
	path    string
	debug   bool
	trace   bool
	org     string
	project string
}

type (
	appKey     struct{}
	configKey  struct{}
	optionsKey struct{}
)

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func appFromContext(ctx context.Context) *App {
	if a, ok := ctx.Value(appKey{}).(*App); ok {
		return a
	}
	return NewApp()
}

// WithConfig stores loaded CLI config in context for downstream helpers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves CLI config from context.
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func withOptions(ctx context.Context, opts options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFromContext(ctx context.Context) options {
	if opts, ok := ctx.Value(optionsKey{}).(options); ok {
		return opts
	}
	return options{format: output.FormatText}
}
