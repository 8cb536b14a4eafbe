// Package commands implements CLI command handlers for figgen.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/uistudio/figgen/internal/config"
	"github.com/uistudio/figgen/internal/figma"
	"github.com/uistudio/figgen/internal/generate"
)

// tokenEnvVar is the conventional Figma token variable, honored alongside
// the FIGGEN_TOKEN config key.
const tokenEnvVar = "FIGMA_TOKEN"

// loadConfig reads the figgen configuration from the optional explicit path.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// resolveToken returns the configured access token, preferring the config
// value over the FIGMA_TOKEN environment variable.
func resolveToken(cfg *config.Config) string {
	if cfg.Token != "" {
		return cfg.Token
	}

	return os.Getenv(tokenEnvVar)
}

// buildClient constructs a Figma client from configuration. It returns
// nil without error when no token is configured, letting commands that
// can work from local input proceed.
func buildClient(cfg *config.Config, logger *slog.Logger) (*figma.Client, error) {
	token := resolveToken(cfg)
	if token == "" {
		return nil, nil
	}

	client, err := figma.NewClient(token, cfg.CacheEntries, figma.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("build figma client: %w", err)
	}

	return client, nil
}

// optionsFromConfig converts the configured generation defaults.
func optionsFromConfig(cfg *config.Config) generate.Options {
	return generate.Options{
		IncludeStyles:  cfg.Generate.IncludeStyles,
		DebugComments:  cfg.Generate.DebugComments,
		NormalizedIDs:  cfg.Generate.NormalizedIDs,
		SuggestImports: cfg.Generate.SuggestImports,
		WrapRoot:       cfg.Generate.WrapRoot,
	}
}
