// Package config loads figgen settings from file, environment, and
// defaults via viper.
package config

import (
	"errors"
	"fmt"
)

// DefaultCacheEntries bounds the fetched-document cache.
const DefaultCacheEntries = 32

// ErrBadCacheEntries indicates a non-positive cache size.
var ErrBadCacheEntries = errors.New("cache_entries must be positive")

// Config is the top-level configuration struct for figgen.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Token        string         `mapstructure:"token"`
	CacheEntries int            `mapstructure:"cache_entries"`
	Generate     GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds the default generation options. Command-line flags
// override these per invocation.
type GenerateConfig struct {
	IncludeStyles  bool `mapstructure:"include_styles"`
	DebugComments  bool `mapstructure:"debug_comments"`
	NormalizedIDs  bool `mapstructure:"normalized_ids"`
	SuggestImports bool `mapstructure:"suggest_imports"`
	WrapRoot       bool `mapstructure:"wrap_root"`
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.CacheEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCacheEntries, c.CacheEntries)
	}

	return nil
}
