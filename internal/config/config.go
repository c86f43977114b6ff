package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/vietnews-mcp/pkg/filesystem"
)

// Defaults for the fetch pipeline. The timeout and per-feed cap are part of
// the aggregation contract; the config file can override them for testing
// against slow or local feeds.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultUserAgent    = "vietnews-mcp/1.0 (Vietnamese News MCP Server)"
	DefaultPerFeedLimit = 10
)

// Config holds the central application configuration
type Config struct {
	// Fetch settings for upstream RSS feeds
	Fetch struct {
		Timeout      time.Duration `mapstructure:"timeout"`        // per-feed HTTP timeout
		UserAgent    string        `mapstructure:"user_agent"`     // identifying request header
		PerFeedLimit int           `mapstructure:"per_feed_limit"` // max entries taken per feed
	} `mapstructure:"fetch"`

	// SourcesFile optionally points to a YAML file with extra sources
	// appended after the built-in catalog.
	SourcesFile string `mapstructure:"sources_file"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	// If path is relative, try current directory first, then executable directory
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if execPath, err := filesystem.GetDefaultPath(path); err == nil {
				if _, err := os.Stat(execPath); err == nil {
					path = execPath
				}
			}
			// If both fail, use original path and let Viper handle the error
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.user_agent", DefaultUserAgent)
	v.SetDefault("fetch.per_feed_limit", DefaultPerFeedLimit)
	v.SetDefault("sources_file", "")

	// A missing config file is fine - defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
