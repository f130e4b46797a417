package config

import (
	"fmt"
	"os"
)

// PlacesConfig defines configuration for the remote places-search provider
// used by the ingestion pipeline as its primary business-data source.
type PlacesConfig struct {
	Enabled        bool   `mapstructure:"enabled"`         // Whether the connector is available
	BaseURL        string `mapstructure:"base_url"`        // Provider API root
	APIKey         string `mapstructure:"api_key"`         // API key (can be set directly or via env var)
	APIKeyEnv      string `mapstructure:"api_key_env"`     // Environment variable name for API key
	TimeoutSeconds int    `mapstructure:"timeout_seconds"` // Per-request timeout
	PageSize       int    `mapstructure:"page_size"`       // Results requested per provider call
}

// ResolveEnvVars resolves environment variable references in the configuration.
// A directly set APIKey takes precedence over the env var indirection.
func (c *PlacesConfig) ResolveEnvVars() {
	if c.APIKeyEnv != "" && c.APIKey == "" {
		if val := os.Getenv(c.APIKeyEnv); val != "" {
			c.APIKey = val
		}
	}
}

// Validate checks that the places configuration has all required fields.
// Returns an error describing the first validation failure, or nil if valid.
func (c *PlacesConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.BaseURL == "" {
		return fmt.Errorf("places source: base_url is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("places source: timeout_seconds must be positive")
	}
	return nil
}

// ValidateWithAPIKey validates the configuration including the API key.
// Use this when the connector will actually be called, not just configured.
func (c *PlacesConfig) ValidateWithAPIKey() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Enabled && c.APIKey == "" {
		return fmt.Errorf("places source: api_key is required (set directly or via %s)", c.APIKeyEnv)
	}
	return nil
}
