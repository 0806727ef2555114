// Package config handles configuration loading for riskcore.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Config represents the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"     json:"api"`
	Engine  EngineConfig  `mapstructure:"engine"  yaml:"engine"  json:"engine"`
	Data    DataConfig    `mapstructure:"data"    yaml:"data"    json:"data"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"         json:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"         json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
}

// EngineConfig holds assessment engine settings.
type EngineConfig struct {
	CacheTTL          int    `mapstructure:"cache_ttl"          yaml:"cache_ttl"          json:"cache_ttl"`          // seconds
	ConcurrentFetches int    `mapstructure:"concurrent_fetches" yaml:"concurrent_fetches" json:"concurrent_fetches"`
	DefaultTier       string `mapstructure:"default_tier"       yaml:"default_tier"       json:"default_tier"` // "conservative", "moderate", "aggressive"
}

// DataConfig holds market data source settings.
type DataConfig struct {
	ScrapeBaseURL string   `mapstructure:"scrape_base_url" yaml:"scrape_base_url"          json:"scrape_base_url"`
	NewsFeeds     []string `mapstructure:"news_feeds"      yaml:"news_feeds,omitempty"     json:"news_feeds,omitempty"` // RSS URLs; empty = built-in defaults
	NewsLimit     int      `mapstructure:"news_limit"      yaml:"news_limit"               json:"news_limit"`
	QuoteAPIKey   string   `mapstructure:"quote_api_key"   yaml:"quote_api_key,omitempty"  json:"-"` // optional; most public quote endpoints need none
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.riskcore/config.yaml (home directory)
//  3. /etc/riskcore/config.yaml (system)
//
// Environment variables override config file values.
// Format: RISKCORE_<SECTION>_<KEY>, e.g., RISKCORE_API_PORT
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".riskcore"))
	v.AddConfigPath("/etc/riskcore")

	// Environment variable settings
	v.SetEnvPrefix("RISKCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Override sensitive values from environment
	overrideFromEnv(&cfg)

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("RISKCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// SaveToFile writes the configuration to the given path as YAML.
// The file is written with 0600 permissions since it may contain API keys.
func SaveToFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}
	return nil
}

// ConfigFilePath returns the path of the active config file: the first file
// present in the standard search order, or the project-local default when
// none exists yet.
func ConfigFilePath() string {
	candidates := []string{
		filepath.Join("config", "config.yaml"),
		filepath.Join(homeDir(), ".riskcore", "config.yaml"),
		filepath.Join("/etc/riskcore", "config.yaml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return candidates[0]
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Engine defaults
	v.SetDefault("engine.cache_ttl", 300) // 5 minutes
	v.SetDefault("engine.concurrent_fetches", 5)
	v.SetDefault("engine.default_tier", "moderate")

	// Data defaults
	v.SetDefault("data.scrape_base_url", "https://stockanalysis.com/stocks")
	v.SetDefault("data.news_limit", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("RISKCORE_DATA_QUOTE_API_KEY"); key != "" {
		cfg.Data.QuoteAPIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
