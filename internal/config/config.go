// Package config handles configuration loading for FundView.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Market  MarketConfig  `mapstructure:"market"  yaml:"market"`
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	LLM     LLMConfig     `mapstructure:"llm"     yaml:"llm"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host          string   `mapstructure:"host"           yaml:"host"`
	Port          int      `mapstructure:"port"           yaml:"port"`
	SessionSecret string   `mapstructure:"session_secret" yaml:"session_secret"` // cookie signing key; deployment secret
	CORSOrigins   []string `mapstructure:"cors_origins"   yaml:"cors_origins"`
}

// MarketConfig holds market-data provider settings.
type MarketConfig struct {
	BaseURL      string `mapstructure:"base_url"      yaml:"base_url"`      // Yahoo Finance query host
	HeadlineFeed string `mapstructure:"headline_feed" yaml:"headline_feed"` // RSS feed URL pattern, %s = ticker
}

// NewsConfig holds the news/sentiment provider settings.
type NewsConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // Alpha Vantage query endpoint
}

// LLMConfig holds the generative-text provider settings.
type LLMConfig struct {
	GeminiKey string `mapstructure:"gemini_key" yaml:"gemini_key"`
	Model     string `mapstructure:"model"      yaml:"model"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.fundview/config.yaml (home directory)
//  3. /etc/fundview/config.yaml (system)
//
// Environment variables override config file values.
// Format: FUNDVIEW_<SECTION>_<KEY>, e.g., FUNDVIEW_NEWS_API_KEY
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".fundview"))
	v.AddConfigPath("/etc/fundview")

	v.SetEnvPrefix("FUNDVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("FUNDVIEW")
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

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("market.base_url", "https://query1.finance.yahoo.com")

	v.SetDefault("news.base_url", "https://www.alphavantage.co/query")

	v.SetDefault("llm.model", "gemini-1.5-flash")

	v.SetDefault("logging.level", "info")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("FUNDVIEW_NEWS_API_KEY"); key != "" {
		cfg.News.APIKey = key
	}
	if key := os.Getenv("FUNDVIEW_LLM_GEMINI_KEY"); key != "" {
		cfg.LLM.GeminiKey = key
	}
	if key := os.Getenv("FUNDVIEW_SERVER_SESSION_SECRET"); key != "" {
		cfg.Server.SessionSecret = key
	}
}

// Validate checks that required deployment secrets are present.
func (c *Config) Validate() error {
	if c.Server.SessionSecret == "" {
		return fmt.Errorf("server.session_secret is required (set FUNDVIEW_SERVER_SESSION_SECRET)")
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
