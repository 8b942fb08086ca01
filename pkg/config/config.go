// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Reads an optional .env file, then the environment, with validated defaults

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Dictionary contains lookup target and fetcher settings
	Dictionary DictionaryConfig

	// Log contains logger settings
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" env-default:"8000"`
}

// DictionaryConfig holds dictionary client configuration
type DictionaryConfig struct {
	// BaseURL is the dictionary origin lookups run against
	BaseURL string `env:"DLE_BASE_URL" env-default:"https://dle.rae.es"`

	// UserAgent is sent with every dictionary request; the site rejects
	// agents that do not look like a browser
	UserAgent string `env:"DLE_USER_AGENT" env-default:"Mozilla/5.0"`

	// FetcherType selects the HTTP client implementation (standard/colly)
	FetcherType string `env:"FETCHER_TYPE" env-default:"standard"`

	// HTTPTimeoutSeconds bounds each dictionary request
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT_SECONDS" env-default:"10"`

	// WordOfDayFeedURL overrides the palabra del día feed location
	WordOfDayFeedURL string `env:"WOTD_FEED_URL" env-default:""`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `env:"LOG_LEVEL" env-default:"info"`

	// Format is text or json
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// HTTPTimeout returns the configured request timeout as a duration
func (c DictionaryConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// LoadFromEnv loads configuration from an optional .env file and the
// environment
func LoadFromEnv() (*Config, error) {
	// A missing .env file is fine, the environment alone still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Dictionary.BaseURL == "" {
		return errors.New("dictionary base url cannot be empty")
	}

	if c.Dictionary.FetcherType != "standard" && c.Dictionary.FetcherType != "colly" {
		return errors.New("fetcher type must be 'standard' or 'colly'")
	}

	if c.Dictionary.HTTPTimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	return nil
}
