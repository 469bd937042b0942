// Package config loads application configuration from environment
// variables with sensible defaults for a single-user desktop setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Storage StorageConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name     string
	Debug    bool
	LogLevel string
}

// StorageConfig holds the record book storage settings.
type StorageConfig struct {
	// Path to the SQLite file holding the record book.
	Path string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:     "edulog",
			Debug:    getEnvBool("EDULOG_DEBUG", false),
			LogLevel: getEnv("EDULOG_LOG_LEVEL", "INFO"),
		},
		Storage: StorageConfig{
			Path: getEnv("EDULOG_DATA_PATH", defaultDataPath()),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("config: EDULOG_DATA_PATH must not be empty")
	}
	return nil
}

// defaultDataPath places the record book under the user's home directory.
func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "edulog.db"
	}
	return filepath.Join(home, ".edulog", "edulog.db")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
