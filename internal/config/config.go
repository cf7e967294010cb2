package config

import (
	"fmt"
	"os"

	"invoicer/internal/logger"
)

// Supported page sizes for generated documents.
const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"
)

type Config struct {
	// Document Configuration
	PageSize     string // A4 or Letter
	DefaultsPath string // optional template file applied before generation

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		PageSize:      getEnv("INVOICER_PAGE_SIZE", PageSizeA4),
		DefaultsPath:  getEnv("INVOICER_DEFAULTS", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.PageSize != PageSizeA4 && c.PageSize != PageSizeLetter {
		return fmt.Errorf("INVOICER_PAGE_SIZE must be %q or %q, got %q", PageSizeA4, PageSizeLetter, c.PageSize)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
