package config

import (
	"os"
	"strconv"

	"gofit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Test   TestConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds file upload limits
type UploadConfig struct {
	MaxFileSizeMB int64
	CacheLimit    int
}

// TestConfig holds statistical test defaults
type TestConfig struct {
	DefaultAlpha float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: int64(getEnvIntOrDefault("UPLOAD_MAX_MB", 50)),
			CacheLimit:    getEnvIntOrDefault("DATASET_CACHE_LIMIT", 64),
		},
		Test: TestConfig{
			DefaultAlpha: getEnvFloatOrDefault("DEFAULT_ALPHA", 0.05),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("SERVER_PORT must not be empty")
	}
	if config.Upload.MaxFileSizeMB <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_MB must be positive")
	}
	if config.Upload.CacheLimit <= 0 {
		return errors.ConfigInvalid("DATASET_CACHE_LIMIT must be positive")
	}
	if config.Test.DefaultAlpha <= 0 || config.Test.DefaultAlpha >= 1 {
		return errors.ConfigInvalid("DEFAULT_ALPHA must be in (0,1)")
	}
	return nil
}

// MaxFileSizeBytes returns the upload cap in bytes.
func (u UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
