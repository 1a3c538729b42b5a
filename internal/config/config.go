// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Logging
	LogLevel string

	// Export/import
	DataFile string

	// Demo seeding in cmd/tigerbank
	SeedDemo    bool
	SeedDeposit int // concurrent 1.00 deposits during seeding
}

func Load() *Config {
	return &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DataFile:    getEnv("DATA_FILE", "./data/tigerbank.json"),
		SeedDemo:    getEnvBool("SEED_DEMO", true),
		SeedDeposit: getEnvInt("SEED_DEPOSITS", 20),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty")
	} else {
		dir := filepath.Dir(c.DataFile)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create data directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.SeedDeposit < 0 {
		errors = append(errors, fmt.Sprintf("invalid seed deposit count %d: must not be negative", c.SeedDeposit))
	} else if c.SeedDeposit > 10000 {
		errors = append(errors, fmt.Sprintf("invalid seed deposit count %d: must be at most 10000", c.SeedDeposit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
