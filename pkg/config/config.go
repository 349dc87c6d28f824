// Package config provides configuration management for the ledger tools.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Ledger LedgerConfig
	Debug  bool
	Env    string
}

// LedgerConfig represents ledger-tree configuration.
type LedgerConfig struct {
	Root     string
	DBPath   string
	MainFile string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Ledger: LedgerConfig{
			Root:     getEnvOrDefault("LEDGER_ROOT", "./ledger"),
			DBPath:   os.Getenv("LEDGER_DB_PATH"),
			MainFile: os.Getenv("LEDGER_MAIN_FILE"),
		},
		Debug: os.Getenv("DEBUG") == "true",
		Env:   getEnvOrDefault("APP_ENV", "development"),
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) == 0 {
			continue
		}

		var value string
		switch path[0] {
		case "ledger":
			if len(path) < 2 {
				continue
			}
			switch path[1] {
			case "root":
				value = c.Ledger.Root
			case "dbPath":
				value = c.Ledger.DBPath
			case "mainFile":
				value = c.Ledger.MainFile
			}
		}

		if value == "" {
			missing = append(missing, joinPath(path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// joinPath joins a path slice into a dot-separated string.
func joinPath(path []string) string {
	result := ""
	for i, p := range path {
		if i > 0 {
			result += "."
		}
		result += p
	}
	return result
}
