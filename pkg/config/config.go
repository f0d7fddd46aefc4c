// Package config provides configuration management for the kakeibo tools.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Kakeibo KakeiboConfig
	History HistoryConfig
	Ledger  LedgerConfig
	Debug   bool
}

// KakeiboConfig represents kakeibo API configuration.
type KakeiboConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// HistoryConfig represents local upload-history configuration.
type HistoryConfig struct {
	DBPath       string
	AccountsFile string
}

// LedgerConfig represents Beancount ledger export configuration.
type LedgerConfig struct {
	Root     string
	Currency string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	timeoutSeconds, err := parseIntEnv("KAKEIBO_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid KAKEIBO_TIMEOUT_SECONDS: %w", err)
	}

	config := &Config{
		Kakeibo: KakeiboConfig{
			APIURL:  getEnvOrDefault("KAKEIBO_API_URL", "http://localhost:8080"),
			APIKey:  os.Getenv("KAKEIBO_API_KEY"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		History: HistoryConfig{
			DBPath:       getEnvOrDefault("KAKEIBO_DB_PATH", "./kakeibo-history.db"),
			AccountsFile: os.Getenv("KAKEIBO_ACCOUNTS_FILE"),
		},
		Ledger: LedgerConfig{
			Root:     getEnvOrDefault("KAKEIBO_LEDGER_ROOT", "./ledger"),
			Currency: getEnvOrDefault("KAKEIBO_LEDGER_CURRENCY", "JPY"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate checks that the named configuration keys are set.
// Supported keys: apiUrl, apiKey, dbPath, accountsFile, ledgerRoot.
func (c *Config) Validate(required ...string) error {
	values := map[string]string{
		"apiUrl":       c.Kakeibo.APIURL,
		"apiKey":       c.Kakeibo.APIKey,
		"dbPath":       c.History.DBPath,
		"accountsFile": c.History.AccountsFile,
		"ledgerRoot":   c.Ledger.Root,
	}

	var missing []string
	for _, key := range required {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s\nPlease check your .env file or environment variables",
			strings.Join(missing, ", "))
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

// parseIntEnv parses an integer from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}
	return parsed, nil
}
