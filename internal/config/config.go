package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database configuration
	DatabaseURL string

	// Query behavior
	PageSize            int
	QueryTimeout        time.Duration
	LatestInvoicesLimit int

	// Currency display
	CurrencyLocale string
	CurrencySymbol string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT_MS", 15*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT_MS", 15*time.Second),

		// Database configuration
		DatabaseURL: os.Getenv("POSTGRES_DB_URL"),

		// Query behavior
		PageSize:            getEnvInt("PAGE_SIZE", 6),
		QueryTimeout:        getEnvDuration("QUERY_TIMEOUT_MS", 5*time.Second),
		LatestInvoicesLimit: getEnvInt("LATEST_INVOICES_LIMIT", 5),

		// Currency display
		CurrencyLocale: getEnvString("CURRENCY_LOCALE", "en-US"),
		CurrencySymbol: getEnvString("CURRENCY_SYMBOL", "$"),

		// Logging
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "json"),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.DatabaseURL == "" {
		log.Println("Warning: POSTGRES_DB_URL is not set. Database connections will fail.")
	}

	if config.PageSize < 1 {
		log.Printf("Invalid PAGE_SIZE %d, using default: 6", config.PageSize)
		config.PageSize = 6
	}

	if config.LatestInvoicesLimit < 1 {
		log.Printf("Invalid LATEST_INVOICES_LIMIT %d, using default: 5", config.LatestInvoicesLimit)
		config.LatestInvoicesLimit = 5
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvDuration gets a millisecond count from an environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	ms, err := strconv.Atoi(valueStr)
	if err != nil || ms <= 0 {
		log.Printf("Invalid value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return time.Duration(ms) * time.Millisecond
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	return strings.Split(valueStr, ",")
}
