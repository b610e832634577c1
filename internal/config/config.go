package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported values for DEFAULT_COUNTRY.
const (
	CountryIran        = "iran"
	CountryAfghanistan = "afghanistan"
)

type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Numbers
	DefaultCountry string
	RandomCount    int
	MaxInputLength int

	// Spreadsheets
	SheetName       string
	SheetColumn     int
	SheetSkipHeader bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DefaultCountry: strings.ToLower(getEnv("DEFAULT_COUNTRY", CountryIran)),
		RandomCount:    getEnvInt("RANDOM_COUNT", 1),
		MaxInputLength: getEnvInt("MAX_INPUT_LENGTH", 64),

		SheetName:       getEnv("SHEET_NAME", "Sheet1"),
		SheetColumn:     getEnvInt("SHEET_COLUMN", 1),
		SheetSkipHeader: getEnvBool("SHEET_SKIP_HEADER", true),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DefaultCountry {
	case CountryIran, CountryAfghanistan:
	default:
		return fmt.Errorf("DEFAULT_COUNTRY must be %q or %q, got %q", CountryIran, CountryAfghanistan, c.DefaultCountry)
	}
	if c.RandomCount < 1 {
		return fmt.Errorf("RANDOM_COUNT must be at least 1")
	}
	if c.MaxInputLength < 1 {
		return fmt.Errorf("MAX_INPUT_LENGTH must be at least 1")
	}
	if c.SheetName == "" {
		return fmt.Errorf("SHEET_NAME is required")
	}
	if c.SheetColumn < 1 {
		return fmt.Errorf("SHEET_COLUMN must be at least 1")
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
