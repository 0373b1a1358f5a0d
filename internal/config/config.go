package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Backend API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Summary query defaults
	SummaryMonths int
	TopCategories int

	// Transactions page
	PageLimit  int
	PageOffset int

	// Dashboard
	RangeDays int
	Currency  string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8000"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		SummaryMonths: getEnvInt("SUMMARY_MONTHS", 12),
		TopCategories: getEnvInt("TOP_CATEGORIES", 10),

		PageLimit:  getEnvInt("PAGE_LIMIT", 500),
		PageOffset: getEnvInt("PAGE_OFFSET", 0),

		RangeDays: getEnvInt("RANGE_DAYS", 30),
		Currency:  getEnv("CURRENCY", "EUR"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid.
// Bounds on the query defaults mirror what the backend accepts, so a
// bad value fails here instead of as a 422 on every reload.
func (c *Config) Validate() error {
	var errors []string

	if c.APIBaseURL == "" {
		errors = append(errors, "API base URL cannot be empty")
	} else if parsedURL, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.SummaryMonths < 1 || c.SummaryMonths > 60 {
		errors = append(errors, fmt.Sprintf("invalid summary months %d: must be between 1 and 60", c.SummaryMonths))
	}

	if c.TopCategories < 1 || c.TopCategories > 50 {
		errors = append(errors, fmt.Sprintf("invalid top categories %d: must be between 1 and 50", c.TopCategories))
	}

	if c.PageLimit < 1 || c.PageLimit > 1000 {
		errors = append(errors, fmt.Sprintf("invalid page limit %d: must be between 1 and 1000", c.PageLimit))
	}
	if c.PageOffset < 0 {
		errors = append(errors, fmt.Sprintf("invalid page offset %d: must not be negative", c.PageOffset))
	}

	if c.RangeDays < 1 {
		errors = append(errors, fmt.Sprintf("invalid range days %d: must be at least 1", c.RangeDays))
	}

	if len(c.Currency) != 3 {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be a 3-letter code", c.Currency))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
