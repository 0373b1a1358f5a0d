// Package cli provides common CLI initialization utilities shared by
// the spendsense subcommands.
package cli

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"spendsense/internal/api"
	"spendsense/internal/config"
	"spendsense/internal/dashboard"
	"spendsense/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level
// and sets it as the default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     parseLevel(level),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(log.ComponentConfig).Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewClient builds the API client from configuration.
func NewClient(cfg *config.Config, logger *log.Logger) *api.Client {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	return api.New(cfg.APIBaseURL, httpClient, logger.WithComponent(log.ComponentAPI))
}

// NewDashboard builds a dashboard wired to the configured backend.
func NewDashboard(cfg *config.Config, client *api.Client, logger *log.Logger) *dashboard.Dashboard {
	return dashboard.New(client, dashboard.Options{
		SummaryMonths: cfg.SummaryMonths,
		TopCategories: cfg.TopCategories,
		PageLimit:     cfg.PageLimit,
		PageOffset:    cfg.PageOffset,
		RangeDays:     cfg.RangeDays,
		Currency:      cfg.Currency,
	}, logger.WithComponent(log.ComponentDashboard))
}
