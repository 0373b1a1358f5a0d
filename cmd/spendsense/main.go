package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendsense/internal/cli"
	"spendsense/internal/config"
	"spendsense/internal/dashboard"
	"spendsense/internal/log"
)

func main() {
	cli.LoadEnvFile()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spendsense",
	Short: "Terminal client for the SpendSense personal-finance API",
	Long: `spendsense is a terminal client for the SpendSense backend. It fetches
analytics, budget alerts and transactions, derives category breakdowns for a
selected date range, and lets you add, remove and bulk-import transactions.`,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(importCmd)
}

// bootstrap wires config, logging, the API client and the dashboard for
// one command invocation.
func bootstrap() (*config.Config, *log.Logger, *dashboard.Dashboard) {
	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	cfg = cli.LoadAndValidateConfig(logger)

	client := cli.NewClient(cfg, logger)
	return cfg, logger, cli.NewDashboard(cfg, client, logger)
}
