package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spendsense/internal/cli"
	"spendsense/internal/config"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-import transactions from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()

		cfg := config.Load()
		logger := cli.SetupLogger(cfg.LogLevel)
		cfg = cli.LoadAndValidateConfig(logger)
		client := cli.NewClient(cfg, logger)

		result, err := client.ImportCSV(context.Background(), filepath.Base(path), f)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Inserted %d rows\n", result.InsertedCount)
		for _, r := range result.RejectedRows {
			fmt.Printf("  row %d rejected: %s\n", r.RowNumber, r.Reason)
		}
		return nil
	},
}
