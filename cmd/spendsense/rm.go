package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid transaction id %q", args[0])
		}

		_, _, dash := bootstrap()
		if err := dash.Delete(context.Background(), id); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}

		fmt.Printf("Deleted transaction %d\n", id)
		return nil
	},
}
