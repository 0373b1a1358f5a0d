package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily income/expense/net trend for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, dash := bootstrap()
		applyRangeFlags(dash)

		series, err := dash.Daily(context.Background())
		if err != nil {
			return err
		}

		renderDaily(os.Stdout, series)
		return nil
	},
}

func init() {
	dailyCmd.Flags().StringVar(&rangeFrom, "from", "", "range start (YYYY-MM-DD), defaults to 30 days ago")
	dailyCmd.Flags().StringVar(&rangeTo, "to", "", "range end (YYYY-MM-DD), defaults to today")
}
