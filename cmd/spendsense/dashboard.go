package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendsense/internal/dashboard"
)

var (
	rangeFrom string
	rangeTo   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Reload and render the full dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		_, _, dash := bootstrap()
		ctx := context.Background()

		applyRangeFlags(dash)

		if err := dash.Reload(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", dash.Snapshot().Err)
			os.Exit(1)
		}

		renderDashboard(os.Stdout, dash.Snapshot())
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&rangeFrom, "from", "", "range start (YYYY-MM-DD), defaults to 30 days ago")
	dashboardCmd.Flags().StringVar(&rangeTo, "to", "", "range end (YYYY-MM-DD), defaults to today")
}

// applyRangeFlags merges --from/--to over the dashboard's default
// range; an untouched bound keeps its default.
func applyRangeFlags(dash *dashboard.Dashboard) {
	r := dash.Range()
	if rangeFrom != "" {
		r.From = rangeFrom
	}
	if rangeTo != "" {
		r.To = rangeTo
	}
	dash.SetRange(r.From, r.To)
}
