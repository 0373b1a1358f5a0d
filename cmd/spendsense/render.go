package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"spendsense/internal/api"
	"spendsense/internal/core"
	"spendsense/internal/dashboard"
)

// How many rows/slices the terminal views cap at. Display trimming
// only; the underlying aggregates stay complete.
const (
	maxTableRows = 20
	maxPieSlices = 10
)

func renderDashboard(w io.Writer, st dashboard.State) {
	if st.Summary != nil {
		fmt.Fprintf(w, "Totals   income %s   expense %s   net %s\n\n",
			st.Summary.Totals.Income.StringFixed(2),
			st.Summary.Totals.Expense.StringFixed(2),
			st.Summary.Totals.Net.StringFixed(2))
	}

	renderAlerts(w, st.Alerts)

	r := st.Range
	fmt.Fprintf(w, "Income by category (%s → %s)\n", r.From, r.To)
	renderSlices(w, st.IncomeByCategory())
	fmt.Fprintf(w, "\nExpense by category (%s → %s)\n", r.From, r.To)
	renderSlices(w, st.ExpenseByCategory())

	fmt.Fprintln(w, "\nLatest transactions")
	renderTransactions(w, st.Transactions)
}

func renderAlerts(w io.Writer, alerts *api.AlertsResponse) {
	if alerts == nil {
		return
	}
	if len(alerts.Alerts) == 0 {
		fmt.Fprintln(w, "No budget alerts")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "Budget alerts (%s)\n", alerts.Month)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, a := range alerts.Alerts {
		fmt.Fprintf(tw, "  %s\tover by %s\t(limit %s, spent %s)\n",
			a.Category, a.OverBy.StringFixed(2), a.MonthlyLimit.StringFixed(2), a.Spent.StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// renderSlices prints slices sorted by value descending, capped to the
// top N. Sorting here is a view concern; AggregateByCategory itself
// keeps first-seen order.
func renderSlices(w io.Writer, slices []core.CategorySlice) {
	if len(slices) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}

	sorted := make([]core.CategorySlice, len(slices))
	copy(sorted, slices)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if len(sorted) > maxPieSlices {
		sorted = sorted[:maxPieSlices]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range sorted {
		fmt.Fprintf(tw, "  %s\t%.2f\n", s.Name, s.Value)
	}
	tw.Flush()
}

func renderTransactions(w io.Writer, txs []core.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "  No transactions yet.")
		return
	}
	if len(txs) > maxTableRows {
		txs = txs[:maxTableRows]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tDate\tType\tCategory\tBucket\tAmount\tNote")
	for _, t := range txs {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s %s\t%s\n",
			t.ID, t.OccurredOn, t.Type,
			orDash(t.Category), bucketOrDash(t.Bucket),
			t.Currency, t.Amount, orDash(t.Note))
	}
	tw.Flush()
}

func renderDaily(w io.Writer, series *api.DailySeries) {
	if series == nil || len(series.Points) == 0 {
		fmt.Fprintln(w, "No data points in range.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tIncome\tExpense\tNet")
	for _, p := range series.Points {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.Date, p.Income.StringFixed(2), p.Expense.StringFixed(2), p.Net.StringFixed(2))
	}
	tw.Flush()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func bucketOrDash(b *core.Bucket) string {
	if b == nil {
		return "-"
	}
	return string(*b)
}
