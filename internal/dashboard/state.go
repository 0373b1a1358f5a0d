package dashboard

import (
	"spendsense/internal/api"
	"spendsense/internal/core"
)

// State is the per-session dashboard snapshot: the latest fetched
// analytics, alerts and transaction page, the user-selected date range
// and the loading/error flags. It is replaced wholesale on every
// successful reload and is read-only to consumers; all mutation funnels
// through the Dashboard's reload/create/delete operations.
type State struct {
	Summary      *api.Summary
	Alerts       *api.AlertsResponse
	Transactions []core.Transaction
	Range        core.DateRange
	Loading      bool
	Err          string
}

// Filtered returns the transactions inside the current range.
func (s State) Filtered() []core.Transaction {
	return core.FilterByRange(s.Transactions, s.Range)
}

// IncomeByCategory derives the income pie for the current range.
func (s State) IncomeByCategory() []core.CategorySlice {
	return core.AggregateByCategory(s.Filtered(), core.Income)
}

// ExpenseByCategory derives the expense pie for the current range.
func (s State) ExpenseByCategory() []core.CategorySlice {
	return core.AggregateByCategory(s.Filtered(), core.Expense)
}
