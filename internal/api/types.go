package api

import (
	"spendsense/internal/core"

	"github.com/shopspring/decimal"
)

// Response shapes of the SpendSense backend. Every monetary field
// crosses the wire as a decimal string and is decoded into
// decimal.Decimal so nothing is rounded before display.

type (
	MoneyTotals struct {
		Income  decimal.Decimal `json:"income"`
		Expense decimal.Decimal `json:"expense"`
		Net     decimal.Decimal `json:"net"`
	}

	BucketTotal struct {
		Bucket  *core.Bucket    `json:"bucket"`
		Expense decimal.Decimal `json:"expense"`
	}

	CategoryTotal struct {
		Category *string         `json:"category"`
		Expense  decimal.Decimal `json:"expense"`
	}

	MonthlyTotal struct {
		Month   string          `json:"month"` // YYYY-MM
		Income  decimal.Decimal `json:"income"`
		Expense decimal.Decimal `json:"expense"`
		Net     decimal.Decimal `json:"net"`
	}

	Summary struct {
		Totals     MoneyTotals     `json:"totals"`
		ByBucket   []BucketTotal   `json:"by_bucket"`
		ByCategory []CategoryTotal `json:"by_category"`
		Monthly    []MonthlyTotal  `json:"monthly"`
	}

	DailyPoint struct {
		Date    string          `json:"date"` // YYYY-MM-DD
		Income  decimal.Decimal `json:"income"`
		Expense decimal.Decimal `json:"expense"`
		Net     decimal.Decimal `json:"net"`
	}

	DailySeries struct {
		Points []DailyPoint `json:"points"`
	}

	BudgetAlert struct {
		Category     string          `json:"category"`
		MonthlyLimit decimal.Decimal `json:"monthly_limit"`
		Spent        decimal.Decimal `json:"spent"`
		OverBy       decimal.Decimal `json:"over_by"`
	}

	AlertsResponse struct {
		Month  string        `json:"month"` // YYYY-MM
		Alerts []BudgetAlert `json:"alerts"`
	}

	RejectedRow struct {
		RowNumber int    `json:"row_number"`
		Reason    string `json:"reason"`
	}

	ImportResult struct {
		InsertedCount int           `json:"inserted_count"`
		RejectedRows  []RejectedRow `json:"rejected_rows"`
	}
)

// CreateTransactionRequest is the POST /transactions body. Amount is a
// JSON number here, unlike everywhere else on the wire where money is a
// decimal string. The backend expects exactly this asymmetry.
type CreateTransactionRequest struct {
	TxType     core.TxType  `json:"tx_type"`
	Amount     float64      `json:"amount"`
	Currency   string       `json:"currency"`
	Category   *string      `json:"category"`
	Bucket     *core.Bucket `json:"bucket"`
	OccurredOn string       `json:"occurred_on"`
	Note       *string      `json:"note"`
}

// UpdateTransactionRequest is the PUT /transactions/{id} body. Nil
// fields are omitted and left unchanged server-side.
type UpdateTransactionRequest struct {
	TxType     *core.TxType `json:"tx_type,omitempty"`
	Amount     *float64     `json:"amount,omitempty"`
	Currency   *string      `json:"currency,omitempty"`
	Category   *string      `json:"category,omitempty"`
	Bucket     *core.Bucket `json:"bucket,omitempty"`
	OccurredOn *string      `json:"occurred_on,omitempty"`
	Note       *string      `json:"note,omitempty"`
}

// SummaryParams parameterizes GET /analytics/summary. Zero values are
// omitted from the query so the backend defaults apply.
type SummaryParams struct {
	Months        int
	TopCategories int
	DateFrom      string
	DateTo        string
}

// ListParams parameterizes GET /transactions. Zero values are omitted.
type ListParams struct {
	Limit    int
	Offset   int
	Type     core.TxType
	Category string
	Bucket   core.Bucket
	DateFrom string
	DateTo   string
}
