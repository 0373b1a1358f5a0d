package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsense/internal/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), nil)
}

func TestClient_Summary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/analytics/summary", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("months"))
		assert.Equal(t, "10", r.URL.Query().Get("top_categories"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totals": {"income": "3200.00", "expense": "1890.55", "net": "1309.45"},
			"by_bucket": [{"bucket": "necessary", "expense": "1200.00"}],
			"by_category": [{"category": "rent", "expense": "1000.00"}, {"category": null, "expense": "50.00"}],
			"monthly": [{"month": "2025-03", "income": "3200.00", "expense": "1890.55", "net": "1309.45"}]
		}`))
	})

	got, err := client.Summary(context.Background(), SummaryParams{Months: 12, TopCategories: 10})
	require.NoError(t, err)

	assert.True(t, got.Totals.Income.Equal(decimal.RequireFromString("3200.00")))
	assert.True(t, got.Totals.Net.Equal(decimal.RequireFromString("1309.45")))
	require.Len(t, got.ByCategory, 2)
	assert.Nil(t, got.ByCategory[1].Category)
	require.Len(t, got.Monthly, 1)
	assert.Equal(t, "2025-03", got.Monthly[0].Month)
}

func TestClient_Daily(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics/daily", r.URL.Path)
		assert.Equal(t, "2025-02-01", r.URL.Query().Get("date_from"))
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("date_to"))

		json.NewEncoder(w).Encode(map[string]any{
			"points": []map[string]string{
				{"date": "2025-02-01", "income": "0.00", "expense": "25.00", "net": "-25.00"},
			},
		})
	})

	got, err := client.Daily(context.Background(), "2025-02-01", "2025-03-01")
	require.NoError(t, err)
	require.Len(t, got.Points, 1)
	assert.Equal(t, "2025-02-01", got.Points[0].Date)
	assert.True(t, got.Points[0].Net.IsNegative())
}

func TestClient_Alerts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts", r.URL.Path)
		w.Write([]byte(`{"month": "2025-03", "alerts": [{"category": "dining out", "monthly_limit": "150.00", "spent": "180.00", "over_by": "30.00"}]}`))
	})

	got, err := client.Alerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-03", got.Month)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "dining out", got.Alerts[0].Category)
	assert.True(t, got.Alerts[0].OverBy.Equal(decimal.RequireFromString("30.00")))
}

func TestClient_ListTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"), "zero offset stays off the query")

		w.Write([]byte(`[
			{"id": 1, "tx_type": "expense", "amount": "12.50", "currency": "EUR", "category": "groceries", "bucket": "necessary", "occurred_on": "2025-03-01", "note": null},
			{"id": 2, "tx_type": "income", "amount": "3000.00", "currency": "EUR", "category": null, "bucket": null, "occurred_on": "2025-03-02", "note": "march salary"}
		]`))
	})

	got, err := client.ListTransactions(context.Background(), ListParams{Limit: 500})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, core.Expense, got[0].Type)
	assert.Equal(t, "12.50", got[0].Amount, "amount stays a decimal string")
	require.NotNil(t, got[0].Bucket)
	assert.Equal(t, core.Necessary, *got[0].Bucket)
	assert.Nil(t, got[0].Note)

	assert.Nil(t, got[1].Category)
	require.NotNil(t, got[1].Note)
	assert.Equal(t, "march salary", *got[1].Note)
}

func TestClient_CreateTransaction(t *testing.T) {
	category := "groceries"
	bucket := core.Necessary

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// The create body is the one place amount crosses the wire as
		// a JSON number instead of a decimal string.
		assert.Equal(t, 12.5, body["amount"])
		assert.Equal(t, "expense", body["tx_type"])
		assert.Equal(t, "groceries", body["category"])
		assert.Equal(t, "necessary", body["bucket"])
		assert.Nil(t, body["note"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "tx_type": "expense", "amount": "12.50", "currency": "EUR", "category": "groceries", "bucket": "necessary", "occurred_on": "2025-03-01", "note": null}`))
	})

	got, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{
		TxType:     core.Expense,
		Amount:     12.5,
		Currency:   "EUR",
		Category:   &category,
		Bucket:     &bucket,
		OccurredOn: "2025-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "12.50", got.Amount)
}

func TestClient_DeleteTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/transactions/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteTransaction(context.Background(), 42))
}

func TestClient_ImportCSV(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/import/csv", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "txs.csv", header.Filename)

		w.Write([]byte(`{"inserted_count": 2, "rejected_rows": [{"row_number": 3, "reason": "amount must be > 0"}]}`))
	})

	got, err := client.ImportCSV(context.Background(), "txs.csv", strings.NewReader("tx_type,amount\nexpense,10\nincome,20\nexpense,0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, got.InsertedCount)
	require.Len(t, got.RejectedRows, 1)
	assert.Equal(t, 3, got.RejectedRows[0].RowNumber)
}

func TestClient_ErrorBodySurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "amount must be greater than 0"}`))
	})

	_, err := client.Alerts(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "amount must be greater than 0")
}

func TestClient_ErrorWithEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Summary(context.Background(), SummaryParams{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "GET /analytics/summary failed: 502", apiErr.Error())
}

func TestClient_TransportFailureWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(srv.URL, nil, nil)
	_, err := client.Alerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/alerts")
}
