// Package api implements the HTTP client for the SpendSense backend.
// All business logic lives server-side; this package only shapes
// requests, decodes responses and turns failures into one descriptive
// error per call. Nothing is retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spendsense/internal/core"
	"spendsense/internal/log"

	"github.com/google/uuid"
)

// Client talks to one SpendSense backend instance.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New creates a client for the backend at baseURL. A nil httpClient
// falls back to a 15s-timeout default; a nil logger falls back to the
// package default.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentAPI)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Summary fetches the aggregated analytics summary.
func (c *Client) Summary(ctx context.Context, p SummaryParams) (*Summary, error) {
	q := url.Values{}
	if p.Months > 0 {
		q.Set("months", strconv.Itoa(p.Months))
	}
	if p.TopCategories > 0 {
		q.Set("top_categories", strconv.Itoa(p.TopCategories))
	}
	if p.DateFrom != "" {
		q.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("date_to", p.DateTo)
	}

	var out Summary
	if err := c.do(ctx, http.MethodGet, "/analytics/summary", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Daily fetches the per-day income/expense/net series for an inclusive
// date window.
func (c *Client) Daily(ctx context.Context, dateFrom, dateTo string) (*DailySeries, error) {
	q := url.Values{}
	q.Set("date_from", dateFrom)
	q.Set("date_to", dateTo)

	var out DailySeries
	if err := c.do(ctx, http.MethodGet, "/analytics/daily", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Alerts fetches the current month's budget-overrun alerts.
func (c *Client) Alerts(ctx context.Context) (*AlertsResponse, error) {
	var out AlertsResponse
	if err := c.do(ctx, http.MethodGet, "/alerts", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions fetches one page of transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, p ListParams) ([]core.Transaction, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Type != "" {
		q.Set("tx_type", string(p.Type))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Bucket != "" {
		q.Set("bucket", string(p.Bucket))
	}
	if p.DateFrom != "" {
		q.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("date_to", p.DateTo)
	}

	var out []core.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTransaction fetches a single transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/transactions/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTransaction submits a new transaction and returns the created
// row with its server-issued ID.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, req UpdateTransactionRequest) (*core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTransaction removes a transaction. The backend replies 204 with
// an empty body.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil, nil)
}

// ImportCSV uploads a CSV of transactions for bulk insertion and
// reports how many rows were inserted and which were rejected.
func (c *Client) ImportCSV(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy csv content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/import/csv", &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out ImportResult
	if err := c.roundTrip(req, "/import/csv", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one JSON round-trip: method + path + query, optional JSON
// body in, optional JSON body out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.roundTrip(req, path, out)
}

// roundTrip executes a prepared request, decodes a 2xx response into
// out (when non-nil) and converts everything else into *Error with the
// full response body as the message.
func (c *Client) roundTrip(req *http.Request, path string, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			log.FieldMethod, req.Method,
			log.FieldPath, path,
			log.FieldRequestID, requestID,
			log.FieldError, err)
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Request completed",
		log.FieldMethod, req.Method,
		log.FieldPath, path,
		log.FieldRequestID, requestID,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return &Error{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       path,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, path, err)
	}
	return nil
}
