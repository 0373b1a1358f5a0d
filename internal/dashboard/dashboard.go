// Package dashboard owns the per-session view state and the fetch
// orchestration that fills it. Derived views (filtered rows, category
// pies) are pure functions over a State snapshot; the only writers are
// Reload, Create and Delete.
package dashboard

import (
	"context"
	"io"
	"sync"
	"time"

	"spendsense/internal/api"
	"spendsense/internal/core"
	"spendsense/internal/log"

	"golang.org/x/sync/errgroup"
)

// FallbackErrMsg is shown when a failure carries no message of its own.
const FallbackErrMsg = "Failed to load data"

// Backend is the slice of the API client the dashboard drives.
type Backend interface {
	Summary(ctx context.Context, p api.SummaryParams) (*api.Summary, error)
	Daily(ctx context.Context, dateFrom, dateTo string) (*api.DailySeries, error)
	Alerts(ctx context.Context) (*api.AlertsResponse, error)
	ListTransactions(ctx context.Context, p api.ListParams) ([]core.Transaction, error)
	CreateTransaction(ctx context.Context, req api.CreateTransactionRequest) (*core.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ImportCSV(ctx context.Context, filename string, r io.Reader) (*api.ImportResult, error)
}

var _ Backend = (*api.Client)(nil)

// Options carries the query defaults a reload uses.
type Options struct {
	SummaryMonths int
	TopCategories int
	PageLimit     int
	PageOffset    int
	RangeDays     int
	Currency      string
}

// DefaultOptions mirrors the values the web dashboard loads with.
func DefaultOptions() Options {
	return Options{
		SummaryMonths: 12,
		TopCategories: 10,
		PageLimit:     500,
		PageOffset:    0,
		RangeDays:     30,
		Currency:      "EUR",
	}
}

// Dashboard is the state container plus its orchestrator.
type Dashboard struct {
	backend Backend
	logger  *log.Logger
	opts    Options

	mu    sync.Mutex
	seq   uint64
	state State
}

// New creates an empty dashboard whose range defaults to the trailing
// RangeDays window ending today.
func New(backend Backend, opts Options, logger *log.Logger) *Dashboard {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentDashboard)
	}
	return &Dashboard{
		backend: backend,
		logger:  logger,
		opts:    opts,
		state: State{
			Range: core.LastNDays(time.Now(), opts.RangeDays),
		},
	}
}

// Snapshot returns a copy of the current state. The slices inside are
// shared and must be treated as read-only.
func (d *Dashboard) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SetRange replaces the date range feeding the derived views. An
// inverted range is allowed and simply filters everything out.
func (d *Dashboard) SetRange(from, to string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Range = core.DateRange{From: from, To: to}
}

// Range returns the current date range.
func (d *Dashboard) Range() core.DateRange {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Range
}

// Reload fetches summary, alerts and one transaction page concurrently
// and applies them as a single all-or-nothing state transition: either
// all three fields are replaced together, or none is and Err carries
// the failure message. Fail-fast: the first fetch error fails the whole
// reload even if the other requests would have succeeded.
//
// Overlapping calls are allowed. Each invocation takes a sequence
// number, and a completion that is no longer the newest is discarded
// instead of overwriting fresher state.
func (d *Dashboard) Reload(ctx context.Context) error {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.state.Loading = true
	d.state.Err = ""
	d.mu.Unlock()

	var (
		summary *api.Summary
		alerts  *api.AlertsResponse
		txs     []core.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = d.backend.Summary(gctx, api.SummaryParams{
			Months:        d.opts.SummaryMonths,
			TopCategories: d.opts.TopCategories,
		})
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = d.backend.Alerts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = d.backend.ListTransactions(gctx, api.ListParams{
			Limit:  d.opts.PageLimit,
			Offset: d.opts.PageOffset,
		})
		return err
	})
	err := g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		d.logger.Debug("Discarding stale reload",
			log.FieldOperation, log.OpReload,
			log.FieldReloadSeq, seq)
		return err
	}

	d.state.Loading = false
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = FallbackErrMsg
		}
		d.state.Err = msg
		d.logger.Error("Reload failed",
			log.FieldOperation, log.OpReload,
			log.FieldReloadSeq, seq,
			log.FieldError, err)
		return err
	}

	d.state.Summary = summary
	d.state.Alerts = alerts
	d.state.Transactions = txs
	d.logger.Debug("Reload applied",
		log.FieldOperation, log.OpReload,
		log.FieldReloadSeq, seq,
		log.FieldRowCount, len(txs))
	return nil
}

// Create validates a draft, submits it and reloads so the new row shows
// up. Validation failures short-circuit before any network call. A
// bucket is only ever submitted for expenses; for income it is sent
// absent no matter what the draft says.
func (d *Dashboard) Create(ctx context.Context, draft core.Draft) (*core.Transaction, error) {
	if draft.Currency == "" {
		draft.Currency = d.opts.Currency
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	amount, _ := core.ParseAmount(draft.Amount)
	category, _ := draft.FinalCategory()

	req := api.CreateTransactionRequest{
		TxType:     draft.Type,
		Amount:     amount,
		Currency:   draft.Currency,
		OccurredOn: draft.OccurredOn,
	}
	if category != "" {
		req.Category = &category
	}
	if draft.Type == core.Expense && draft.Bucket != "" {
		b := draft.Bucket
		req.Bucket = &b
	}
	if draft.Note != "" {
		n := draft.Note
		req.Note = &n
	}

	tx, err := d.backend.CreateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	d.logger.Info("Transaction created",
		log.FieldOperation, log.OpCreate,
		log.FieldTxID, tx.ID,
		log.FieldTxType, string(tx.Type))

	// The create itself succeeded; a reload failure is reported
	// through the state's Err field, not here.
	_ = d.Reload(ctx)
	return tx, nil
}

// Delete removes a transaction and reloads on success. Not optimistic:
// the row leaves the state only once the reload confirms it.
func (d *Dashboard) Delete(ctx context.Context, id int64) error {
	if err := d.backend.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	d.logger.Info("Transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTxID, id)

	_ = d.Reload(ctx)
	return nil
}

// Daily fetches the per-day series for the current range. The series is
// not held in the state: it is scoped to whatever range the caller is
// rendering and refetched whenever the range moves.
func (d *Dashboard) Daily(ctx context.Context) (*api.DailySeries, error) {
	r := d.Range()
	return d.backend.Daily(ctx, r.From, r.To)
}
