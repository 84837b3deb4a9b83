package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
)

// ErrNoRuns is returned by LatestRun before the first successful load.
var ErrNoRuns = errors.New("no revenue runs recorded")

// ProductSource supplies the product catalog for a run.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]revenue.Product, error)
}

// SalesSource streams the sale events of a window to fn, one at a time.
// Implementations may pre-filter by window; the aggregator filters again.
// Returning an error from fn stops the scan and is passed through.
type SalesSource interface {
	ScanSales(ctx context.Context, window revenue.Window, fn func(revenue.SaleEvent) error) error
}

// Source is the extract side of the pipeline.
type Source interface {
	ProductSource
	SalesSource
}

// RunRecord describes one completed load.
type RunRecord struct {
	ID          string    `json:"run_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	RowCount    int64     `json:"row_count"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// RevenueFilter narrows a revenue read. Zero Start/End leave that side open;
// empty SKUID matches every SKU.
type RevenueFilter struct {
	SKUID string
	Start time.Time
	End   time.Time
}

// RevenueStats are the post-load integrity counters.
type RevenueStats struct {
	RowCount      int64 // rows in the revenue table
	NullCount     int64 // rows with a null/empty sku_id, date_id or price
	MismatchCount int64 // rows where revenue differs from price*sales by more than a cent
}

// RevenueSink is the load side of the pipeline.
//
// Contract: ReplaceRevenue removes every existing revenue row, writes rows and
// records run in a single transaction. It stamps run.FinishedAt after the rows
// are written, inside that transaction. On any error the prior output is left
// untouched.
type RevenueSink interface {
	ReplaceRevenue(ctx context.Context, run *RunRecord, rows []revenue.RevenueRow) error
}

// RevenueReader serves reads over the loaded table.
type RevenueReader interface {
	// QueryRevenue returns matching rows ordered by sku_id, date_id.
	QueryRevenue(ctx context.Context, filter RevenueFilter) ([]revenue.RevenueRow, error)

	RevenueStats(ctx context.Context) (RevenueStats, error)

	// LatestRun returns the most recent run, or ErrNoRuns.
	LatestRun(ctx context.Context) (*RunRecord, error)
}

// RevenueStore is a sink that can also be read back.
type RevenueStore interface {
	RevenueSink
	RevenueReader
}
