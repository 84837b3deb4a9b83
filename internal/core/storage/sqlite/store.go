package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Compile-time interface checks.
var _ storage.Source = (*Store)(nil)
var _ storage.RevenueStore = (*Store)(nil)

// Store implements storage.Source and storage.RevenueStore backed by a SQLite
// database with the product/sales/revenue layout.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path.
// SQLite serializes writers, so the pool is capped at one connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("[SQLite] Database opened", "path", path)
	return db, nil
}

// NewStore wraps an open database. Migrations must have run first.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ListProducts returns the whole catalog ordered by sku_id.
func (s *Store) ListProducts(ctx context.Context) ([]revenue.Product, error) {
	rows, err := s.db.QueryContext(ctx, queryListProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []revenue.Product
	for rows.Next() {
		var p revenue.Product
		var priceStr string
		if err := rows.Scan(&p.SKUID, &p.Description, &priceStr); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("parse price %q for sku %s: %w", priceStr, p.SKUID, err)
		}
		p.Price = price
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// ScanSales streams the window's sales to fn. OrderDate carries the UTC
// calendar date only; the time of day is not needed for grouping.
// Sales whose orderdate_utc SQLite cannot read as a date fail the scan.
func (s *Store) ScanSales(ctx context.Context, window revenue.Window, fn func(revenue.SaleEvent) error) error {
	var bad int64
	if err := s.db.QueryRowContext(ctx, queryCountBadSales).Scan(&bad); err != nil {
		return fmt.Errorf("failed to check sales dates: %w", err)
	}
	if bad > 0 {
		return fmt.Errorf("%d sales rows have an unparseable orderdate_utc", bad)
	}

	rows, err := s.db.QueryContext(ctx, queryScanSales,
		window.Start.Format(revenue.DateLayout),
		window.End.Format(revenue.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var scanned int
	for rows.Next() {
		var evt revenue.SaleEvent
		var orderDate string
		if err := rows.Scan(&evt.SKUID, &orderDate, &evt.Quantity); err != nil {
			return fmt.Errorf("failed to scan sale row: %w", err)
		}
		evt.OrderDate, err = revenue.ParseDate(orderDate)
		if err != nil {
			return fmt.Errorf("sale for sku %s: %w", evt.SKUID, err)
		}
		if err := fn(evt); err != nil {
			return err
		}
		scanned++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating sales: %w", err)
	}

	slog.Debug("[SQLite] Scanned sales", "window", window.String(), "count", scanned)
	return nil
}

// ReplaceRevenue swaps the whole revenue table for rows and records run in
// one transaction. run.FinishedAt is stamped once the rows are in.
func (s *Store) ReplaceRevenue(ctx context.Context, run *storage.RunRecord, rows []revenue.RevenueRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace revenue: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, queryDeleteRevenue); err != nil {
		return fmt.Errorf("replace revenue: delete prior rows: %w", err)
	}

	insertStmt, err := tx.PrepareContext(ctx, queryInsertRevenue)
	if err != nil {
		return fmt.Errorf("replace revenue: prepare insert: %w", err)
	}
	defer insertStmt.Close()

	for _, row := range rows {
		if _, err := insertStmt.ExecContext(ctx,
			row.SKUID,
			row.DateID.Format(revenue.DateLayout),
			row.Price.InexactFloat64(),
			row.Sales,
			row.Revenue.InexactFloat64(),
		); err != nil {
			return fmt.Errorf("replace revenue: insert row %s/%s: %w",
				row.SKUID, row.DateID.Format(revenue.DateLayout), err)
		}
	}

	run.FinishedAt = s.now()
	if _, err := tx.ExecContext(ctx, queryInsertRun,
		run.ID,
		run.WindowStart.Format(revenue.DateLayout),
		run.WindowEnd.Format(revenue.DateLayout),
		run.RowCount,
		run.StartedAt.UTC().Format(timestampLayout),
		run.FinishedAt.UTC().Format(timestampLayout),
	); err != nil {
		return fmt.Errorf("replace revenue: record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace revenue: commit: %w", err)
	}

	slog.Info("[SQLite] Replaced revenue table", "run_id", run.ID, "rows", len(rows))
	return nil
}

// QueryRevenue returns rows matching filter ordered by sku_id, date_id.
func (s *Store) QueryRevenue(ctx context.Context, filter storage.RevenueFilter) ([]revenue.RevenueRow, error) {
	start := "0000-01-01"
	end := "9999-12-31"
	if !filter.Start.IsZero() {
		start = filter.Start.Format(revenue.DateLayout)
	}
	if !filter.End.IsZero() {
		end = filter.End.Format(revenue.DateLayout)
	}

	rows, err := s.db.QueryContext(ctx, queryRevenueRange, start, end, filter.SKUID, filter.SKUID)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	defer rows.Close()

	var result []revenue.RevenueRow
	for rows.Next() {
		var r revenue.RevenueRow
		var dateStr, priceStr, revenueStr string
		if err := rows.Scan(&r.SKUID, &dateStr, &priceStr, &r.Sales, &revenueStr); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		if r.DateID, err = revenue.ParseDate(dateStr); err != nil {
			return nil, err
		}
		if r.Price, err = decimal.NewFromString(priceStr); err != nil {
			return nil, fmt.Errorf("parse price %q: %w", priceStr, err)
		}
		amount, err := decimal.NewFromString(revenueStr)
		if err != nil {
			return nil, fmt.Errorf("parse revenue %q: %w", revenueStr, err)
		}
		// Stored as REAL; cents are exact after rounding back.
		r.Revenue = amount.Round(revenue.RevenuePlaces)
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query revenue: iterate: %w", err)
	}
	return result, nil
}

// RevenueStats computes the integrity counters over the loaded table.
func (s *Store) RevenueStats(ctx context.Context) (storage.RevenueStats, error) {
	var stats storage.RevenueStats
	err := s.db.QueryRowContext(ctx, queryRevenueStats).Scan(
		&stats.RowCount,
		&stats.NullCount,
		&stats.MismatchCount,
	)
	if err != nil {
		return storage.RevenueStats{}, fmt.Errorf("revenue stats: %w", err)
	}
	return stats, nil
}

// LatestRun returns the most recently finished run.
func (s *Store) LatestRun(ctx context.Context) (*storage.RunRecord, error) {
	var run storage.RunRecord
	var windowStart, windowEnd, startedAt, finishedAt string
	err := s.db.QueryRowContext(ctx, queryLatestRun).Scan(
		&run.ID,
		&windowStart,
		&windowEnd,
		&run.RowCount,
		&startedAt,
		&finishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}

	if run.WindowStart, err = revenue.ParseDate(windowStart); err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	if run.WindowEnd, err = revenue.ParseDate(windowEnd); err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	if run.StartedAt, err = time.Parse(timestampLayout, startedAt); err != nil {
		return nil, fmt.Errorf("latest run: parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(timestampLayout, finishedAt); err != nil {
		return nil, fmt.Errorf("latest run: parse finished_at: %w", err)
	}
	return &run, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
