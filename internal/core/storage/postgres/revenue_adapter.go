package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/lib/pq"
)

// farFuture bounds open-ended range reads.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// RevenueAdapter implements storage.RevenueStore for PostgreSQL.
// Shares the *sql.DB opened for the source adapter.
type RevenueAdapter struct {
	db  *sql.DB
	now func() time.Time
}

var _ storage.RevenueStore = (*RevenueAdapter)(nil)

func NewRevenueAdapter(db *sql.DB) *RevenueAdapter {
	return &RevenueAdapter{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ReplaceRevenue swaps the whole revenue table for rows and records run.
// Rows go through COPY; everything happens in one transaction, and
// run.FinishedAt is stamped once the rows are in.
func (a *RevenueAdapter) ReplaceRevenue(ctx context.Context, run *storage.RunRecord, rows []revenue.RevenueRow) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace revenue: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, queryDeleteRevenue); err != nil {
		return fmt.Errorf("replace revenue: delete prior rows: %w", err)
	}

	copyStmt, err := tx.PrepareContext(ctx, pq.CopyIn("revenue", revenueColumns...))
	if err != nil {
		return fmt.Errorf("replace revenue: prepare copy: %w", err)
	}
	defer copyStmt.Close()

	for _, row := range rows {
		if _, err := copyStmt.ExecContext(ctx,
			row.SKUID,
			row.DateID,
			row.Price.String(),
			row.Sales,
			row.Revenue.StringFixed(revenue.RevenuePlaces),
		); err != nil {
			return fmt.Errorf("replace revenue: copy row %s/%s: %w",
				row.SKUID, row.DateID.Format(revenue.DateLayout), err)
		}
	}

	// An argument-less Exec flushes the COPY buffer.
	if _, err := copyStmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("replace revenue: flush copy: %w", err)
	}
	if err := copyStmt.Close(); err != nil {
		return fmt.Errorf("replace revenue: close copy: %w", err)
	}

	run.FinishedAt = a.now()
	if _, err := tx.ExecContext(ctx, queryInsertRun,
		run.ID,
		run.WindowStart,
		run.WindowEnd,
		run.RowCount,
		run.StartedAt,
		run.FinishedAt,
	); err != nil {
		return fmt.Errorf("replace revenue: record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace revenue: commit: %w", err)
	}

	slog.Info("[Postgres] Replaced revenue table",
		"run_id", run.ID,
		"rows", len(rows))
	return nil
}

// QueryRevenue returns rows matching filter ordered by sku_id, date_id.
func (a *RevenueAdapter) QueryRevenue(ctx context.Context, filter storage.RevenueFilter) ([]revenue.RevenueRow, error) {
	start := filter.Start
	end := filter.End
	if end.IsZero() {
		end = farFuture
	}

	rows, err := a.db.QueryContext(ctx, queryRevenueRange, start, end, filter.SKUID)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	defer rows.Close()

	var result []revenue.RevenueRow
	for rows.Next() {
		r, err := scanRevenueRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query revenue: iterate: %w", err)
	}
	return result, nil
}

// RevenueStats computes the integrity counters over the loaded table.
func (a *RevenueAdapter) RevenueStats(ctx context.Context) (storage.RevenueStats, error) {
	var stats storage.RevenueStats
	err := a.db.QueryRowContext(ctx, queryRevenueStats).Scan(
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
func (a *RevenueAdapter) LatestRun(ctx context.Context) (*storage.RunRecord, error) {
	var run storage.RunRecord
	err := a.db.QueryRowContext(ctx, queryLatestRun).Scan(
		&run.ID,
		&run.WindowStart,
		&run.WindowEnd,
		&run.RowCount,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}

	run.WindowStart = revenue.TruncateToDay(run.WindowStart)
	run.WindowEnd = revenue.TruncateToDay(run.WindowEnd)
	run.StartedAt = run.StartedAt.UTC()
	run.FinishedAt = run.FinishedAt.UTC()
	return &run, nil
}
