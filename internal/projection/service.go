package projection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/aevon-lab/revenue-grid/internal/pipeline"
)

// maxQueryDays caps the zero-filled date rollup.
const maxQueryDays = 3660

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid revenue query")

	// ErrRunsDisabled is returned by TriggerRun when no runner is wired.
	ErrRunsDisabled = errors.New("pipeline runs are not enabled")
)

// Service implements the read side over the loaded revenue table, plus an
// on-demand run trigger.
type Service struct {
	reader storage.RevenueReader
	runner pipeline.Runner
	nowFn  func() time.Time
}

// NewService creates a new projection service. runner may be nil.
func NewService(reader storage.RevenueReader, runner pipeline.Runner) *Service {
	return &Service{
		reader: reader,
		runner: runner,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// QueryRevenue reads the range and shapes it per granularity.
func (s *Service) QueryRevenue(ctx context.Context, req RevenueQueryRequest) (*RevenueQueryResponse, error) {
	granularity := req.Granularity
	if granularity == "" {
		granularity = GranularityDay
	}
	switch granularity {
	case GranularityDay, GranularitySKU, GranularityDate:
	default:
		return nil, fmt.Errorf("%w: unsupported granularity %q (want day, sku or date)", ErrInvalidQuery, granularity)
	}

	spine, err := revenue.NewDateSpine(req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if spine.Len() > maxQueryDays {
		return nil, fmt.Errorf("%w: range spans %d days (max %d)", ErrInvalidQuery, spine.Len(), maxQueryDays)
	}
	window := spine.Window()

	rows, err := s.reader.QueryRevenue(ctx, storage.RevenueFilter{
		SKUID: req.SKUID,
		Start: window.Start,
		End:   window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}

	resp := &RevenueQueryResponse{
		Start:       window.Start.Format(revenue.DateLayout),
		End:         window.End.Format(revenue.DateLayout),
		SKUID:       req.SKUID,
		Granularity: granularity,
	}
	resp.TotalSales, resp.TotalRevenue = totals(rows)

	switch granularity {
	case GranularityDay:
		resp.Rows = toRevenueValues(rows)
	case GranularitySKU:
		resp.SKUs = rollupBySKU(rows)
	case GranularityDate:
		resp.Dates = rollupByDate(rows, spine)
	}

	run, err := s.reader.LatestRun(ctx)
	switch {
	case errors.Is(err, storage.ErrNoRuns):
		slog.Debug("[Projection] No runs recorded yet")
	case err != nil:
		return nil, fmt.Errorf("latest run: %w", err)
	default:
		resp.RunID = run.ID
		finished := run.FinishedAt
		resp.DataThrough = &finished
		resp.StalenessSeconds = int(s.nowFn().Sub(finished).Seconds())
	}

	slog.Debug("[Projection] Revenue query served",
		"window", window.String(),
		"sku_id", req.SKUID,
		"granularity", granularity,
		"rows", len(rows),
	)
	return resp, nil
}

// LatestRun returns the most recent load, or storage.ErrNoRuns.
func (s *Service) LatestRun(ctx context.Context) (*storage.RunRecord, error) {
	return s.reader.LatestRun(ctx)
}

// TriggerRun executes the pipeline now.
func (s *Service) TriggerRun(ctx context.Context) (*pipeline.Report, error) {
	if s.runner == nil {
		return nil, ErrRunsDisabled
	}
	return s.runner.Run(ctx)
}
