package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Runner is the part of Pipeline the scheduler drives.
type Runner interface {
	Run(ctx context.Context) (*Report, error)
}

// Scheduler reruns the pipeline on a fixed interval.
// Each tick is a full recompute; a failed tick is retried on the next one.
type Scheduler struct {
	interval time.Duration
	runner   Runner
}

func NewScheduler(interval time.Duration, runner Runner) *Scheduler {
	return &Scheduler{interval: interval, runner: runner}
}

// Start runs once immediately, then on every tick until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting revenue pipeline scheduler", "interval", s.interval)

	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	report, err := s.runner.Run(ctx)
	switch {
	case errors.Is(err, ErrRunInProgress):
		slog.Info("[Scheduler] Previous run still in progress, skipping tick")
	case err != nil:
		slog.Error("[Scheduler] Pipeline run failed", "error", err)
	case report.Validation != nil && !report.Validation.Passed():
		slog.Warn("[Scheduler] Pipeline run loaded with validation failures", "run_id", report.Run.ID)
	default:
		slog.Info("[Scheduler] Pipeline run succeeded", "run_id", report.Run.ID, "rows", report.Run.RowCount)
	}
}
