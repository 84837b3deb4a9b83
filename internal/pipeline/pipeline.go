package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/google/uuid"
)

const defaultShardCount = 4

// ErrRunInProgress is returned when Run is called while another run holds the pipeline.
var ErrRunInProgress = errors.New("pipeline run already in progress")

// Exporter writes a copy of a run's rows somewhere outside the database.
type Exporter interface {
	Name() string
	Export(ctx context.Context, rows []revenue.RevenueRow) error
}

// Options controls one pipeline run.
type Options struct {
	Window     revenue.Window
	ShardCount int
	Validate   bool
}

func (o Options) normalized() Options {
	n := o
	if n.ShardCount <= 0 {
		n.ShardCount = defaultShardCount
	}
	return n
}

// Report summarizes a completed run.
type Report struct {
	Run            storage.RunRecord `json:"run"`
	Products       int               `json:"products"`
	Days           int               `json:"days"`
	EventsAccepted int64             `json:"events_accepted"`
	EventsDropped  int64             `json:"events_dropped"`
	Exports        []string          `json:"exports,omitempty"`
	Validation     *ValidationReport `json:"validation,omitempty"`
}

// Pipeline runs extract, transform, load, export and validate as one pass.
// Runs are serialized; a concurrent Run fails fast with ErrRunInProgress.
type Pipeline struct {
	source    storage.Source
	store     storage.RevenueStore
	exporters []Exporter
	opts      Options

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// New creates a pipeline over source and store.
func New(source storage.Source, store storage.RevenueStore, opts Options, exporters ...Exporter) *Pipeline {
	return &Pipeline{
		source:    source,
		store:     store,
		exporters: exporters,
		opts:      opts.normalized(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Window returns the configured reporting window.
func (p *Pipeline) Window() revenue.Window {
	return p.opts.Window
}

// Run executes one full pass. Any error before the load commits leaves the
// previously loaded table untouched.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if !p.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer p.mu.Unlock()

	run := storage.RunRecord{
		ID:          p.newID(),
		WindowStart: p.opts.Window.Start,
		WindowEnd:   p.opts.Window.End,
		StartedAt:   p.now(),
	}

	slog.Info("[Pipeline] Starting run",
		"run_id", run.ID,
		"window", p.opts.Window.String(),
		"shards", p.opts.ShardCount,
	)

	products, events, err := p.extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	result, err := revenue.Transform(ctx, revenue.TransformInput{
		Products: products,
		Sales:    slices.Values(events),
		Start:    p.opts.Window.Start,
		End:      p.opts.Window.End,
		Shards:   p.opts.ShardCount,
	})
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	slog.Info("[Pipeline] Transform complete",
		"run_id", run.ID,
		"rows", len(result.Rows),
		"products", result.Products,
		"days", result.Spine.Len(),
		"sales_keys", result.SalesKeys,
		"events_accepted", result.EventsAccepted,
		"events_dropped", result.EventsDropped,
	)

	run.RowCount = int64(len(result.Rows))
	if err := p.store.ReplaceRevenue(ctx, &run, result.Rows); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	report := &Report{
		Run:            run,
		Products:       result.Products,
		Days:           result.Spine.Len(),
		EventsAccepted: result.EventsAccepted,
		EventsDropped:  result.EventsDropped,
	}

	for _, exp := range p.exporters {
		if err := exp.Export(ctx, result.Rows); err != nil {
			return report, fmt.Errorf("export %s: %w", exp.Name(), err)
		}
		report.Exports = append(report.Exports, exp.Name())
	}

	if p.opts.Validate {
		stats, err := p.store.RevenueStats(ctx)
		if err != nil {
			return report, fmt.Errorf("validate: %w", err)
		}
		report.Validation = ValidateLoad(stats, result.Products, result.Spine.Len())
	}

	slog.Info("[Pipeline] Run complete",
		"run_id", run.ID,
		"rows", run.RowCount,
		"exports", len(report.Exports),
		"duration", run.FinishedAt.Sub(run.StartedAt),
	)
	return report, nil
}

// extract reads the catalog and the window's sales, rejecting malformed records.
func (p *Pipeline) extract(ctx context.Context) ([]revenue.Product, []revenue.SaleEvent, error) {
	products, err := p.source.ListProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list products: %w", err)
	}
	if err := ValidateProducts(products); err != nil {
		return nil, nil, err
	}

	var events []revenue.SaleEvent
	err = p.source.ScanSales(ctx, p.opts.Window, func(evt revenue.SaleEvent) error {
		if err := ValidateSale(len(events), evt); err != nil {
			return err
		}
		events = append(events, evt)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan sales: %w", err)
	}

	slog.Info("[Pipeline] Extracted",
		"products", len(products),
		"sales", len(events),
	)
	return products, events, nil
}
