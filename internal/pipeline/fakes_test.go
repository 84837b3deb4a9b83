package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/stretchr/testify/mock"
)

type fakeSource struct {
	products []revenue.Product
	sales    []revenue.SaleEvent
	listErr  error
}

func (f *fakeSource) ListProducts(ctx context.Context) ([]revenue.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeSource) ScanSales(ctx context.Context, window revenue.Window, fn func(revenue.SaleEvent) error) error {
	for _, evt := range f.sales {
		if err := fn(evt); err != nil {
			return err
		}
	}
	return nil
}

// fakeStore keeps the last committed load in memory.
type fakeStore struct {
	mu         sync.Mutex
	rows       []revenue.RevenueRow
	runs       []storage.RunRecord
	replaceErr error
	stats      *storage.RevenueStats
	dropRows   int // rows lost on write, as a faulty sink would
}

func (f *fakeStore) ReplaceRevenue(ctx context.Context, run *storage.RunRecord, rows []revenue.RevenueRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.rows = append([]revenue.RevenueRow(nil), rows...)
	if f.dropRows > 0 {
		f.rows = f.rows[:len(f.rows)-f.dropRows]
	}
	run.FinishedAt = run.StartedAt.Add(time.Minute)
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeStore) QueryRevenue(ctx context.Context, filter storage.RevenueFilter) ([]revenue.RevenueRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]revenue.RevenueRow(nil), f.rows...), nil
}

func (f *fakeStore) RevenueStats(ctx context.Context) (storage.RevenueStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stats != nil {
		return *f.stats, nil
	}
	stats := storage.RevenueStats{RowCount: int64(len(f.rows))}
	for _, r := range f.rows {
		if !revenue.ComputeRevenue(r.Price, r.Sales).Equal(r.Revenue) {
			stats.MismatchCount++
		}
	}
	return stats, nil
}

func (f *fakeStore) LatestRun(ctx context.Context) (*storage.RunRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.runs) == 0 {
		return nil, storage.ErrNoRuns
	}
	run := f.runs[len(f.runs)-1]
	return &run, nil
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Name() string {
	return m.Called().String(0)
}

func (m *mockExporter) Export(ctx context.Context, rows []revenue.RevenueRow) error {
	return m.Called(ctx, rows).Error(0)
}
