package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/aevon-lab/revenue-grid/internal/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "revenue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunMigrations(db, migrations.DatabaseSQLite, true))
	return NewStore(db)
}

func seed(t *testing.T, s *Store) {
	t.Helper()

	_, err := s.db.Exec(`
		INSERT INTO product (sku_id, sku_description, price) VALUES
			('B', 'Gadget', 0.99),
			('A', 'Widget', 10.5)
	`)
	require.NoError(t, err)

	_, err = s.db.Exec(`
		INSERT INTO sales (sku_id, orderdate_utc, sales) VALUES
			('A', '2024-12-31 23:59:59', 9),
			('A', '2025-01-01 09:30:00', 3),
			('A', '2025-01-01 18:00:00', 2),
			('B', '2025-01-03T07:15:00Z', 4),
			('B', '2025-01-04 00:00:00', 1)
	`)
	require.NoError(t, err)
}

func mustWindow(t *testing.T, start, end string) revenue.Window {
	t.Helper()
	w, err := revenue.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestStore_ListProducts(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "A", products[0].SKUID)
	require.Equal(t, "Widget", products[0].Description)
	require.True(t, products[0].Price.Equal(decimal.RequireFromString("10.5")))
	require.Equal(t, "B", products[1].SKUID)
	require.True(t, products[1].Price.Equal(decimal.RequireFromString("0.99")))
}

func TestStore_ScanSalesFiltersWindow(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	var got []revenue.SaleEvent
	err := s.ScanSales(context.Background(), mustWindow(t, "2025-01-01", "2025-01-03"), func(evt revenue.SaleEvent) error {
		got = append(got, evt)
		return nil
	})
	require.NoError(t, err)

	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan3 := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	require.Equal(t, []revenue.SaleEvent{
		{SKUID: "A", OrderDate: jan1, Quantity: 3},
		{SKUID: "A", OrderDate: jan1, Quantity: 2},
		{SKUID: "B", OrderDate: jan3, Quantity: 4},
	}, got)
}

func TestStore_ScanSalesRejectsUnreadableOrderDates(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	_, err := s.db.Exec(`INSERT INTO sales (sku_id, orderdate_utc, sales) VALUES ('A', '01/02/2025', 1)`)
	require.NoError(t, err)

	called := false
	err = s.ScanSales(context.Background(), mustWindow(t, "2025-01-01", "2025-01-03"), func(revenue.SaleEvent) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "1 sales rows have an unparseable orderdate_utc")
	require.False(t, called)
}

func TestStore_ReplaceRevenueRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	price := decimal.RequireFromString("10.5")
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := jan1.AddDate(0, 0, 1)
	rows := []revenue.RevenueRow{
		{SKUID: "A", DateID: jan1, Price: price, Sales: 5, Revenue: revenue.ComputeRevenue(price, 5)},
		{SKUID: "A", DateID: jan2, Price: price, Sales: 0, Revenue: revenue.ComputeRevenue(price, 0)},
	}
	started := time.Date(2025, 2, 1, 3, 0, 0, 123456789, time.UTC)
	run := storage.RunRecord{
		ID:          "run-1",
		WindowStart: jan1,
		WindowEnd:   jan2,
		RowCount:    int64(len(rows)),
		StartedAt:   started,
	}
	finished := started.Add(time.Second)
	s.now = func() time.Time { return finished }

	require.NoError(t, s.ReplaceRevenue(ctx, &run, rows))
	require.Equal(t, finished, run.FinishedAt)

	got, err := s.QueryRevenue(ctx, storage.RevenueFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, jan1, got[0].DateID)
	require.Equal(t, int64(5), got[0].Sales)
	require.Equal(t, "52.50", got[0].Revenue.StringFixed(2))
	require.True(t, got[0].Price.Equal(price))
	require.Equal(t, "0.00", got[1].Revenue.StringFixed(2))

	stats, err := s.RevenueStats(ctx)
	require.NoError(t, err)
	require.Equal(t, storage.RevenueStats{RowCount: 2}, stats)

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	require.Equal(t, run, *latest)
}

func TestStore_ReplaceRevenueReplacesPriorOutput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	price := decimal.NewFromInt(2)
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := []revenue.RevenueRow{
		{SKUID: "A", DateID: jan1, Price: price, Sales: 1, Revenue: revenue.ComputeRevenue(price, 1)},
		{SKUID: "B", DateID: jan1, Price: price, Sales: 1, Revenue: revenue.ComputeRevenue(price, 1)},
	}
	second := []revenue.RevenueRow{
		{SKUID: "C", DateID: jan1, Price: price, Sales: 3, Revenue: revenue.ComputeRevenue(price, 3)},
	}

	clock := jan1
	s.now = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}

	require.NoError(t, s.ReplaceRevenue(ctx, &storage.RunRecord{ID: "run-1", WindowStart: jan1, WindowEnd: jan1}, first))
	require.NoError(t, s.ReplaceRevenue(ctx, &storage.RunRecord{ID: "run-2", WindowStart: jan1, WindowEnd: jan1}, second))

	got, err := s.QueryRevenue(ctx, storage.RevenueFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "C", got[0].SKUID)

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	require.Equal(t, "run-2", latest.ID)
}

func TestStore_ReplaceRevenueRollsBackOnFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	price := decimal.NewFromInt(2)
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := []revenue.RevenueRow{
		{SKUID: "A", DateID: jan1, Price: price, Sales: 1, Revenue: revenue.ComputeRevenue(price, 1)},
	}
	require.NoError(t, s.ReplaceRevenue(ctx, &storage.RunRecord{ID: "run-1", WindowStart: jan1, WindowEnd: jan1}, good))

	// Duplicate (sku_id, date_id) violates the primary key mid-load.
	dup := []revenue.RevenueRow{good[0], good[0]}
	err := s.ReplaceRevenue(ctx, &storage.RunRecord{ID: "run-2", WindowStart: jan1, WindowEnd: jan1}, dup)
	require.ErrorContains(t, err, "insert row A/2025-01-01")

	got, err := s.QueryRevenue(ctx, storage.RevenueFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	require.Equal(t, "run-1", latest.ID)
}

func TestStore_QueryRevenueFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	price := decimal.NewFromInt(1)
	spine, err := revenue.NewDateSpine(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	rows, err := revenue.JoinGrid(
		[]revenue.Product{{SKUID: "A", Price: price}, {SKUID: "B", Price: price}},
		spine,
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, s.ReplaceRevenue(ctx, &storage.RunRecord{ID: "run-1"}, rows))

	got, err := s.QueryRevenue(ctx, storage.RevenueFilter{
		SKUID: "B",
		Start: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		require.Equal(t, "B", r.SKUID)
	}
	require.Equal(t, "2025-01-02", got[0].DateID.Format(revenue.DateLayout))
}

func TestStore_LatestRunEmpty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LatestRun(context.Background())
	require.ErrorIs(t, err, storage.ErrNoRuns)
}
