package revenue

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/partition"
	"golang.org/x/sync/errgroup"
)

// JoinGrid builds the full products x spine grid, left-joins the sales index
// onto it and zero-fills every miss. Rows are ordered by SKU, then date.
//
// Fails with *MissingProductError when the index references a SKU that has no
// product; those sales would otherwise vanish from the report.
func JoinGrid(products []Product, spine DateSpine, index SalesIndex) ([]RevenueRow, error) {
	if err := checkOrphanSales(products, index); err != nil {
		return nil, err
	}

	dates := spine.Dates()
	rows := make([]RevenueRow, 0, len(products)*len(dates))
	for _, p := range sortedProducts(products) {
		rows = appendProductRows(rows, p, dates, index)
	}
	return rows, nil
}

// JoinGridSharded splits the grid by SKU shard and builds each shard on its own
// goroutine. Output is identical to JoinGrid: the final sort restores order
// regardless of which shard finished first.
func JoinGridSharded(
	ctx context.Context,
	products []Product,
	spine DateSpine,
	index SalesIndex,
	shards int,
) ([]RevenueRow, error) {
	if shards <= 1 || len(products) < 2 {
		return JoinGrid(products, spine, index)
	}
	if err := checkOrphanSales(products, index); err != nil {
		return nil, err
	}

	groups := make([][]Product, shards)
	for _, p := range products {
		s := partition.Shard(p.SKUID, shards)
		groups[s] = append(groups[s], p)
	}

	dates := spine.Dates()
	results := make([][]RevenueRow, shards)

	g, gctx := errgroup.WithContext(ctx)
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows := make([]RevenueRow, 0, len(group)*len(dates))
			for _, p := range group {
				rows = appendProductRows(rows, p, dates, index)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]RevenueRow, 0, len(products)*len(dates))
	for _, rows := range results {
		merged = append(merged, rows...)
	}
	SortRows(merged)
	return merged, nil
}

// SortRows orders rows by SKU (byte-wise lexical), then date ascending.
// Downstream consumers diff on this order.
func SortRows(rows []RevenueRow) {
	slices.SortStableFunc(rows, compareRows)
}

func compareRows(a, b RevenueRow) int {
	if c := strings.Compare(a.SKUID, b.SKUID); c != 0 {
		return c
	}
	return a.DateID.Compare(b.DateID)
}

func appendProductRows(rows []RevenueRow, p Product, dates []time.Time, index SalesIndex) []RevenueRow {
	for _, d := range dates {
		sales := index[SalesKey{SKUID: p.SKUID, DateID: d}]
		rows = append(rows, RevenueRow{
			SKUID:   p.SKUID,
			DateID:  d,
			Price:   p.Price,
			Sales:   sales,
			Revenue: ComputeRevenue(p.Price, sales),
		})
	}
	return rows
}

func sortedProducts(products []Product) []Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b Product) int {
		return strings.Compare(a.SKUID, b.SKUID)
	})
	return out
}

func checkOrphanSales(products []Product, index SalesIndex) error {
	known := make(map[string]struct{}, len(products))
	for _, p := range products {
		known[p.SKUID] = struct{}{}
	}

	var missing []string
	for _, sku := range index.SKUs() {
		if _, ok := known[sku]; !ok {
			missing = append(missing, sku)
		}
	}
	if len(missing) > 0 {
		return &MissingProductError{SKUs: missing}
	}
	return nil
}
