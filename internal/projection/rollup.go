package projection

import (
	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/shopspring/decimal"
)

func toRevenueValues(rows []revenue.RevenueRow) []RevenueValue {
	values := make([]RevenueValue, 0, len(rows))
	for _, r := range rows {
		values = append(values, RevenueValue{
			SKUID:   r.SKUID,
			DateID:  r.DateID.Format(revenue.DateLayout),
			Price:   r.Price,
			Sales:   r.Sales,
			Revenue: r.Revenue,
		})
	}
	return values
}

// rollupBySKU groups rows into per-SKU totals. Rows arrive in sku, date order.
func rollupBySKU(rows []revenue.RevenueRow) []SKUValue {
	totals := revenue.SummarizeBySKU(rows)
	values := make([]SKUValue, 0, len(totals))
	for _, t := range totals {
		values = append(values, SKUValue{
			SKUID:   t.SKUID,
			Days:    t.Days,
			Sales:   t.Sales,
			Revenue: t.Revenue,
		})
	}
	return values
}

// rollupByDate groups rows into per-date totals over every date in spine.
func rollupByDate(rows []revenue.RevenueRow, spine revenue.DateSpine) []DateValue {
	totals := revenue.SummarizeByDate(rows, spine)
	values := make([]DateValue, 0, len(totals))
	for _, t := range totals {
		values = append(values, DateValue{
			DateID:  t.DateID.Format(revenue.DateLayout),
			SKUs:    t.SKUs,
			Sales:   t.Sales,
			Revenue: t.Revenue,
		})
	}
	return values
}

func totals(rows []revenue.RevenueRow) (int64, decimal.Decimal) {
	var sales int64
	amount := decimal.Zero
	for _, r := range rows {
		sales += r.Sales
		amount = amount.Add(r.Revenue)
	}
	return sales, amount
}
