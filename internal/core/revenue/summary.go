package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKUTotal is the per-SKU rollup of a set of rows.
type SKUTotal struct {
	SKUID   string
	Days    int
	Sales   int64
	Revenue decimal.Decimal
}

// DateTotal is the per-date rollup across all SKUs.
type DateTotal struct {
	DateID  time.Time
	SKUs    int
	Sales   int64
	Revenue decimal.Decimal
}

// SummarizeBySKU rolls rows up per SKU. Input must be in SortRows order;
// output keeps that order.
func SummarizeBySKU(rows []RevenueRow) []SKUTotal {
	var out []SKUTotal
	for _, r := range rows {
		if n := len(out); n > 0 && out[n-1].SKUID == r.SKUID {
			out[n-1].Days++
			out[n-1].Sales += r.Sales
			out[n-1].Revenue = out[n-1].Revenue.Add(r.Revenue)
			continue
		}
		out = append(out, SKUTotal{
			SKUID:   r.SKUID,
			Days:    1,
			Sales:   r.Sales,
			Revenue: r.Revenue,
		})
	}
	return out
}

// SummarizeByDate rolls rows up per date over the spine. Every spine date gets
// an entry, zero-filled when no row falls on it.
func SummarizeByDate(rows []RevenueRow, spine DateSpine) []DateTotal {
	byDate := make(map[time.Time]*DateTotal, spine.Len())
	out := make([]DateTotal, 0, spine.Len())
	for d := range spine.All() {
		out = append(out, DateTotal{DateID: d, Revenue: decimal.Zero})
	}
	for i := range out {
		byDate[out[i].DateID] = &out[i]
	}

	for _, r := range rows {
		t, ok := byDate[TruncateToDay(r.DateID)]
		if !ok {
			continue
		}
		t.SKUs++
		t.Sales += r.Sales
		t.Revenue = t.Revenue.Add(r.Revenue)
	}
	return out
}
