package projection

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularities accepted by the revenue query.
const (
	GranularityDay  = "day"  // one value per (sku, date) row
	GranularitySKU  = "sku"  // per-SKU totals over the range
	GranularityDate = "date" // per-date totals across SKUs, zero-filled
)

// RevenueQueryRequest represents the query parameters for reading revenue.
type RevenueQueryRequest struct {
	Start       time.Time `form:"start" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	End         time.Time `form:"end" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	SKUID       string    `form:"sku_id"`
	Granularity string    `form:"granularity"` // default: "day"
}

// RevenueValue is one row of the fact table.
type RevenueValue struct {
	SKUID   string          `json:"sku_id"`
	DateID  string          `json:"date_id"`
	Price   decimal.Decimal `json:"price"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SKUValue is a per-SKU rollup.
type SKUValue struct {
	SKUID   string          `json:"sku_id"`
	Days    int             `json:"days"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DateValue is a per-date rollup across SKUs.
type DateValue struct {
	DateID  string          `json:"date_id"`
	SKUs    int             `json:"skus"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueQueryResponse represents the response for a revenue query.
// Exactly one of Rows, SKUs or Dates is populated, per Granularity.
type RevenueQueryResponse struct {
	Start            string          `json:"start"`
	End              string          `json:"end"`
	SKUID            string          `json:"sku_id,omitempty"`
	Granularity      string          `json:"granularity"`
	RunID            string          `json:"run_id,omitempty"`
	DataThrough      *time.Time      `json:"data_through,omitempty"`
	StalenessSeconds int             `json:"staleness_seconds"`
	TotalSales       int64           `json:"total_sales"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	Rows             []RevenueValue  `json:"rows,omitempty"`
	SKUs             []SKUValue      `json:"skus,omitempty"`
	Dates            []DateValue     `json:"dates,omitempty"`
}
