package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. SKUID is unique within a run and Price is
// treated as constant across the whole reporting window.
type Product struct {
	SKUID       string
	Description string
	Price       decimal.Decimal
}

// SaleEvent is one raw transaction. Several events may share a (sku, day);
// they are summed, never deduplicated.
type SaleEvent struct {
	SKUID     string
	OrderDate time.Time // grouped by its UTC calendar date
	Quantity  int64     // negative values (returns) pass through as net quantity
}

// SalesKey identifies one grid cell.
// DateID is always a UTC midnight, see TruncateToDay.
type SalesKey struct {
	SKUID  string
	DateID time.Time
}

// RevenueRow is one output row of the revenue fact table.
type RevenueRow struct {
	SKUID   string
	DateID  time.Time
	Price   decimal.Decimal
	Sales   int64
	Revenue decimal.Decimal // Price * Sales, rounded to RevenuePlaces
}
