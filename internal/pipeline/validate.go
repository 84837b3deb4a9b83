package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/aevon-lab/revenue-grid/internal/core/storage"
)

// Check is one post-load assertion.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// ValidationReport is the outcome of checking the loaded table.
type ValidationReport struct {
	Checks []Check `json:"checks"`
}

// Passed reports whether every check passed.
func (r *ValidationReport) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// ValidateLoad compares the table's integrity counters against the grid size
// products x days. Failures are reported, never returned as errors: the load
// has already committed by the time this runs.
func ValidateLoad(stats storage.RevenueStats, products, days int) *ValidationReport {
	expectedRows := int64(products) * int64(days)
	report := &ValidationReport{
		Checks: []Check{
			{
				Name:   "row_count",
				Passed: stats.RowCount == expectedRows,
				Detail: fmt.Sprintf("expected %d rows (%d products x %d dates), found %d",
					expectedRows, products, days, stats.RowCount),
			},
			{
				Name:   "null_columns",
				Passed: stats.NullCount == 0,
				Detail: fmt.Sprintf("%d rows with null sku_id, date_id or price", stats.NullCount),
			},
			{
				Name:   "revenue_math",
				Passed: stats.MismatchCount == 0,
				Detail: fmt.Sprintf("%d rows where revenue != price * sales", stats.MismatchCount),
			},
		},
	}

	for _, c := range report.Checks {
		if c.Passed {
			slog.Info("[Validate] PASS", "check", c.Name, "detail", c.Detail)
		} else {
			slog.Warn("[Validate] FAIL", "check", c.Name, "detail", c.Detail)
		}
	}
	return report
}
