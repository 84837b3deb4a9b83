package postgres

// SQL for the revenue pipeline. Tables are created by internal/migrations.

const (
	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = $1
		)
	`

	// queryListProducts reads the catalog in sku order.
	// price is read as text so the exact NUMERIC value survives.
	queryListProducts = `
		SELECT sku_id, sku_description, price::text
		FROM product
		ORDER BY sku_id ASC
	`

	// queryScanSales reads the window's sales as a half-open timestamp range.
	// The aggregator re-checks the window, so this is only a pushdown.
	queryScanSales = `
		SELECT sku_id, orderdate_utc, sales
		FROM sales
		WHERE orderdate_utc >= $1
		  AND orderdate_utc < $2
		ORDER BY sku_id ASC, orderdate_utc ASC
	`

	// queryDeleteRevenue empties the fact table. Full-replace semantics:
	// a run's output supersedes everything loaded before it.
	queryDeleteRevenue = `DELETE FROM revenue`

	queryInsertRun = `
		INSERT INTO revenue_runs (
			run_id, window_start, window_end, row_count, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	queryRevenueRange = `
		SELECT sku_id, date_id, price::text, sales, revenue::text
		FROM revenue
		WHERE date_id >= $1
		  AND date_id <= $2
		  AND ($3 = '' OR sku_id = $3)
		ORDER BY sku_id ASC, date_id ASC
	`

	queryRevenueStats = `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE
				WHEN sku_id IS NULL OR sku_id = '' OR date_id IS NULL OR price IS NULL THEN 1
				ELSE 0
			END), 0),
			COALESCE(SUM(CASE
				WHEN ABS(revenue - price * sales) > 0.01 THEN 1
				ELSE 0
			END), 0)
		FROM revenue
	`

	queryLatestRun = `
		SELECT run_id, window_start, window_end, row_count, started_at, finished_at
		FROM revenue_runs
		ORDER BY finished_at DESC
		LIMIT 1
	`
)

// revenueColumns is the COPY column order for bulk loads.
var revenueColumns = []string{"sku_id", "date_id", "price", "sales", "revenue"}
