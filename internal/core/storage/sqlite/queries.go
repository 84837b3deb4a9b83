package sqlite

// SQL for the SQLite layout. Dates are stored as YYYY-MM-DD text and run
// timestamps as fixed-width UTC text, so string comparison orders them.

const (
	queryListProducts = `
		SELECT sku_id, COALESCE(sku_description, ''), CAST(price AS TEXT)
		FROM product
		ORDER BY sku_id ASC
	`

	// DATE() accepts both "YYYY-MM-DD HH:MM:SS" and ISO-8601 values.
	queryScanSales = `
		SELECT sku_id, DATE(orderdate_utc) AS order_date, sales
		FROM sales
		WHERE DATE(orderdate_utc) BETWEEN ? AND ?
		ORDER BY sku_id ASC, orderdate_utc ASC
	`

	// Rows DATE() cannot parse never match the window predicate above.
	queryCountBadSales = `
		SELECT COUNT(*) FROM sales WHERE DATE(orderdate_utc) IS NULL
	`

	queryDeleteRevenue = `DELETE FROM revenue`

	queryInsertRevenue = `
		INSERT INTO revenue (sku_id, date_id, price, sales, revenue)
		VALUES (?, ?, ?, ?, ?)
	`

	queryInsertRun = `
		INSERT INTO revenue_runs (
			run_id, window_start, window_end, row_count, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	queryRevenueRange = `
		SELECT sku_id, DATE(date_id) AS date_id, CAST(price AS TEXT), sales, CAST(revenue AS TEXT)
		FROM revenue
		WHERE date_id BETWEEN ? AND ?
		  AND (? = '' OR sku_id = ?)
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
