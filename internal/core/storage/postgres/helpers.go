package postgres

import (
	"fmt"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/shopspring/decimal"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProductRow scans (sku_id, sku_description, price::text).
func scanProductRow(row scanner) (revenue.Product, error) {
	var p revenue.Product
	var priceStr string

	if err := row.Scan(&p.SKUID, &p.Description, &priceStr); err != nil {
		return revenue.Product{}, fmt.Errorf("failed to scan product row: %w", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return revenue.Product{}, fmt.Errorf("parse price %q for sku %s: %w", priceStr, p.SKUID, err)
	}
	p.Price = price
	return p, nil
}

// scanSaleRow scans (sku_id, orderdate_utc, sales).
func scanSaleRow(row scanner) (revenue.SaleEvent, error) {
	var evt revenue.SaleEvent
	if err := row.Scan(&evt.SKUID, &evt.OrderDate, &evt.Quantity); err != nil {
		return revenue.SaleEvent{}, fmt.Errorf("failed to scan sale row: %w", err)
	}
	evt.OrderDate = evt.OrderDate.UTC()
	return evt, nil
}

// scanRevenueRow scans (sku_id, date_id, price::text, sales, revenue::text).
func scanRevenueRow(row scanner) (revenue.RevenueRow, error) {
	var r revenue.RevenueRow
	var dateID time.Time
	var priceStr, revenueStr string

	if err := row.Scan(&r.SKUID, &dateID, &priceStr, &r.Sales, &revenueStr); err != nil {
		return revenue.RevenueRow{}, fmt.Errorf("failed to scan revenue row: %w", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return revenue.RevenueRow{}, fmt.Errorf("parse price %q: %w", priceStr, err)
	}
	amount, err := decimal.NewFromString(revenueStr)
	if err != nil {
		return revenue.RevenueRow{}, fmt.Errorf("parse revenue %q: %w", revenueStr, err)
	}

	r.DateID = revenue.TruncateToDay(dateID)
	r.Price = price
	r.Revenue = amount
	return r, nil
}
