package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/parquet-go/parquet-go"
)

// RevenueRecord is the Parquet schema for one revenue row. Price and revenue
// are kept as exact decimal strings, with float columns for convenience.
type RevenueRecord struct {
	SKUID        string  `parquet:"sku_id"`
	DateID       int64   `parquet:"date_id,timestamp(millisecond)"` // Unix ms, UTC midnight
	Date         string  `parquet:"date"`
	Price        string  `parquet:"price"`
	PriceFloat   float64 `parquet:"price_float"`
	Sales        int64   `parquet:"sales"`
	Revenue      string  `parquet:"revenue"`
	RevenueFloat float64 `parquet:"revenue_float"`
}

func toRecords(rows []revenue.RevenueRow) []RevenueRecord {
	records := make([]RevenueRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, RevenueRecord{
			SKUID:        r.SKUID,
			DateID:       r.DateID.UnixMilli(),
			Date:         r.DateID.Format(revenue.DateLayout),
			Price:        r.Price.String(),
			PriceFloat:   r.Price.InexactFloat64(),
			Sales:        r.Sales,
			Revenue:      r.Revenue.StringFixed(revenue.RevenuePlaces),
			RevenueFloat: r.Revenue.InexactFloat64(),
		})
	}
	return records
}

// ParquetExporter writes the whole grid to a single Parquet file.
type ParquetExporter struct {
	Path string
}

func NewParquetExporter(path string) *ParquetExporter {
	return &ParquetExporter{Path: path}
}

func (e *ParquetExporter) Name() string { return "parquet" }

// Export replaces the file at Path with rows.
func (e *ParquetExporter) Export(ctx context.Context, rows []revenue.RevenueRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := toRecords(rows)
	err := writeAtomic(e.Path, func(w io.Writer) error {
		if err := parquet.Write(w, records); err != nil {
			return fmt.Errorf("write parquet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("[Export] Wrote parquet file", "path", e.Path, "rows", len(records))
	return nil
}

// ReadParquet loads a file written by ParquetExporter.
func ReadParquet(path string) ([]RevenueRecord, error) {
	records, err := parquet.ReadFile[RevenueRecord](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return records, nil
}
