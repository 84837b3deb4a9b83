package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/xuri/excelize/v2"
)

const (
	SheetRevenue = "revenue"
	SheetSummary = "summary"
)

var (
	revenueHeader = []interface{}{"sku_id", "date_id", "price", "sales", "revenue"}
	summaryHeader = []interface{}{"sku_id", "days", "sales", "revenue"}
)

// XLSXExporter writes the grid and a per-SKU summary to an Excel workbook.
type XLSXExporter struct {
	Path string
}

func NewXLSXExporter(path string) *XLSXExporter {
	return &XLSXExporter{Path: path}
}

func (e *XLSXExporter) Name() string { return "xlsx" }

// Export replaces the workbook at Path. Rows must be in sku, date order.
func (e *XLSXExporter) Export(ctx context.Context, rows []revenue.RevenueRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRevenue); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRevenueSheet(f, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, revenue.SummarizeBySKU(rows)); err != nil {
		return err
	}

	err := writeAtomic(e.Path, func(w io.Writer) error {
		if _, err := f.WriteTo(w); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("[Export] Wrote xlsx workbook", "path", e.Path, "rows", len(rows))
	return nil
}

func writeRevenueSheet(f *excelize.File, rows []revenue.RevenueRow) error {
	sw, err := f.NewStreamWriter(SheetRevenue)
	if err != nil {
		return fmt.Errorf("open revenue sheet: %w", err)
	}
	if err := sw.SetRow("A1", revenueHeader); err != nil {
		return fmt.Errorf("write revenue header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{
			r.SKUID,
			r.DateID.Format(revenue.DateLayout),
			r.Price.InexactFloat64(),
			r.Sales,
			r.Revenue.InexactFloat64(),
		}); err != nil {
			return fmt.Errorf("write revenue row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush revenue sheet: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, totals []revenue.SKUTotal) error {
	sw, err := f.NewStreamWriter(SheetSummary)
	if err != nil {
		return fmt.Errorf("open summary sheet: %w", err)
	}
	if err := sw.SetRow("A1", summaryHeader); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}

	for i, t := range totals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{
			t.SKUID,
			t.Days,
			t.Sales,
			t.Revenue.InexactFloat64(),
		}); err != nil {
			return fmt.Errorf("write summary row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush summary sheet: %w", err)
	}
	return nil
}
