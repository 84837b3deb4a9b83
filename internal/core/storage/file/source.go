// Package file reads products and sales from a YAML fixture, for local runs
// without a database.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// orderDateLayouts are tried in order when parsing a sale's orderdate.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	revenue.DateLayout,
}

// Fixture is the on-disk document shape.
type Fixture struct {
	Products []ProductRecord `yaml:"products"`
	Sales    []SaleRecord    `yaml:"sales"`
}

// ProductRecord keeps price as a string so it parses without float rounding.
type ProductRecord struct {
	SKUID       string `yaml:"sku_id"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

type SaleRecord struct {
	SKUID     string `yaml:"sku_id"`
	OrderDate string `yaml:"orderdate"`
	Quantity  int64  `yaml:"quantity"`
}

// Source implements storage.Source over a parsed fixture.
type Source struct {
	products []revenue.Product
	sales    []revenue.SaleEvent
}

var _ storage.Source = (*Source)(nil)

// Load reads and parses the fixture at path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}

	slog.Info("[FileSource] Loaded fixture",
		"path", path,
		"products", len(src.products),
		"sales", len(src.sales))
	return src, nil
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Source, error) {
	var doc Fixture
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	src := &Source{
		products: make([]revenue.Product, 0, len(doc.Products)),
		sales:    make([]revenue.SaleEvent, 0, len(doc.Sales)),
	}

	for i, rec := range doc.Products {
		price, err := decimal.NewFromString(strings.TrimSpace(rec.Price))
		if err != nil {
			return nil, fmt.Errorf("products[%d] (%s): invalid price %q: %w", i, rec.SKUID, rec.Price, err)
		}
		src.products = append(src.products, revenue.Product{
			SKUID:       rec.SKUID,
			Description: rec.Description,
			Price:       price,
		})
	}

	for i, rec := range doc.Sales {
		orderDate, err := parseOrderDate(rec.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("sales[%d] (%s): %w", i, rec.SKUID, err)
		}
		src.sales = append(src.sales, revenue.SaleEvent{
			SKUID:     rec.SKUID,
			OrderDate: orderDate,
			Quantity:  rec.Quantity,
		})
	}

	return src, nil
}

// parseOrderDate accepts RFC 3339 or zone-less timestamps; zone-less values are UTC.
func parseOrderDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range orderDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid orderdate %q", s)
}

// ListProducts returns the fixture's products in document order.
func (s *Source) ListProducts(_ context.Context) ([]revenue.Product, error) {
	out := make([]revenue.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// ScanSales streams every fixture sale inside window to fn.
func (s *Source) ScanSales(ctx context.Context, window revenue.Window, fn func(revenue.SaleEvent) error) error {
	for _, evt := range s.sales {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !window.Contains(evt.OrderDate) {
			continue
		}
		if err := fn(evt); err != nil {
			return err
		}
	}
	return nil
}
