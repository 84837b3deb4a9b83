package pipeline

import (
	"errors"
	"fmt"

	"github.com/aevon-lab/revenue-grid/internal/core/revenue"
)

// Record kinds reported by RecordError.
const (
	RecordProduct = "product"
	RecordSale    = "sale"
)

// RecordError is a malformed input record rejected before the transform.
type RecordError struct {
	Kind   string // RecordProduct or RecordSale
	Index  int    // position in the extracted batch
	SKUID  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid %s record #%d (sku %q): %s", e.Kind, e.Index, e.SKUID, e.Reason)
}

// ValidateProducts checks the catalog: sku_id present and unique, price
// non-negative. Every offending record is reported, joined.
func ValidateProducts(products []revenue.Product) error {
	var errs []error
	seen := make(map[string]int, len(products))

	for i, p := range products {
		switch {
		case p.SKUID == "":
			errs = append(errs, &RecordError{Kind: RecordProduct, Index: i, Reason: "empty sku_id"})
			continue
		case p.Price.IsNegative():
			errs = append(errs, &RecordError{
				Kind:   RecordProduct,
				Index:  i,
				SKUID:  p.SKUID,
				Reason: "negative price " + p.Price.String(),
			})
		}

		if first, dup := seen[p.SKUID]; dup {
			errs = append(errs, &RecordError{
				Kind:   RecordProduct,
				Index:  i,
				SKUID:  p.SKUID,
				Reason: fmt.Sprintf("duplicate sku_id (first seen at #%d)", first),
			})
			continue
		}
		seen[p.SKUID] = i
	}

	return errors.Join(errs...)
}

// ValidateSale checks one extracted sale. Negative quantities (returns) are
// accepted and summed as-is.
func ValidateSale(index int, evt revenue.SaleEvent) error {
	if evt.SKUID == "" {
		return &RecordError{Kind: RecordSale, Index: index, Reason: "empty sku_id"}
	}
	if evt.OrderDate.IsZero() {
		return &RecordError{Kind: RecordSale, Index: index, SKUID: evt.SKUID, Reason: "missing orderdate"}
	}
	return nil
}
