package revenue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRange matches any *InvalidRangeError via errors.Is.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrMissingProduct matches any *MissingProductError via errors.Is.
	ErrMissingProduct = errors.New("sales reference unknown product")
)

// InvalidRangeError is returned when a window ends before it starts.
// It is fatal: no output may be produced for the run.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s", e.Start, e.End)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// MissingProductError is returned when aggregated sales reference SKUs that
// are not in the product list. Such sales have no row in the grid.
type MissingProductError struct {
	SKUs []string // sorted, distinct
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("sales reference %d unknown product(s): %s", len(e.SKUs), strings.Join(e.SKUs, ", "))
}

func (e *MissingProductError) Is(target error) bool {
	return target == ErrMissingProduct
}
