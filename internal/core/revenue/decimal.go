package revenue

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RevenuePlaces is the number of decimal places revenue is rounded to.
const RevenuePlaces = 2

// ComputeRevenue returns price * sales rounded half-to-even to RevenuePlaces.
func ComputeRevenue(price decimal.Decimal, sales int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(sales)).RoundBank(RevenuePlaces)
}

// ParseDecimal converts a scanned or decoded numeric value into an exact decimal.
// Float inputs go through NewFromFloat, which keeps the shortest representation
// (19.99 stays 19.99).
func ParseDecimal(v interface{}) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case []byte:
		return decimal.NewFromString(string(val))
	case string:
		return decimal.NewFromString(val)
	case nil:
		return decimal.Zero, fmt.Errorf("numeric value is null")
	}
	return decimal.Zero, fmt.Errorf("unsupported numeric type %T", v)
}
