package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeRevenue(t *testing.T) {
	tests := []struct {
		name  string
		price string
		sales int64
		want  string
	}{
		{name: "whole", price: "10", sales: 5, want: "50"},
		{name: "zero sales", price: "19.99", sales: 0, want: "0"},
		{name: "cents", price: "19.99", sales: 3, want: "59.97"},
		{name: "rounds down", price: "0.333", sales: 2, want: "0.67"},
		{name: "half to even down", price: "0.125", sales: 1, want: "0.12"},
		{name: "half to even up", price: "0.135", sales: 1, want: "0.14"},
		{name: "net negative", price: "4.50", sales: -2, want: "-9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRevenue(decimal.RequireFromString(tc.price), tc.sales)
			require.True(t, decimal.RequireFromString(tc.want).Equal(got), "want=%s got=%s", tc.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "float64 keeps shortest form", in: 19.99, want: decimal.RequireFromString("19.99")},
		{name: "float32", in: float32(7.25), want: decimal.RequireFromString("7.25")},
		{name: "int", in: 7, want: decimal.NewFromInt(7)},
		{name: "int32", in: int32(8), want: decimal.NewFromInt(8)},
		{name: "int64", in: int64(9), want: decimal.NewFromInt(9)},
		{name: "string", in: "42.125", want: decimal.RequireFromString("42.125")},
		{name: "bytes", in: []byte("1.5"), want: decimal.RequireFromString("1.5")},
		{name: "decimal", in: decimal.NewFromInt(3), want: decimal.NewFromInt(3)},
		{name: "invalid string", in: "not-a-number", wantErr: true},
		{name: "nil", in: nil, wantErr: true},
		{name: "unsupported", in: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecimal(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want, got)
		})
	}
}
