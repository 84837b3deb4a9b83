package revenue

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(date string, hour int) time.Time {
	return day(date).Add(time.Duration(hour) * time.Hour)
}

func TestAggregateSales_SumsPerSKUAndDay(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	events := []SaleEvent{
		{SKUID: "A", OrderDate: at("2025-01-01", 9), Quantity: 3},
		{SKUID: "A", OrderDate: at("2025-01-01", 17), Quantity: 2},
		{SKUID: "A", OrderDate: at("2025-01-02", 0), Quantity: 1},
		{SKUID: "B", OrderDate: at("2025-01-01", 12), Quantity: 7},
	}

	idx := AggregateSales(w, slices.Values(events))
	require.Len(t, idx, 3)

	q, ok := idx.Lookup("A", day("2025-01-01"))
	require.True(t, ok)
	require.Equal(t, int64(5), q)

	q, ok = idx.Lookup("A", at("2025-01-02", 13))
	require.True(t, ok)
	require.Equal(t, int64(1), q)

	q, ok = idx.Lookup("B", day("2025-01-01"))
	require.True(t, ok)
	require.Equal(t, int64(7), q)

	_, ok = idx.Lookup("B", day("2025-01-02"))
	require.False(t, ok, "absence is the zero-sales representation")
}

func TestSalesAggregator_DropsOutOfWindow(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	agg := NewSalesAggregator(w)
	require.False(t, agg.Add(SaleEvent{SKUID: "A", OrderDate: at("2024-12-31", 23), Quantity: 4}))
	require.True(t, agg.Add(SaleEvent{SKUID: "A", OrderDate: at("2025-01-31", 23), Quantity: 1}))
	require.False(t, agg.Add(SaleEvent{SKUID: "A", OrderDate: at("2025-02-01", 0), Quantity: 9}))

	require.Equal(t, int64(1), agg.Accepted())
	require.Equal(t, int64(2), agg.Dropped())
	require.Len(t, agg.Result(), 1)
}

func TestSalesAggregator_NegativeQuantitiesNet(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-01")
	require.NoError(t, err)

	agg := NewSalesAggregator(w)
	agg.Add(SaleEvent{SKUID: "A", OrderDate: at("2025-01-01", 1), Quantity: 5})
	agg.Add(SaleEvent{SKUID: "A", OrderDate: at("2025-01-01", 2), Quantity: -7})

	q, ok := agg.Result().Lookup("A", day("2025-01-01"))
	require.True(t, ok)
	require.Equal(t, int64(-2), q)
}

func TestSalesAggregator_NotIdempotent(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-01")
	require.NoError(t, err)

	evt := SaleEvent{SKUID: "A", OrderDate: at("2025-01-01", 1), Quantity: 4}
	agg := NewSalesAggregator(w)
	agg.Add(evt)
	agg.Add(evt)

	q, _ := agg.Result().Lookup("A", day("2025-01-01"))
	require.Equal(t, int64(8), q)
}

func TestAggregateSales_OrderIndependent(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-05")
	require.NoError(t, err)

	events := []SaleEvent{
		{SKUID: "A", OrderDate: at("2025-01-01", 1), Quantity: 1},
		{SKUID: "B", OrderDate: at("2025-01-03", 1), Quantity: 2},
		{SKUID: "A", OrderDate: at("2025-01-01", 5), Quantity: 3},
		{SKUID: "C", OrderDate: at("2025-01-05", 1), Quantity: -1},
		{SKUID: "B", OrderDate: at("2025-01-03", 8), Quantity: 4},
	}
	reversed := slices.Clone(events)
	slices.Reverse(reversed)

	require.Equal(t, AggregateSales(w, slices.Values(events)), AggregateSales(w, slices.Values(reversed)))
}

func TestSalesIndex_MergeIsAdditive(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-02")
	require.NoError(t, err)

	left := AggregateSales(w, slices.Values([]SaleEvent{
		{SKUID: "A", OrderDate: at("2025-01-01", 1), Quantity: 2},
	}))
	right := AggregateSales(w, slices.Values([]SaleEvent{
		{SKUID: "A", OrderDate: at("2025-01-01", 3), Quantity: 5},
		{SKUID: "B", OrderDate: at("2025-01-02", 3), Quantity: 1},
	}))

	left.Merge(right)
	q, _ := left.Lookup("A", day("2025-01-01"))
	require.Equal(t, int64(7), q)
	require.Equal(t, []string{"A", "B"}, left.SKUs())
}

func TestAggregateSales_NilStream(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-02")
	require.NoError(t, err)
	require.Empty(t, AggregateSales(w, nil))
}
