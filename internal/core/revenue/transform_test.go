package revenue

import (
	"context"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTransform_EndToEnd(t *testing.T) {
	in := TransformInput{
		Products: []Product{product("B", "3.33"), product("A", "10.0")},
		Sales: slices.Values([]SaleEvent{
			{SKUID: "A", OrderDate: at("2025-01-01", 8), Quantity: 3},
			{SKUID: "A", OrderDate: at("2025-01-01", 20), Quantity: 2},
			{SKUID: "B", OrderDate: at("2025-01-03", 1), Quantity: 3},
			{SKUID: "B", OrderDate: at("2025-02-03", 1), Quantity: 100},
		}),
		Start:  day("2025-01-01"),
		End:    day("2025-01-03"),
		Shards: 2,
	}

	res, err := Transform(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, res.Rows, 6)
	require.Equal(t, 2, res.Products)
	require.Equal(t, 3, res.Spine.Len())
	require.Equal(t, 2, res.SalesKeys)
	require.Equal(t, int64(3), res.EventsAccepted)
	require.Equal(t, int64(1), res.EventsDropped)

	for _, r := range res.Rows {
		require.True(t, ComputeRevenue(r.Price, r.Sales).Equal(r.Revenue))
	}
	require.Equal(t, "A", res.Rows[0].SKUID)
	require.Equal(t, int64(5), res.Rows[0].Sales)
	require.Equal(t, "B", res.Rows[5].SKUID)
	require.True(t, decimal.RequireFromString("9.99").Equal(res.Rows[5].Revenue))
}

func TestTransform_InvalidRangeProducesNoRows(t *testing.T) {
	res, err := Transform(context.Background(), TransformInput{
		Products: []Product{product("A", "1")},
		Start:    day("2025-01-05"),
		End:      day("2025-01-01"),
	})
	require.ErrorIs(t, err, ErrInvalidRange)
	require.Nil(t, res)
}

func TestTransform_MissingProduct(t *testing.T) {
	res, err := Transform(context.Background(), TransformInput{
		Products: []Product{product("A", "1")},
		Sales: slices.Values([]SaleEvent{
			{SKUID: "orphan", OrderDate: day("2025-01-01"), Quantity: 1},
		}),
		Start: day("2025-01-01"),
		End:   day("2025-01-31"),
	})
	require.ErrorIs(t, err, ErrMissingProduct)
	require.Nil(t, res)
}

func TestTransform_IsReproducible(t *testing.T) {
	events := []SaleEvent{
		{SKUID: "A", OrderDate: at("2025-01-02", 1), Quantity: 1},
		{SKUID: "C", OrderDate: at("2025-01-09", 1), Quantity: 6},
	}
	run := func() []RevenueRow {
		res, err := Transform(context.Background(), TransformInput{
			Products: []Product{product("C", "1.1"), product("A", "2"), product("B", "0")},
			Sales:    slices.Values(events),
			Start:    day("2025-01-01"),
			End:      day("2025-01-31"),
			Shards:   4,
		})
		require.NoError(t, err)
		return res.Rows
	}

	first := run()
	require.Len(t, first, 93)
	require.Equal(t, first, run())
}

func TestTransform_StopsAggregatingOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Transform(ctx, TransformInput{
		Products: []Product{product("A", "1.00")},
		Sales: slices.Values([]SaleEvent{
			{SKUID: "A", OrderDate: at("2025-01-01", 8), Quantity: 1},
		}),
		Start: day("2025-01-01"),
		End:   day("2025-01-02"),
	})
	require.ErrorIs(t, err, context.Canceled)
}
