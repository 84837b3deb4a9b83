package revenue

import (
	"context"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"
)

// TransformInput is everything one run of the transform needs.
type TransformInput struct {
	Products []Product
	Sales    iter.Seq[SaleEvent] // may be nil for "no sales"
	Start    time.Time
	End      time.Time
	Shards   int // <= 1 joins on the calling goroutine
}

// TransformResult is the output of one transform run.
type TransformResult struct {
	Rows           []RevenueRow
	Spine          DateSpine
	Products       int
	SalesKeys      int
	EventsAccepted int64
	EventsDropped  int64
}

// Transform generates the date spine and aggregates sales concurrently, then
// joins both onto the product grid. It is pure: nothing survives between runs.
func Transform(ctx context.Context, in TransformInput) (*TransformResult, error) {
	window, err := NewWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	var spine DateSpine
	agg := NewSalesAggregator(window)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := NewDateSpine(window.Start, window.End)
		if err != nil {
			return err
		}
		spine = s
		return nil
	})
	g.Go(func() error {
		if in.Sales == nil {
			return nil
		}
		for evt := range in.Sales {
			if err := gctx.Err(); err != nil {
				return err
			}
			agg.Add(evt)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := agg.Result()
	rows, err := JoinGridSharded(ctx, in.Products, spine, index, in.Shards)
	if err != nil {
		return nil, err
	}

	return &TransformResult{
		Rows:           rows,
		Spine:          spine,
		Products:       len(in.Products),
		SalesKeys:      len(index),
		EventsAccepted: agg.Accepted(),
		EventsDropped:  agg.Dropped(),
	}, nil
}
