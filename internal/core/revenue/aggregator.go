package revenue

import (
	"iter"
	"sort"
	"time"
)

// SalesIndex maps a grid cell to its summed quantity. A missing key means no
// sales that day; zero entries are never materialized by the aggregator.
type SalesIndex map[SalesKey]int64

// Lookup returns the summed quantity for (sku, date).
func (idx SalesIndex) Lookup(skuID string, date time.Time) (int64, bool) {
	q, ok := idx[SalesKey{SKUID: skuID, DateID: TruncateToDay(date)}]
	return q, ok
}

// Merge folds other into idx additively. Used to combine partial indexes built
// from disjoint slices of the event stream.
func (idx SalesIndex) Merge(other SalesIndex) {
	for k, q := range other {
		idx[k] += q
	}
}

// SKUs returns the distinct SKUs referenced by the index, sorted.
func (idx SalesIndex) SKUs() []string {
	seen := make(map[string]struct{})
	for k := range idx {
		seen[k.SKUID] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for sku := range seen {
		out = append(out, sku)
	}
	sort.Strings(out)
	return out
}

// SalesAggregator reduces a stream of SaleEvents into a SalesIndex for one
// window. It sums whatever it is fed: adding the same event twice counts it twice.
// Not safe for concurrent use; build one per goroutine and Merge the results.
type SalesAggregator struct {
	window   Window
	index    SalesIndex
	accepted int64
	dropped  int64
}

// NewSalesAggregator creates an empty aggregator for the window.
func NewSalesAggregator(w Window) *SalesAggregator {
	return &SalesAggregator{
		window: w,
		index:  make(SalesIndex),
	}
}

// Add folds one event. Events whose UTC date falls outside the window are
// dropped silently; Add reports whether evt was kept.
func (a *SalesAggregator) Add(evt SaleEvent) bool {
	if !a.window.Contains(evt.OrderDate) {
		a.dropped++
		return false
	}
	key := SalesKey{SKUID: evt.SKUID, DateID: TruncateToDay(evt.OrderDate)}
	a.index[key] += evt.Quantity
	a.accepted++
	return true
}

// Result returns the accumulated index. The aggregator keeps ownership; callers
// must not Add after reading the result if they rely on it being stable.
func (a *SalesAggregator) Result() SalesIndex { return a.index }

func (a *SalesAggregator) Accepted() int64 { return a.accepted }
func (a *SalesAggregator) Dropped() int64  { return a.dropped }

// AggregateSales is the one-shot form of SalesAggregator.
func AggregateSales(w Window, events iter.Seq[SaleEvent]) SalesIndex {
	agg := NewSalesAggregator(w)
	if events == nil {
		return agg.Result()
	}
	for evt := range events {
		agg.Add(evt)
	}
	return agg.Result()
}
