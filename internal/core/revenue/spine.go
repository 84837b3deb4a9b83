package revenue

import (
	"iter"
	"time"
)

// DateSpine is the ordered, gap-free sequence of dates covering a window.
// It is generated on demand and never stored.
type DateSpine struct {
	window Window
}

// NewDateSpine returns the spine for [start, end]. It fails with
// *InvalidRangeError when start is after end.
func NewDateSpine(start, end time.Time) (DateSpine, error) {
	w, err := NewWindow(start, end)
	if err != nil {
		return DateSpine{}, err
	}
	return DateSpine{window: w}, nil
}

// SpineFor returns the spine of an already validated window.
func SpineFor(w Window) DateSpine {
	return DateSpine{window: w}
}

func (s DateSpine) Window() Window { return s.window }

// Len is end - start + 1 days.
func (s DateSpine) Len() int { return s.window.Days() }

// All yields every date from start to end in ascending order. Each call
// restarts the sequence.
func (s DateSpine) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := s.window.Start; !d.After(s.window.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Dates materializes All.
func (s DateSpine) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Len())
	for d := range s.All() {
		dates = append(dates, d)
	}
	return dates
}
