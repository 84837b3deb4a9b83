package revenue

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of a date_id.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Window is an inclusive range of calendar dates. Both bounds are UTC midnights.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow normalizes both bounds to their UTC calendar date and rejects
// ranges where start is after end.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: TruncateToDay(start), End: TruncateToDay(end)}
	if w.Start.After(w.End) {
		return Window{}, &InvalidRangeError{
			Start: w.Start.Format(DateLayout),
			End:   w.End.Format(DateLayout),
		}
	}
	return w, nil
}

// ParseWindow builds a Window from two YYYY-MM-DD strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// Days returns the number of calendar dates in the window, end inclusive.
// Counted from Unix seconds; time.Duration saturates past ~292 years.
func (w Window) Days() int {
	return int((w.End.Unix()-w.Start.Unix())/secondsPerDay) + 1
}

// Contains reports whether t falls on a calendar date inside the window.
func (w Window) Contains(t time.Time) bool {
	d := TruncateToDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// EndExclusive is the first instant after the window, for half-open SQL ranges.
func (w Window) EndExclusive() time.Time {
	return w.End.AddDate(0, 0, 1)
}

func (w Window) String() string {
	return w.Start.Format(DateLayout) + ".." + w.End.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", s, DateLayout, err)
	}
	return t, nil
}

// TruncateToDay returns the UTC calendar date of t as a midnight timestamp.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
