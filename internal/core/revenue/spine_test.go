package revenue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDateSpine_January(t *testing.T) {
	spine, err := NewDateSpine(day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)

	dates := spine.Dates()
	require.Len(t, dates, 31)
	require.Equal(t, 31, spine.Len())
	require.Equal(t, day("2025-01-01"), dates[0])
	require.Equal(t, day("2025-01-31"), dates[30])

	for i := 1; i < len(dates); i++ {
		require.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "gap or duplicate at index %d", i)
	}
}

func TestNewDateSpine_CrossesBoundaries(t *testing.T) {
	spine, err := NewDateSpine(day("2024-02-27"), day("2024-03-02"))
	require.NoError(t, err)
	require.Equal(t,
		[]string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"},
		formatDates(spine),
	)

	spine, err = NewDateSpine(day("2024-12-31"), day("2025-01-01"))
	require.NoError(t, err)
	require.Equal(t, []string{"2024-12-31", "2025-01-01"}, formatDates(spine))
}

func TestNewDateSpine_InvalidRange(t *testing.T) {
	_, err := NewDateSpine(day("2025-01-05"), day("2025-01-01"))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestDateSpine_AllIsRestartable(t *testing.T) {
	spine, err := NewDateSpine(day("2025-01-01"), day("2025-01-10"))
	require.NoError(t, err)

	first := formatDates(spine)
	second := formatDates(spine)
	require.Equal(t, first, second)

	// Early exit must not break later iterations.
	for d := range spine.All() {
		require.Equal(t, day("2025-01-01"), d)
		break
	}
	require.Len(t, spine.Dates(), 10)
}

func formatDates(spine DateSpine) []string {
	var out []string
	for d := range spine.All() {
		out = append(out, d.Format(DateLayout))
	}
	return out
}

func TestNewDateSpine_MultiCenturyLength(t *testing.T) {
	spine, err := NewDateSpine(day("1700-01-01"), day("2100-01-01"))
	require.NoError(t, err)

	dates := spine.Dates()
	require.Equal(t, len(dates), spine.Len())
	require.Equal(t, 146098, spine.Len())
	require.Equal(t, day("2100-01-01"), dates[len(dates)-1])
}
