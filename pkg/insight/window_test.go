package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-01-05", DateKey(day(2024, time.January, 5)))
	assert.Equal(t, "2024-12-31", DateKey(day(2024, time.December, 31)))

	// Zero padding keeps keys lexicographically sortable.
	assert.True(t, DateKey(day(2024, time.September, 30)) < DateKey(day(2024, time.October, 1)))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-03-01", DateKey(AddDays(day(2024, time.February, 29), 1)))
	assert.Equal(t, "2023-12-31", DateKey(AddDays(day(2024, time.January, 1), -1)))
	assert.Equal(t, "2024-01-08", DateKey(AddDays(day(2024, time.January, 1), 7)))
}

func TestTrailingWindow(t *testing.T) {
	w := TrailingWindow(day(2024, time.May, 2), 7)
	assert.Equal(t, "2024-04-26", DateKey(w.Start))
	assert.Equal(t, "2024-05-02", DateKey(w.End))

	days := w.Days()
	require.Len(t, days, 7)
	assert.Equal(t, "2024-04-26", DateKey(days[0]))
	assert.Equal(t, "2024-05-02", DateKey(days[6]))
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
		wantDays  int
	}{
		{2024, time.February, "2024-02-01", "2024-02-29", 29}, // leap year
		{2023, time.February, "2023-02-01", "2023-02-28", 28},
		{2024, time.December, "2024-12-01", "2024-12-31", 31},
		{2024, time.April, "2024-04-01", "2024-04-30", 30},
	}

	for _, tt := range tests {
		w := MonthWindow(tt.year, tt.month)
		assert.Equal(t, tt.wantStart, DateKey(w.Start))
		assert.Equal(t, tt.wantEnd, DateKey(w.End))
		assert.Len(t, w.Days(), tt.wantDays)
	}
}

func TestCustomWindowSwapsReversedInput(t *testing.T) {
	a := day(2024, time.June, 10)
	b := day(2024, time.June, 1)

	w := CustomWindow(a, b)
	assert.Equal(t, "2024-06-01", DateKey(w.Start))
	assert.Equal(t, "2024-06-10", DateKey(w.End))

	// Already ordered input passes through untouched.
	w = CustomWindow(b, a)
	assert.Equal(t, "2024-06-01", DateKey(w.Start))
	assert.Equal(t, "2024-06-10", DateKey(w.End))
}

func TestWindowContains(t *testing.T) {
	w := CustomWindow(day(2024, time.June, 1), day(2024, time.June, 10))
	assert.True(t, w.Contains(day(2024, time.June, 1)))
	assert.True(t, w.Contains(day(2024, time.June, 10)))
	assert.False(t, w.Contains(day(2024, time.May, 31)))
	assert.False(t, w.Contains(day(2024, time.June, 11)))
}
