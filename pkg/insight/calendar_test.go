package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMonthGridShape(t *testing.T) {
	// May 2024 starts on a Wednesday (offset 3) and has 31 days.
	now := day(2024, time.May, 15)
	cells := ProjectMonth(2024, time.May, nil, now)

	require.Len(t, cells, 3+31)
	for i := 0; i < 3; i++ {
		assert.True(t, cells[i].IsBlank())
		assert.Empty(t, cells[i].Date)
	}
	assert.Equal(t, 1, cells[3].Day)
	assert.Equal(t, "2024-05-01", cells[3].Date)
	assert.Equal(t, 31, cells[len(cells)-1].Day)
}

func TestProjectMonthNoLeadingBlanksOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday: zero blanks, 30 cells.
	cells := ProjectMonth(2024, time.September, nil, day(2024, time.September, 1))
	require.Len(t, cells, 30)
	assert.Equal(t, 1, cells[0].Day)
}

func TestProjectMonthHeatTiers(t *testing.T) {
	records := []Record{
		rec(day(2024, time.May, 1), 9), // strong
		rec(day(2024, time.May, 2), 5), // moderate
		rec(day(2024, time.May, 3), 2), // low
	}
	cells := ProjectMonth(2024, time.May, records, day(2024, time.May, 31))

	byDay := make(map[int]Cell)
	for _, c := range cells {
		if !c.IsBlank() {
			byDay[c.Day] = c
		}
	}

	assert.Equal(t, HeatStrong, byDay[1].HeatTier)
	assert.Equal(t, HeatModerate, byDay[2].HeatTier)
	assert.Equal(t, HeatLow, byDay[3].HeatTier)
	assert.Equal(t, HeatNone, byDay[4].HeatTier)
	assert.False(t, byDay[4].HasEntry)
	assert.Nil(t, byDay[4].AverageScore)
}

func TestProjectMonthAveragesAllSameDayRecords(t *testing.T) {
	// Two records on the same day: the cell averages both, unlike the window
	// aggregate which keeps only the first.
	records := []Record{
		rec(day(2024, time.May, 1), 8), // score 78
		rec(day(2024, time.May, 1), 2), // score 11
	}
	cells := ProjectMonth(2024, time.May, records, day(2024, time.May, 31))

	cell := cells[3] // offset 3 blanks, day 1
	require.True(t, cell.HasEntry)
	require.NotNil(t, cell.AverageScore)
	assert.Equal(t, 44, *cell.AverageScore, "round-half-even((78+11)/2)")
	assert.Equal(t, HeatModerate, cell.HeatTier, "mean rating 5 sits in the moderate band")
}

func TestProjectMonthFutureFlag(t *testing.T) {
	now := day(2024, time.May, 15)
	cells := ProjectMonth(2024, time.May, nil, now)

	for _, c := range cells {
		if c.IsBlank() {
			continue
		}
		if c.Day <= 15 {
			assert.False(t, c.IsFuture, "day %d", c.Day)
		} else {
			assert.True(t, c.IsFuture, "day %d", c.Day)
		}
	}
}
