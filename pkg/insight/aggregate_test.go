package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(date time.Time, primary int) Record {
	return Record{Date: date, Primary: primary}
}

func TestAggregateTwoEntryWeek(t *testing.T) {
	// records: 2024-05-01 mood 8, 2024-05-02 mood 2; trailing-7 ending 05-02.
	records := []Record{
		rec(day(2024, time.May, 1), 8),
		rec(day(2024, time.May, 2), 2),
	}
	w := TrailingWindow(day(2024, time.May, 2), 7)

	report := Aggregate(records, w)
	require.Len(t, report.Days, 7)

	assert.Equal(t, 2, report.Summary.DaysWithEntry)
	require.NotNil(t, report.Summary.Average)
	assert.Equal(t, 44, *report.Summary.Average, "round((78+11)/2)")

	// The window is 04-26..05-02, midpoint at floor(7/2)=3: both entries land
	// in the second half, the first half is empty, so the trend stays stable.
	assert.Equal(t, 0, report.Summary.Delta)
	assert.Equal(t, TrendStable, report.Summary.Trend)
}

func TestAggregateTrendDeclining(t *testing.T) {
	// A 2-day custom window puts one entry in each half:
	// first half = 05-01 (score 78), second half = 05-02 (score 11).
	records := []Record{
		rec(day(2024, time.May, 1), 8),
		rec(day(2024, time.May, 2), 2),
	}
	w := CustomWindow(day(2024, time.May, 1), day(2024, time.May, 2))

	report := Aggregate(records, w)
	assert.Equal(t, -67, report.Summary.Delta, "round(11-78)")
	assert.Equal(t, TrendDeclining, report.Summary.Trend)
}

func TestAggregateTrendImproving(t *testing.T) {
	records := []Record{
		rec(day(2024, time.May, 1), 2),
		rec(day(2024, time.May, 2), 8),
	}
	w := CustomWindow(day(2024, time.May, 1), day(2024, time.May, 2))

	report := Aggregate(records, w)
	assert.Equal(t, 67, report.Summary.Delta)
	assert.Equal(t, TrendImproving, report.Summary.Trend)
}

func TestAggregateTrendStableWhenHalfEmpty(t *testing.T) {
	// Data only in the second half: delta must stay 0 and the trend stable.
	records := []Record{
		rec(day(2024, time.May, 2), 9),
	}
	w := CustomWindow(day(2024, time.May, 1), day(2024, time.May, 2))

	report := Aggregate(records, w)
	assert.Equal(t, 0, report.Summary.Delta)
	assert.Equal(t, TrendStable, report.Summary.Trend)
}

func TestAggregateEmptyInput(t *testing.T) {
	w := TrailingWindow(day(2024, time.May, 2), 7)

	report := Aggregate(nil, w)
	require.Len(t, report.Days, 7)
	assert.Equal(t, 0, report.Summary.DaysWithEntry)
	assert.Nil(t, report.Summary.Average)
	assert.Equal(t, 0, report.Summary.Delta)
	assert.Equal(t, TrendStable, report.Summary.Trend)

	for _, p := range report.Days {
		assert.Nil(t, p.Raw)
		assert.Nil(t, p.Score)
		assert.NotEmpty(t, p.Label)
	}
}

func TestAggregateFirstSeenWinsOnDuplicateDates(t *testing.T) {
	records := []Record{
		rec(day(2024, time.May, 1), 3),
		rec(day(2024, time.May, 1), 9), // later arrival, must not replace
	}
	w := CustomWindow(day(2024, time.May, 1), day(2024, time.May, 1))

	report := Aggregate(records, w)
	require.NotNil(t, report.Days[0].Raw)
	assert.Equal(t, 3, *report.Days[0].Raw)
}

func TestAggregateDayLabels(t *testing.T) {
	w := CustomWindow(day(2024, time.May, 1), day(2024, time.May, 2))
	report := Aggregate(nil, w)
	assert.Equal(t, "5/1", report.Days[0].Label)
	assert.Equal(t, "5/2", report.Days[1].Label)
}

func TestStreak(t *testing.T) {
	now := day(2024, time.May, 10)

	// Today plus the 3 preceding consecutive days -> 4.
	records := []Record{
		rec(day(2024, time.May, 10), 5),
		rec(day(2024, time.May, 9), 5),
		rec(day(2024, time.May, 8), 5),
		rec(day(2024, time.May, 7), 5),
	}
	assert.Equal(t, 4, Streak(records, now))

	// A gap two days back caps the streak at 1.
	gapped := []Record{
		rec(day(2024, time.May, 10), 5),
		rec(day(2024, time.May, 8), 5),
		rec(day(2024, time.May, 7), 5),
	}
	assert.Equal(t, 1, Streak(gapped, now))

	// No entry today -> 0, regardless of history.
	assert.Equal(t, 0, Streak(records, day(2024, time.May, 11)))

	assert.Equal(t, 0, Streak(nil, now))
}

func TestExtremes(t *testing.T) {
	records := []Record{
		rec(day(2024, time.May, 1), 5),
		rec(day(2024, time.May, 2), 9),
		rec(day(2024, time.May, 3), 2),
		rec(day(2024, time.May, 4), 9), // ties the max, first seen must win
		rec(day(2024, time.May, 5), 2), // ties the min
	}

	best, worst := Extremes(records)
	require.NotNil(t, best)
	require.NotNil(t, worst)
	assert.Equal(t, "2024-05-02", DateKey(best.Date))
	assert.Equal(t, "2024-05-03", DateKey(worst.Date))
}

func TestExtremesEmpty(t *testing.T) {
	best, worst := Extremes(nil)
	assert.Nil(t, best)
	assert.Nil(t, worst)
}
