package insight

import (
	"fmt"
	"math"
	"time"
)

// Trend classifies the first-half vs second-half score movement of a window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendThreshold is the fixed delta (in 0-100 score points) separating a stable
// window from a moving one. Not configurable; tests pin the exact boundary.
const trendThreshold = 5

// DayPoint is one day of a window. Raw and Score are nil when the day has no
// entry; the label is attached regardless so charts can render empty days.
type DayPoint struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Raw   *int   `json:"raw"`
	Score *int   `json:"score"`
}

// WindowSummary carries the window-level aggregates. Average is nil when zero
// days have an entry.
type WindowSummary struct {
	DaysWithEntry int   `json:"days_with_entry"`
	Average       *int  `json:"average"`
	Delta         int   `json:"delta"`
	Trend         Trend `json:"trend"`
}

// WindowReport is the full aggregation result for one window.
type WindowReport struct {
	Days    []DayPoint    `json:"days"`
	Summary WindowSummary `json:"summary"`
}

// Aggregate builds the per-day point list and summary for records inside the
// window. When several records share a date the first seen wins as the
// representative value for that day; listings still show all of them, so nothing
// is lost. Total over empty input: no entries yields a nil average, zero delta
// and a stable trend.
func Aggregate(records []Record, w Window) WindowReport {
	byDay := make(map[string]Record)
	for _, r := range records {
		key := DateKey(r.Date)
		if _, seen := byDay[key]; !seen {
			byDay[key] = r
		}
	}

	days := w.Days()
	points := make([]DayPoint, 0, len(days))
	scores := make([]int, 0, len(days))
	present := make([]bool, len(days))

	for i, d := range days {
		key := DateKey(d)
		point := DayPoint{
			Date:  key,
			Label: fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
		}
		if r, ok := byDay[key]; ok {
			raw := ClampRating(r.Primary)
			score := ScoreFromRating(raw)
			point.Raw = &raw
			point.Score = &score
			scores = append(scores, score)
			present[i] = true
		}
		points = append(points, point)
	}

	summary := WindowSummary{
		DaysWithEntry: len(scores),
		Trend:         TrendStable,
	}
	if len(scores) > 0 {
		avg := int(math.RoundToEven(mean(scores)))
		summary.Average = &avg
	}
	summary.Delta = halfDelta(points)
	switch {
	case summary.Delta > trendThreshold:
		summary.Trend = TrendImproving
	case summary.Delta < -trendThreshold:
		summary.Trend = TrendDeclining
	}

	return WindowReport{Days: points, Summary: summary}
}

// halfDelta splits the ordered day list at floor(len/2), averages each half over
// only its own non-nil scores and returns round(second - first). Zero unless
// both halves have at least one entry.
func halfDelta(points []DayPoint) int {
	mid := len(points) / 2
	first := halfScores(points[:mid])
	second := halfScores(points[mid:])
	if len(first) == 0 || len(second) == 0 {
		return 0
	}
	return int(math.RoundToEven(mean(second) - mean(first)))
}

func halfScores(points []DayPoint) []int {
	var scores []int
	for _, p := range points {
		if p.Score != nil {
			scores = append(scores, *p.Score)
		}
	}
	return scores
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Streak counts consecutive days with an entry, walking backward from today over
// the full unrestricted record set. The first missing day stops the count; there
// is no grace period.
func Streak(records []Record, now time.Time) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[DateKey(r.Date)] = struct{}{}
	}

	streak := 0
	for d := now; ; d = AddDays(d, -1) {
		if _, ok := seen[DateKey(d)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// Extremes returns the records holding the strict minimum and maximum primary
// rating across the entire set, ties broken by first encounter. Both are nil for
// an empty set.
func Extremes(records []Record) (best, worst *Record) {
	for i := range records {
		r := records[i]
		if best == nil || ClampRating(r.Primary) > ClampRating(best.Primary) {
			best = &records[i]
		}
		if worst == nil || ClampRating(r.Primary) < ClampRating(worst.Primary) {
			worst = &records[i]
		}
	}
	return best, worst
}
