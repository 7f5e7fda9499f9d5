package insight

import (
	"math"
	"time"
)

// HeatTier is the coarse color bucket of a calendar cell, derived from the
// day's average primary rating.
type HeatTier string

const (
	HeatStrong   HeatTier = "strong"
	HeatModerate HeatTier = "moderate"
	HeatLow      HeatTier = "low"
	HeatNone     HeatTier = "none"
)

// Cell is one slot of a calendar grid. Leading blanks carry no date and Day 0.
type Cell struct {
	Date         string   `json:"date"`
	Day          int      `json:"day"`
	HasEntry     bool     `json:"has_entry"`
	AverageScore *int     `json:"average_score"`
	HeatTier     HeatTier `json:"heat_tier"`
	IsFuture     bool     `json:"is_future"`
}

// IsBlank reports whether the cell is a leading filler slot.
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// ProjectMonth renders the month as a flat grid: one blank cell per weekday slot
// before day 1 (Sunday = 0), then one dated cell per calendar day. Unlike the
// window aggregate, a day's average here spans ALL records sharing the date.
// Future cells are flagged by comparing date keys lexicographically, which the
// zero-padded key format makes safe.
func ProjectMonth(year int, month time.Month, records []Record, now time.Time) []Cell {
	w := MonthWindow(year, month)
	todayKey := DateKey(now)

	ratingsByDay := make(map[string][]int)
	scoresByDay := make(map[string][]int)
	for _, r := range records {
		key := DateKey(r.Date)
		rating := ClampRating(r.Primary)
		ratingsByDay[key] = append(ratingsByDay[key], rating)
		scoresByDay[key] = append(scoresByDay[key], ScoreFromRating(rating))
	}

	leading := int(w.Start.Weekday())
	cells := make([]Cell, 0, leading+31)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{HeatTier: HeatNone})
	}

	for _, d := range w.Days() {
		key := DateKey(d)
		cell := Cell{
			Date:     key,
			Day:      d.Day(),
			HeatTier: HeatNone,
			IsFuture: key > todayKey,
		}
		if ratings := ratingsByDay[key]; len(ratings) > 0 {
			score := int(math.RoundToEven(mean(scoresByDay[key])))
			cell.HasEntry = true
			cell.AverageScore = &score
			cell.HeatTier = heatTier(mean(ratings))
		}
		cells = append(cells, cell)
	}

	return cells
}

// heatTier buckets a day's average rating: >=7 strong, [4,7) moderate, <4 low.
func heatTier(avgRating float64) HeatTier {
	switch {
	case avgRating >= 7:
		return HeatStrong
	case avgRating >= 4:
		return HeatModerate
	default:
		return HeatLow
	}
}
