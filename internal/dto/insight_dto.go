package dto

import (
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"
)

// WindowReportResponse wraps an engine report with the window bounds and the
// owner's current streak.
type WindowReportResponse struct {
	Start   string                `json:"start"`
	End     string                `json:"end"`
	Days    []insight.DayPoint    `json:"days"`
	Summary insight.WindowSummary `json:"summary"`
	Streak  int                   `json:"streak"`
}

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []insight.Cell `json:"cells"`
}

// ExtremeDayResponse is one end of the best/worst pair. Found is false when the
// record set is empty; the other fields are then zero values.
type ExtremeDayResponse struct {
	Found bool   `json:"found"`
	Date  string `json:"date"`
	Raw   int    `json:"raw"`
	Score int    `json:"score"`
}

type ExtremesResponse struct {
	Best  ExtremeDayResponse `json:"best"`
	Worst ExtremeDayResponse `json:"worst"`
}

// PublishEntrySavedMessage is the payload published on the internal bus after a
// diary entry is created or updated. The consumer warms the owner's weekly
// insight snapshot.
type PublishEntrySavedMessage struct {
	UserId string `json:"user_id"`
}
