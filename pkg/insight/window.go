package insight

import "time"

// DateKey formats t as zero-padded local YYYY-MM-DD. The format is load-bearing:
// keys sort lexicographically in calendar order, so the calendar projector compares
// them as plain strings instead of re-parsing dates.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AddDays offsets t by n calendar days, crossing month/year boundaries.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Window is an inclusive date range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// TrailingWindow returns the inclusive range ending at anchor and spanning days
// calendar days (7 days = anchor plus the 6 preceding).
func TrailingWindow(anchor time.Time, days int) Window {
	if days < 1 {
		days = 1
	}
	return Window{
		Start: AddDays(anchor, -(days - 1)),
		End:   anchor,
	}
}

// MonthWindow returns the first and last calendar day of the given month.
func MonthWindow(year int, month time.Month) Window {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return Window{
		Start: first,
		End:   AddDays(first.AddDate(0, 1, 0), -1),
	}
}

// CustomWindow builds a window from two arbitrary dates, reordering when the caller
// passes them reversed. It never errors.
func CustomWindow(a, b time.Time) Window {
	if b.Before(a) {
		a, b = b, a
	}
	return Window{Start: a, End: b}
}

// Days lists every day of the window in chronological order.
func (w Window) Days() []time.Time {
	var days []time.Time
	endKey := DateKey(w.End)
	for d := w.Start; DateKey(d) <= endKey; d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether t falls inside the window, compared at day granularity.
func (w Window) Contains(t time.Time) bool {
	key := DateKey(t)
	return key >= DateKey(w.Start) && key <= DateKey(w.End)
}
