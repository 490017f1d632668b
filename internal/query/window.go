package query

import (
	"time"
)

const dayLayout = "2006-01-02"

// Window is a concrete [Start, End] range in the viewer's local calendar.
// Both bounds are inclusive; End sits at the last instant of its day.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow converts a symbolic range selector plus a reference instant
// into concrete day bounds. All arithmetic happens in loc so that month and
// year boundaries land on the viewer's calendar, not UTC.
//
// ok is false when the window is unset (RangeAll, or RangeCustom with a
// missing or invalid bound); callers must then skip date filtering entirely.
func ResolveWindow(kind RangeKind, now time.Time, loc *time.Location, customStart, customEnd string) (w Window, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := endOfDay(dayStart)

	switch kind {
	case RangeToday:
		return Window{dayStart, dayEnd}, true
	case RangeWeek:
		// Trailing 7 days ending today, not an ISO calendar week.
		return Window{dayStart.AddDate(0, 0, -6), dayEnd}, true
	case RangeMonth:
		// 1st of the current month through today: 1-31 days, never a fixed 30.
		return Window{time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), dayEnd}, true
	case RangeQuarter:
		// Trailing 3 calendar months; AddDate handles the year rollover, so a
		// quarter resolved in February starts in November of the prior year.
		return Window{dayStart.AddDate(0, -3, 0), dayEnd}, true
	case RangeYear:
		return Window{time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc), dayEnd}, true
	case RangeCustom:
		if customStart == "" || customEnd == "" {
			return Window{}, false
		}
		start, err := time.ParseInLocation(dayLayout, customStart, loc)
		if err != nil {
			return Window{}, false
		}
		end, err := time.ParseInLocation(dayLayout, customEnd, loc)
		if err != nil {
			return Window{}, false
		}
		if end.Before(start) {
			return Window{}, false
		}
		return Window{start, endOfDay(end)}, true
	default:
		// RangeAll and anything unrecognised.
		return Window{}, false
	}
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
