package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseFlexibleDate turns CLI date input into a concrete day. It accepts a
// handful of natural-language forms alongside common date layouts, always
// anchored in loc.
func ParseFlexibleDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now().In(loc)

	switch input {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc), nil
	case "tomorrow":
		tm := now.AddDate(0, 0, 1)
		return time.Date(tm.Year(), tm.Month(), tm.Day(), 0, 0, 0, 0, loc), nil
	}

	if strings.HasPrefix(input, "last ") {
		switch strings.TrimPrefix(input, "last ") {
		case "week":
			return now.AddDate(0, 0, -7), nil
		case "month":
			return now.AddDate(0, -1, 0), nil
		case "year":
			return now.AddDate(-1, 0, 0), nil
		}
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02/01/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// DayString formats t as the canonical calendar-day string records carry.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}
