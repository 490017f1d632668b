package query

import (
	"fmt"
	"strings"
	"time"
)

// Filter returns the subset of records matching every active criterion, in
// input order, without mutating its argument. The second return value carries
// diagnostics for records that were dropped from a date-windowed view because
// their stored date would not parse; the filter itself never fails.
//
// The window comes pre-resolved from ResolveWindow. windowOK == false means
// the date dimension is unconstrained and record dates are not even parsed.
func Filter(records []Record, c Criteria, w Window, windowOK bool) ([]Record, []string) {
	out := make([]Record, 0, len(records))
	var warnings []string

	search := strings.ToLower(strings.TrimSpace(c.Search))
	loc := time.Local
	if windowOK {
		loc = w.Start.Location()
	}

	for _, r := range records {
		if !matchesView(r, c.View) {
			continue
		}
		if search != "" && !strings.Contains(r.searchText(), search) {
			continue
		}
		if c.Type != "" && r.Type != c.Type {
			continue
		}
		if c.Category != "" && r.Category != c.Category {
			continue
		}
		if c.Status != "" && r.Status != c.Status {
			continue
		}
		if c.Priority != "" && r.Priority != c.Priority {
			continue
		}
		if len(c.StatusSet) > 0 && !c.StatusSet[r.Status] {
			continue
		}
		if len(c.PrioritySet) > 0 && !c.PrioritySet[r.Priority] {
			continue
		}
		if c.Tag != "" && !r.HasTag(c.Tag) {
			continue
		}
		if windowOK {
			day, ok := r.day(loc)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("record %s: unparsable date %q", r.ID, r.Date))
				continue
			}
			if !w.Contains(day) {
				continue
			}
		}
		out = append(out, r)
	}
	return out, warnings
}

// matchesView applies the flag dimension. ViewAll deliberately implies
// Archived == false: archived records stay hidden unless the archive view is
// requested explicitly.
func matchesView(r Record, v ViewMode) bool {
	switch v {
	case ViewArchived:
		return r.Archived
	case ViewStarred:
		return r.Starred && !r.Archived
	default:
		return !r.Archived
	}
}
