package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Domain identifies which record collection a value belongs to.
type Domain string

const (
	DomainTasks   Domain = "tasks"
	DomainFinance Domain = "finance"
	DomainMood    Domain = "mood"
	DomainNotes   Domain = "notes"
)

// ParseDomain maps user input to a Domain.
func ParseDomain(s string) (Domain, error) {
	switch Domain(strings.ToLower(strings.TrimSpace(s))) {
	case DomainTasks:
		return DomainTasks, nil
	case DomainFinance:
		return DomainFinance, nil
	case DomainMood:
		return DomainMood, nil
	case DomainNotes:
		return DomainNotes, nil
	}
	return "", fmt.Errorf("unknown domain %q (want tasks|finance|mood|notes)", s)
}

// Valid reports whether d is one of the four known domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainTasks, DomainFinance, DomainMood, DomainNotes:
		return true
	}
	return false
}

// Record is the shared shape of all four domains. Fields that do not apply to
// a domain are left at their zero value: tasks have no Amount, notes have no
// Score, and so on. Date is a calendar day ("2006-01-02") with no time-of-day
// semantics; it may be malformed in stored data and consumers must tolerate
// that without panicking.
type Record struct {
	ID        string    `json:"id"`
	Domain    Domain    `json:"domain"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	Type      string    `json:"type,omitempty"` // finance: income | expense
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status,omitempty"`   // tasks: todo | doing | done
	Priority  string    `json:"priority,omitempty"` // tasks: low | medium | high | urgent
	Tags      []string  `json:"tags,omitempty"`
	Amount    float64   `json:"amount,omitempty"` // finance
	Score     int       `json:"score,omitempty"`  // mood, 1..10
	Pinned    bool      `json:"is_pinned,omitempty"`
	Starred   bool      `json:"is_starred,omitempty"`
	Archived  bool      `json:"is_archived,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// day parses the record's calendar date in loc. ok is false for malformed dates.
func (r Record) day(loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(dayLayout, r.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// searchText returns the lowercased haystack the free-text filter matches against.
func (r Record) searchText() string {
	parts := []string{r.Title, r.Notes, r.Category, r.Type}
	if r.Amount != 0 {
		parts = append(parts, strconv.FormatFloat(r.Amount, 'f', 2, 64))
	}
	if len(r.Tags) > 0 {
		parts = append(parts, strings.Join(r.Tags, " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// HasTag reports whether the record carries the given tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// numericValue returns the record's value field for the domain, if it has one.
func (r Record) numericValue(d Domain) (float64, bool) {
	switch d {
	case DomainFinance:
		return r.Amount, true
	case DomainMood:
		return float64(r.Score), true
	}
	return 0, false
}

// RangeKind is a symbolic date-range selector resolved against "today" in the
// viewer's local calendar.
type RangeKind string

const (
	RangeAll     RangeKind = "all"
	RangeToday   RangeKind = "today"
	RangeWeek    RangeKind = "week"
	RangeMonth   RangeKind = "month"
	RangeQuarter RangeKind = "quarter"
	RangeYear    RangeKind = "year"
	RangeCustom  RangeKind = "custom"
)

// ViewMode selects which flagged records a view shows. ViewAll hides archived
// records; the archive is only reachable by asking for it.
type ViewMode string

const (
	ViewAll      ViewMode = "all"
	ViewArchived ViewMode = "archived"
	ViewStarred  ViewMode = "starred"
)

// Criteria is the combined set of active filter selections for one view.
// Empty strings, nil sets and RangeAll mean "no constraint" for that dimension.
type Criteria struct {
	Search      string
	Type        string
	Category    string
	Status      string
	Priority    string
	StatusSet   map[string]bool
	PrioritySet map[string]bool
	Tag         string
	Range       RangeKind
	CustomStart string
	CustomEnd   string
	View        ViewMode
}
