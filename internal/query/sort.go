package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names the field a view orders by.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByScore    SortKey = "score"
	SortByTitle    SortKey = "title"
	SortByCategory SortKey = "category"
	SortByType     SortKey = "type"
	SortByPriority SortKey = "priority"
	SortByCreated  SortKey = "created"
	SortByUpdated  SortKey = "updated"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// priorityRank orders the priority enum; alphabetic comparison would put
// "high" above "urgent".
var priorityRank = map[string]int{
	"urgent": 4,
	"high":   3,
	"medium": 2,
	"low":    1,
}

// Sort returns a new slice ordered by key and direction. The sort is stable:
// records with equal key values keep their input order, which pagination
// relies on across re-renders. An unknown key is a no-op comparator and
// preserves input order entirely.
//
// When pinnedFirst is set, a final stable partition moves pinned records
// ahead of everything else regardless of key and direction. Sort is safe for
// concurrent use; the collator backing the text keys carries an internal
// buffer, so each call gets its own.
func Sort(records []Record, key SortKey, order SortOrder, pinnedFirst bool) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	if cmp := comparatorFor(key); cmp != nil {
		sort.SliceStable(out, func(i, j int) bool {
			c := cmp(out[i], out[j])
			if order == Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if pinnedFirst {
		out = pinnedAhead(out)
	}
	return out
}

// comparatorFor returns a three-way comparison for the key, or nil for keys
// that name no known field. Text keys get a collator of their own so that
// comparisons stay locale-aware without sharing its scratch buffer across
// goroutines.
func comparatorFor(key SortKey) func(a, b Record) int {
	newCollator := func() *collate.Collator {
		return collate.New(language.English, collate.IgnoreCase)
	}
	switch key {
	case SortByDate:
		return func(a, b Record) int {
			return compareTime(parseDay(a.Date), parseDay(b.Date))
		}
	case SortByCreated:
		return func(a, b Record) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case SortByUpdated:
		return func(a, b Record) int { return compareTime(a.UpdatedAt, b.UpdatedAt) }
	case SortByAmount:
		return func(a, b Record) int { return compareFloat(a.Amount, b.Amount) }
	case SortByScore:
		return func(a, b Record) int { return compareInt(a.Score, b.Score) }
	case SortByTitle:
		c := newCollator()
		return func(a, b Record) int { return c.CompareString(a.Title, b.Title) }
	case SortByCategory:
		c := newCollator()
		return func(a, b Record) int { return c.CompareString(a.Category, b.Category) }
	case SortByType:
		c := newCollator()
		return func(a, b Record) int { return c.CompareString(a.Type, b.Type) }
	case SortByPriority:
		return func(a, b Record) int { return compareInt(priorityRank[a.Priority], priorityRank[b.Priority]) }
	}
	return nil
}

// pinnedAhead partitions pinned records before unpinned ones, keeping the
// relative order inside each group.
func pinnedAhead(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Pinned {
			out = append(out, r)
		}
	}
	for _, r := range records {
		if !r.Pinned {
			out = append(out, r)
		}
	}
	return out
}

// parseDay tolerates malformed dates: they compare as the zero time, which
// groups them deterministically at one end instead of failing the sort.
func parseDay(s string) time.Time {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
