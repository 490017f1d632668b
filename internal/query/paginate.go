package query

import (
	"fmt"
	"math"
)

// Pagination describes one page of a result set.
type Pagination struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// Paginate slices a sorted collection into the requested page and returns the
// page contents alongside its metadata. Page numbers are clamped into range,
// so callers can pass user input straight through.
func Paginate(records []Record, page, perPage int) ([]Record, Pagination) {
	if perPage <= 0 {
		perPage = 50
	}
	p := NewPagination(len(records), perPage, page)

	end := p.Offset + p.PerPage
	if end > len(records) {
		end = len(records)
	}
	if p.Offset >= len(records) {
		return []Record{}, p
	}
	out := make([]Record, end-p.Offset)
	copy(out, records[p.Offset:end])
	return out, p
}

// NewPagination computes page metadata, clamping current into [1, TotalPages].
func NewPagination(total, perPage, current int) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	return Pagination{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// Range returns the 1-indexed positions of the first and last item on the page.
func (p Pagination) Range() (start, end int) {
	start = p.Offset + 1
	end = p.Offset + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// HasNext reports whether a later page exists.
func (p Pagination) HasNext() bool { return p.Current < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool { return p.Current > 1 }

// Summary returns a human-readable one-liner for CLI output.
func (p Pagination) Summary() string {
	if p.Total == 0 {
		return "No results"
	}
	start, end := p.Range()
	if p.TotalPages == 1 {
		return fmt.Sprintf("Showing %d-%d of %d result%s", start, end, p.Total, plural(p.Total))
	}
	return fmt.Sprintf("Showing %d-%d of %d result%s (page %d of %d)",
		start, end, p.Total, plural(p.Total), p.Current, p.TotalPages)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
