package query

import (
	"reflect"
	"testing"
)

func pageRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{ID: string(rune('a' + i))}
	}
	return out
}

func TestPaginateSlices(t *testing.T) {
	records := pageRecords(5)

	out, p := Paginate(records, 1, 2)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("page 1 ids = %v, want [a b]", got)
	}
	if p.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", p.TotalPages)
	}

	out, _ = Paginate(records, 3, 2)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"e"}) {
		t.Fatalf("page 3 ids = %v, want [e]", got)
	}
}

func TestPaginateClampsPage(t *testing.T) {
	records := pageRecords(4)

	out, p := Paginate(records, 99, 2)
	if p.Current != 2 {
		t.Fatalf("current = %d, want clamped to 2", p.Current)
	}
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("ids = %v, want last page [c d]", got)
	}

	_, p = Paginate(records, -3, 2)
	if p.Current != 1 {
		t.Fatalf("current = %d, want clamped to 1", p.Current)
	}
}

func TestPaginateEmpty(t *testing.T) {
	out, p := Paginate(nil, 1, 10)
	if len(out) != 0 {
		t.Fatalf("got %d records, want 0", len(out))
	}
	if p.Summary() != "No results" {
		t.Fatalf("summary = %q, want %q", p.Summary(), "No results")
	}
}

func TestPaginationNavigation(t *testing.T) {
	p := NewPagination(10, 3, 2)
	if !p.HasPrev() || !p.HasNext() {
		t.Fatal("middle page should have prev and next")
	}
	start, end := p.Range()
	if start != 4 || end != 6 {
		t.Fatalf("range = %d-%d, want 4-6", start, end)
	}
	if got := p.Summary(); got != "Showing 4-6 of 10 results (page 2 of 4)" {
		t.Fatalf("summary = %q", got)
	}
}
