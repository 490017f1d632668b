package query

import (
	"reflect"
	"sync"
	"testing"
)

func TestSortByDate(t *testing.T) {
	records := []Record{
		{ID: "1", Date: "2026-02-05"},
		{ID: "2", Date: "2026-01-10"},
		{ID: "3", Date: "2026-03-01"},
	}
	asc := Sort(records, SortByDate, Asc, false)
	if got := recIDs(asc); !reflect.DeepEqual(got, []string{"2", "1", "3"}) {
		t.Fatalf("asc ids = %v, want [2 1 3]", got)
	}
	desc := Sort(records, SortByDate, Desc, false)
	if got := recIDs(desc); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("desc ids = %v, want [3 1 2]", got)
	}
	// Input untouched.
	if got := recIDs(records); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("input reordered: %v", got)
	}
}

func TestSortStableOnTies(t *testing.T) {
	records := []Record{
		{ID: "1", Date: "2026-02-05", Amount: 10},
		{ID: "2", Date: "2026-02-05", Amount: 20},
		{ID: "3", Date: "2026-02-05", Amount: 30},
		{ID: "4", Date: "2026-02-04", Amount: 40},
	}
	out := Sort(records, SortByDate, Asc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"4", "1", "2", "3"}) {
		t.Fatalf("ids = %v, want tied records in input order [4 1 2 3]", got)
	}
	out = Sort(records, SortByDate, Desc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("desc ids = %v, want [1 2 3 4]", got)
	}
}

func TestSortUnknownKeyPreservesOrder(t *testing.T) {
	records := []Record{
		{ID: "3", Title: "c"},
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b"},
	}
	out := Sort(records, SortKey("color"), Asc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("ids = %v, want input order preserved", got)
	}
}

func TestSortPinnedFirstRegardlessOfKey(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "zebra"},
		{ID: "2", Title: "apple", Pinned: true},
		{ID: "3", Title: "mango"},
		{ID: "4", Title: "pear", Pinned: true},
	}
	for _, order := range []SortOrder{Asc, Desc} {
		for _, key := range []SortKey{SortByTitle, SortByDate, SortKey("nope")} {
			out := Sort(records, key, order, true)
			seenUnpinned := false
			for _, r := range out {
				if !r.Pinned {
					seenUnpinned = true
				} else if seenUnpinned {
					t.Fatalf("key=%s order=%s: pinned record %s after unpinned", key, order, r.ID)
				}
			}
		}
	}
}

func TestSortPinnedFirstKeepsGroupOrder(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "b"},
		{ID: "2", Title: "a", Pinned: true},
		{ID: "3", Title: "c", Pinned: true},
	}
	out := Sort(records, SortByTitle, Asc, true)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"2", "3", "1"}) {
		t.Fatalf("ids = %v, want [2 3 1]", got)
	}
}

func TestSortPriorityUsesRankTable(t *testing.T) {
	records := []Record{
		{ID: "1", Priority: "high"},
		{ID: "2", Priority: "urgent"},
		{ID: "3", Priority: "low"},
		{ID: "4", Priority: "medium"},
	}
	out := Sort(records, SortByPriority, Desc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"2", "1", "4", "3"}) {
		t.Fatalf("ids = %v, want urgent-high-medium-low [2 1 4 3]", got)
	}
}

func TestSortTitleIgnoresCase(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}
	out := Sort(records, SortByTitle, Asc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"2", "1", "3"}) {
		t.Fatalf("ids = %v, want [2 1 3] (case-insensitive order)", got)
	}
}

func TestSortByAmountAndScore(t *testing.T) {
	records := []Record{
		{ID: "1", Amount: -12.40, Score: 7},
		{ID: "2", Amount: 100, Score: 3},
		{ID: "3", Amount: 0.99, Score: 10},
	}
	out := Sort(records, SortByAmount, Asc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"1", "3", "2"}) {
		t.Fatalf("amount ids = %v, want [1 3 2]", got)
	}
	out = Sort(records, SortByScore, Desc, false)
	if got := recIDs(out); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("score ids = %v, want [3 1 2]", got)
	}
}

func TestSortTitleConcurrent(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
		{ID: "4", Title: "date"},
	}
	want := []string{"2", "1", "3", "4"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				out := Sort(records, SortByTitle, Asc, false)
				if got := recIDs(out); !reflect.DeepEqual(got, want) {
					t.Errorf("ids = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
