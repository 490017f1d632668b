package query

import (
	"strings"
	"testing"
	"time"
)

func TestSummarizeBalance(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Type: "income", Amount: 100, Date: "2024-05-01"},
		{ID: "2", Type: "expense", Amount: 40, Date: "2024-05-02"},
		{ID: "3", Type: "expense", Amount: 10, Date: "2024-05-03"},
	}
	agg := Summarize(records, DomainFinance, now, time.Local)
	if agg.Balance != 50.00 {
		t.Fatalf("balance = %v, want 50.00", agg.Balance)
	}
	if agg.SumByType["income"] != 100 || agg.SumByType["expense"] != 50 {
		t.Fatalf("sums by type = %v, want income 100, expense 50", agg.SumByType)
	}
	if agg.TotalCount != 3 {
		t.Fatalf("total = %d, want 3", agg.TotalCount)
	}
}

func TestSummarizeSumByCategoryRounded(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Type: "expense", Category: "food", Amount: 10.10, Date: "2024-05-01"},
		{ID: "2", Type: "expense", Category: "food", Amount: 20.25, Date: "2024-05-02"},
		{ID: "3", Type: "expense", Category: "transit", Amount: 2.50, Date: "2024-05-02"},
	}
	agg := Summarize(records, DomainFinance, now, time.Local)
	if got := agg.SumByCategory["food"]; got != 30.35 {
		t.Fatalf("food sum = %v, want 30.35", got)
	}
	if got := agg.SumByCategory["transit"]; got != 2.50 {
		t.Fatalf("transit sum = %v, want 2.50", got)
	}
}

func TestSummarizeStreaks(t *testing.T) {
	now := time.Date(2024, time.May, 7, 18, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 6, Date: "2024-05-01"},
		{ID: "2", Score: 7, Date: "2024-05-02"},
		{ID: "3", Score: 5, Date: "2024-05-03"},
		{ID: "4", Score: 8, Date: "2024-05-04"},
		{ID: "5", Score: 6, Date: "2024-05-05"},
		{ID: "6", Score: 9, Date: "2024-05-07"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	if agg.StreakBest != 5 {
		t.Fatalf("best streak = %d, want 5", agg.StreakBest)
	}
	if agg.StreakCurrent != 1 {
		t.Fatalf("current streak = %d, want 1", agg.StreakCurrent)
	}
}

func TestSummarizeStreakBrokenToday(t *testing.T) {
	now := time.Date(2024, time.May, 8, 9, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 6, Date: "2024-05-06"},
		{ID: "2", Score: 7, Date: "2024-05-07"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	// Nothing logged today, so the current streak is over.
	if agg.StreakCurrent != 0 {
		t.Fatalf("current streak = %d, want 0", agg.StreakCurrent)
	}
	if agg.StreakBest != 2 {
		t.Fatalf("best streak = %d, want 2", agg.StreakBest)
	}
}

func TestSummarizeDuplicateDaysCountOnce(t *testing.T) {
	now := time.Date(2024, time.May, 3, 9, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 6, Date: "2024-05-01"},
		{ID: "2", Score: 7, Date: "2024-05-01"},
		{ID: "3", Score: 5, Date: "2024-05-02"},
		{ID: "4", Score: 5, Date: "2024-05-03"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	if agg.StreakBest != 3 {
		t.Fatalf("best streak = %d, want 3", agg.StreakBest)
	}
	if agg.StreakCurrent != 3 {
		t.Fatalf("current streak = %d, want 3", agg.StreakCurrent)
	}
}

func TestSummarizeDistributionIgnoresOutOfRange(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 3, Date: "2024-05-01"},
		{ID: "2", Score: 11, Date: "2024-05-02"},
		{ID: "3", Score: 0, Date: "2024-05-03"},
		{ID: "4", Score: 10, Date: "2024-05-04"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	if len(agg.Distribution) != 10 {
		t.Fatalf("distribution length = %d, want 10", len(agg.Distribution))
	}
	if agg.Distribution[2] != 1 || agg.Distribution[9] != 1 {
		t.Fatalf("distribution = %v, want one count at index 2 and 9", agg.Distribution)
	}
	total := 0
	for _, n := range agg.Distribution {
		total += n
	}
	if total != 2 {
		t.Fatalf("distribution counted %d records, want 2 (out-of-range excluded)", total)
	}
	if len(agg.Warnings) != 2 {
		t.Fatalf("warnings = %v, want two out-of-range diagnostics", agg.Warnings)
	}
}

func TestSummarizeBestWorstFirstOccurrenceWins(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Type: "expense", Amount: 40, Date: "2024-05-01"},
		{ID: "2", Type: "expense", Amount: 90, Date: "2024-05-02"},
		{ID: "3", Type: "expense", Amount: 90, Date: "2024-05-03"},
		{ID: "4", Type: "expense", Amount: 40, Date: "2024-05-04"},
	}
	agg := Summarize(records, DomainFinance, now, time.Local)
	if agg.Best == nil || agg.Best.ID != "2" {
		t.Fatalf("best = %+v, want record 2", agg.Best)
	}
	if agg.Worst == nil || agg.Worst.ID != "1" {
		t.Fatalf("worst = %+v, want record 1", agg.Worst)
	}
}

func TestSummarizeTrendAgainstPriorWeek(t *testing.T) {
	now := time.Date(2024, time.May, 14, 12, 0, 0, 0, time.Local)
	records := []Record{
		// Trailing 7 days (May 8-14): scores average 8.
		{ID: "1", Score: 8, Date: "2024-05-13"},
		{ID: "2", Score: 8, Date: "2024-05-14"},
		// Prior window (May 1-7): scores average 5.
		{ID: "3", Score: 4, Date: "2024-05-02"},
		{ID: "4", Score: 6, Date: "2024-05-05"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	if agg.TrendDelta != 3.0 {
		t.Fatalf("trend = %v, want 3.0", agg.TrendDelta)
	}
}

func TestSummarizeTrendEmptyPriorWindow(t *testing.T) {
	now := time.Date(2024, time.May, 14, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 7, Date: "2024-05-13"},
		{ID: "2", Score: 8, Date: "2024-05-14"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	// No prior-week data: the prior mean is treated as zero, so the trend is
	// just the recent mean. Inherited approximation, asserted so it stays put.
	if agg.TrendDelta != 7.5 {
		t.Fatalf("trend = %v, want 7.5", agg.TrendDelta)
	}
}

func TestSummarizeMalformedDateWarns(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Score: 6, Date: "2024-05-01"},
		{ID: "2", Score: 7, Date: "yesterday-ish"},
	}
	agg := Summarize(records, DomainMood, now, time.Local)
	if agg.StreakBest != 1 {
		t.Fatalf("best streak = %d, want 1", agg.StreakBest)
	}
	found := false
	for _, w := range agg.Warnings {
		if strings.Contains(w, "unparsable date") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want an unparsable-date diagnostic", agg.Warnings)
	}
}

func TestSummarizeTasksCountsOnly(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	records := []Record{
		{ID: "1", Status: "done", Date: "2024-05-09"},
		{ID: "2", Status: "todo", Date: "2024-05-10"},
	}
	agg := Summarize(records, DomainTasks, now, time.Local)
	if agg.TotalCount != 2 {
		t.Fatalf("total = %d, want 2", agg.TotalCount)
	}
	if agg.Best != nil || agg.Worst != nil {
		t.Fatal("tasks have no numeric value; best/worst should be nil")
	}
	if agg.Balance != 0 {
		t.Fatalf("balance = %v, want 0", agg.Balance)
	}
}

func TestSummarizeUnknownDomainPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Summarize with unknown domain should panic")
		}
	}()
	Summarize(nil, Domain("habits"), time.Now(), time.Local)
}
