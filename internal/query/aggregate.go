package query

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// moodScaleSize is the bounded discrete scale for mood scores (1..10).
const moodScaleSize = 10

// streakScanCap bounds the backward scan for the current streak so a
// pathological day set can never loop unbounded.
const streakScanCap = 1000

// Aggregate is the derived summary of one filtered collection. It is
// recomputed from scratch on every input change and never persisted.
type Aggregate struct {
	TotalCount    int                `json:"total_count"`
	SumByType     map[string]float64 `json:"sum_by_type"`
	SumByCategory map[string]float64 `json:"sum_by_category"`
	Balance       float64            `json:"balance"`
	StreakCurrent int                `json:"streak_current"`
	StreakBest    int                `json:"streak_best"`
	Best          *Record            `json:"best,omitempty"`
	Worst         *Record            `json:"worst,omitempty"`
	Distribution  []int              `json:"distribution,omitempty"`
	TrendDelta    float64            `json:"trend"`
	Warnings      []string           `json:"warnings,omitempty"`
}

// Summarize folds a record collection into an Aggregate. It is a pure
// function of its inputs: records are read, never mutated, and the result is
// a fresh value each call.
//
// Messy data never panics; unparsable dates and out-of-range scores are
// skipped and reported through Warnings. An invalid domain is a caller bug
// and panics immediately.
func Summarize(records []Record, domain Domain, now time.Time, loc *time.Location) Aggregate {
	if !domain.Valid() {
		panic(fmt.Sprintf("query: Summarize called with unknown domain %q", domain))
	}
	if loc == nil {
		loc = time.Local
	}

	agg := Aggregate{
		TotalCount:    len(records),
		SumByType:     map[string]float64{},
		SumByCategory: map[string]float64{},
	}

	days, dateWarnings := distinctDays(records, loc)
	agg.Warnings = append(agg.Warnings, dateWarnings...)
	agg.StreakBest = bestStreak(days)
	agg.StreakCurrent = currentStreak(days, now.In(loc))

	if domain == DomainMood {
		agg.Distribution = make([]int, moodScaleSize)
		for _, r := range records {
			if r.Score < 1 || r.Score > moodScaleSize {
				agg.Warnings = append(agg.Warnings,
					fmt.Sprintf("record %s: score %d outside 1-%d, not counted", r.ID, r.Score, moodScaleSize))
				continue
			}
			agg.Distribution[r.Score-1]++
		}
	}

	if _, ok := (Record{}).numericValue(domain); !ok {
		return agg
	}

	for i := range records {
		r := records[i]
		v, _ := r.numericValue(domain)
		if r.Type != "" {
			agg.SumByType[r.Type] += v
		}
		if r.Category != "" {
			agg.SumByCategory[r.Category] += v
		}
		if agg.Best == nil {
			best, worst := records[i], records[i]
			agg.Best, agg.Worst = &best, &worst
			continue
		}
		bestV, _ := agg.Best.numericValue(domain)
		worstV, _ := agg.Worst.numericValue(domain)
		// Strict comparisons keep the first occurrence on ties.
		if v > bestV {
			rec := records[i]
			agg.Best = &rec
		}
		if v < worstV {
			rec := records[i]
			agg.Worst = &rec
		}
	}
	for k, v := range agg.SumByType {
		agg.SumByType[k] = round2(v)
	}
	for k, v := range agg.SumByCategory {
		agg.SumByCategory[k] = round2(v)
	}
	agg.Balance = round2(agg.SumByType["income"] - agg.SumByType["expense"])
	agg.TrendDelta = trendDelta(records, domain, now.In(loc), loc)
	return agg
}

// distinctDays returns the sorted set of parseable calendar days present in
// the collection, plus diagnostics for the ones that were not.
func distinctDays(records []Record, loc *time.Location) ([]time.Time, []string) {
	seen := map[string]bool{}
	var days []time.Time
	var warnings []string
	for _, r := range records {
		if seen[r.Date] {
			continue
		}
		d, ok := r.day(loc)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("record %s: unparsable date %q", r.ID, r.Date))
			seen[r.Date] = true
			continue
		}
		seen[r.Date] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, warnings
}

// bestStreak finds the longest run of exactly-consecutive calendar days.
func bestStreak(days []time.Time) int {
	best, run := 0, 0
	for i, d := range days {
		if i > 0 && d.Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// currentStreak counts consecutive days backward from today, stopping at the
// first day without a record.
func currentStreak(days []time.Time, now time.Time) int {
	have := make(map[string]bool, len(days))
	for _, d := range days {
		have[d.Format(dayLayout)] = true
	}
	streak := 0
	cursor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < streakScanCap; i++ {
		if !have[cursor.Format(dayLayout)] {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// trendDelta compares the mean value over the trailing 7 days against the
// prior 7-day window (days 8-14 back). An empty prior window contributes a
// zero mean, which inflates the delta to the recent mean alone; that
// approximation is inherited behavior and is kept as-is.
func trendDelta(records []Record, domain Domain, now time.Time, loc *time.Location) float64 {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	recent := Window{dayStart.AddDate(0, 0, -6), endOfDay(dayStart)}
	prior := Window{dayStart.AddDate(0, 0, -13), endOfDay(dayStart.AddDate(0, 0, -7))}

	mean := func(w Window) float64 {
		sum, n := 0.0, 0
		for _, r := range records {
			d, ok := r.day(loc)
			if !ok || !w.Contains(d) {
				continue
			}
			v, _ := r.numericValue(domain)
			sum += v
			n++
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}

	return round1(mean(recent) - mean(prior))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
