package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"lifehub/internal/query"
)

var (
	summaryRange string
	summaryFrom  string
	summaryTo    string
	summaryJSON  bool
)

// summaryCmd prints the aggregate view of one domain: totals, per-type and
// per-category sums, streaks, trend, and the mood distribution.
var summaryCmd = &cobra.Command{
	Use:   "summary <domain>",
	Short: "Aggregate view of a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := query.ParseDomain(args[0])
		if err != nil {
			return err
		}

		st, cfg, err := openFromConfig()
		if err != nil {
			return err
		}
		defer st.Close()
		loc := cfg.Location()
		now := time.Now().In(loc)

		crit := query.Criteria{Range: query.RangeKind(summaryRange)}
		if crit.Range == "" {
			crit.Range = query.RangeAll
		}
		if summaryFrom != "" || summaryTo != "" {
			crit.Range = query.RangeCustom
			if crit.CustomStart, err = flexDay(summaryFrom, loc); err != nil {
				return fmt.Errorf("invalid --from %q: %w", summaryFrom, err)
			}
			if crit.CustomEnd, err = flexDay(summaryTo, loc); err != nil {
				return fmt.Errorf("invalid --to %q: %w", summaryTo, err)
			}
		}

		records, err := st.List(domain)
		if err != nil {
			return err
		}
		win, winOK := query.ResolveWindow(crit.Range, now, loc, crit.CustomStart, crit.CustomEnd)
		filtered, warnings := query.Filter(records, crit, win, winOK)

		agg := query.Summarize(filtered, domain, now, loc)
		agg.Warnings = append(agg.Warnings, warnings...)

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(agg)
		}

		printSummary(domain, agg)
		return nil
	},
}

func printSummary(domain query.Domain, agg query.Aggregate) {
	fmt.Printf("%s summary\n", domain)
	fmt.Printf("  %-14s %d\n", "entries", agg.TotalCount)
	fmt.Printf("  %-14s current %d, best %d\n", "streak", agg.StreakCurrent, agg.StreakBest)

	if domain == query.DomainFinance {
		fmt.Printf("  %-14s %.2f\n", "balance", agg.Balance)
	}
	for _, kv := range []struct {
		label string
		sums  map[string]float64
	}{
		{"by type", agg.SumByType},
		{"by category", agg.SumByCategory},
	} {
		if len(kv.sums) == 0 {
			continue
		}
		fmt.Printf("  %s:\n", kv.label)
		keys := make([]string, 0, len(kv.sums))
		for k := range kv.sums {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("    %-12s %10.2f\n", k, kv.sums[k])
		}
	}

	if agg.Best != nil {
		fmt.Printf("  %-14s %s (%s)\n", "best", recordLabel(*agg.Best), agg.Best.Date)
	}
	if agg.Worst != nil {
		fmt.Printf("  %-14s %s (%s)\n", "worst", recordLabel(*agg.Worst), agg.Worst.Date)
	}
	if len(agg.Distribution) > 0 {
		fmt.Print("  distribution  ")
		for i, n := range agg.Distribution {
			fmt.Printf("%d:%d ", i+1, n)
		}
		fmt.Println()
	}
	fmt.Printf("  %-14s %+.1f vs prior week\n", "trend", agg.TrendDelta)

	for _, w := range agg.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func recordLabel(rec query.Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	return rec.ID
}

func init() {
	summaryCmd.Flags().StringVar(&summaryRange, "range", "", "Date range: all, today, week, month, quarter, year")
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Custom range start (inclusive)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "Custom range end (inclusive)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Emit the aggregate as JSON")
}
