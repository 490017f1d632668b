package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lifehub/internal/config"
	"lifehub/internal/query"
	"lifehub/internal/store"
	"lifehub/internal/utils"
)

var domainShorts = map[query.Domain]string{
	query.DomainTasks:   "Track tasks and to-dos",
	query.DomainFinance: "Track income and expenses",
	query.DomainMood:    "Track daily mood scores",
	query.DomainNotes:   "Keep quick notes",
}

// newDomainCmd builds the `lifehub task|finance|mood|note` command group.
// All four share the same list machinery; add differs per domain.
func newDomainCmd(use string, domain query.Domain) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: domainShorts[domain],
	}
	cmd.AddCommand(
		newAddCmd(domain),
		newListCmd(domain),
		newDeleteCmd(domain),
		newArchiveCmd(domain),
	)
	if domain == query.DomainTasks {
		cmd.AddCommand(newDoneCmd())
	}
	return cmd
}

func openFromConfig() (*store.Store, config.Config, error) {
	cfg, _ := config.Load()
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}

func newAddCmd(domain query.Domain) *cobra.Command {
	var (
		date     string
		notes    string
		category string
		tags     string
		status   string
		priority string
		recType  string
		amount   float64
		score    int
		pin      bool
		star     bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openFromConfig()
			if err != nil {
				return err
			}
			defer st.Close()
			loc := cfg.Location()

			day := time.Now().In(loc)
			if date != "" {
				day, err = utils.ParseFlexibleDate(date, loc)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			rec := query.Record{
				Domain:   domain,
				Date:     utils.DayString(day),
				Title:    strings.Join(args, " "),
				Notes:    notes,
				Category: category,
				Status:   status,
				Priority: priority,
				Type:     recType,
				Amount:   amount,
				Score:    score,
				Pinned:   pin,
				Starred:  star,
			}
			if tags != "" {
				rec.Tags = splitCSV(tags)
			}

			saved, err := st.Insert(rec)
			if err != nil {
				return err
			}

			// A category close to an existing one is usually a typo.
			if category != "" {
				if known, kerr := st.Categories(domain); kerr == nil {
					if match, ok := utils.ClosestMatch(category, known); ok {
						fmt.Printf("Note: category %q is close to existing %q.\n", category, match)
					}
				}
			}
			fmt.Printf("Saved %s entry %s.\n", domain, saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (today, yesterday, 2026-02-01, ...)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma separated tags")

	switch domain {
	case query.DomainTasks:
		cmd.Flags().StringVar(&status, "status", "todo", "Status: todo|doing|done")
		cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: low|medium|high|urgent")
		cmd.Flags().BoolVar(&pin, "pin", false, "Pin the task to the top of lists")
	case query.DomainFinance:
		cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount")
		cmd.Flags().StringVar(&recType, "type", "expense", "Type: income|expense")
	case query.DomainMood:
		cmd.Flags().IntVarP(&score, "score", "s", 0, "Mood score 1-10")
	case query.DomainNotes:
		cmd.Flags().BoolVar(&pin, "pin", false, "Pin the note to the top of lists")
		cmd.Flags().BoolVar(&star, "star", false, "Star the note")
	}
	return cmd
}

func newListCmd(domain query.Domain) *cobra.Command {
	var (
		search     string
		rangeFlag  string
		from       string
		to         string
		category   string
		status     string
		priority   string
		tag        string
		view       string
		sortKey    string
		order      string
		page       int
		limit      int
		format     string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Long: fmt.Sprintf(`Examples:
	lifehub %[1]s list                          # active entries, newest first
	lifehub %[1]s list --range week             # trailing 7 days
	lifehub %[1]s list --from 2026-01-01 --to 2026-01-31
	lifehub %[1]s list --search coffee --page 2
	lifehub %[1]s list --view archived --format json`, domain),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openFromConfig()
			if err != nil {
				return err
			}
			defer st.Close()
			loc := cfg.Location()
			now := time.Now().In(loc)

			crit := query.Criteria{
				Search:   search,
				Category: category,
				Tag:      tag,
				Range:    query.RangeKind(rangeFlag),
				View:     query.ViewMode(view),
			}
			if crit.Range == "" {
				crit.Range = query.RangeAll
			}
			if status != "" {
				crit.StatusSet = csvSet(status)
			}
			if priority != "" {
				crit.PrioritySet = csvSet(priority)
			}
			if from != "" || to != "" {
				crit.Range = query.RangeCustom
				if crit.CustomStart, err = flexDay(from, loc); err != nil {
					return fmt.Errorf("invalid --from %q: %w", from, err)
				}
				if crit.CustomEnd, err = flexDay(to, loc); err != nil {
					return fmt.Errorf("invalid --to %q: %w", to, err)
				}
			}

			records, err := st.List(domain)
			if err != nil {
				return err
			}

			win, winOK := query.ResolveWindow(crit.Range, now, loc, crit.CustomStart, crit.CustomEnd)
			filtered, warnings := query.Filter(records, crit, win, winOK)

			// A category filter matching nothing often means a typo.
			if category != "" && len(filtered) == 0 {
				if known, kerr := st.Categories(domain); kerr == nil {
					if match, ok := utils.ClosestMatch(category, known); ok {
						warnings = append(warnings, fmt.Sprintf("no matches for category %q, did you mean %q?", category, match))
					}
				}
			}

			key := query.SortKey(sortKey)
			if key == "" {
				key = query.SortByDate
				if domain == query.DomainNotes {
					key = query.SortByUpdated
				}
			}
			ord := query.SortOrder(order)
			if ord == "" {
				ord = query.Desc
			}
			pinnedFirst := domain == query.DomainTasks || domain == query.DomainNotes
			sorted := query.Sort(filtered, key, ord, pinnedFirst)

			entries, p := query.Paginate(sorted, page, limit)

			renderConfig := utils.DefaultRenderConfig()
			renderConfig.Location = loc
			if noColor {
				renderConfig.Color = false
			}
			if format != "" {
				renderConfig.Format = utils.OutputFormat(format)
			}
			renderer := utils.NewRenderer(renderConfig)
			output, err := renderer.RenderRecordList(&utils.RecordList{
				Records:  entries,
				Page:     p,
				Warnings: warnings,
			})
			if err != nil {
				return err
			}
			fmt.Print(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Free-text search across title, notes, category, tags")
	cmd.Flags().StringVar(&rangeFlag, "range", "", "Date range: all, today, week, month, quarter, year")
	cmd.Flags().StringVar(&from, "from", "", "Custom range start (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Custom range end (inclusive)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&view, "view", "", "View: all, archived, starred")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key: date, amount, score, title, category, priority, created, updated")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: asc, desc")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 50, "Entries per page")
	cmd.Flags().StringVar(&format, "format", "default", "Output format: default, table, json, quiet")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	if domain == query.DomainTasks {
		cmd.Flags().StringVar(&status, "status", "", "Filter by status (comma separated)")
		cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority (comma separated)")
	}
	return cmd
}

func newDeleteCmd(domain query.Domain) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openFromConfig()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Delete(domain, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newArchiveCmd(domain query.Domain) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Toggle archived state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openFromConfig()
			if err != nil {
				return err
			}
			defer st.Close()
			rec, err := st.Get(domain, args[0])
			if err != nil {
				return err
			}
			rec.Archived = !rec.Archived
			if _, err := st.Update(rec); err != nil {
				return err
			}
			if rec.Archived {
				fmt.Println("Archived.")
			} else {
				fmt.Println("Unarchived.")
			}
			return nil
		},
	}
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openFromConfig()
			if err != nil {
				return err
			}
			defer st.Close()
			rec, err := st.Get(query.DomainTasks, args[0])
			if err != nil {
				return err
			}
			rec.Status = "done"
			if _, err := st.Update(rec); err != nil {
				return err
			}
			fmt.Println("Done.")
			return nil
		},
	}
}

// flexDay parses CLI date input into the canonical day string; empty stays empty.
func flexDay(input string, loc *time.Location) (string, error) {
	if input == "" {
		return "", nil
	}
	t, err := utils.ParseFlexibleDate(input, loc)
	if err != nil {
		return "", err
	}
	return utils.DayString(t), nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func csvSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, v := range splitCSV(s) {
		set[v] = true
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
