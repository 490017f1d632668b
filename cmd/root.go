package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lifehub/internal/config"
	"lifehub/internal/notify"
	"lifehub/internal/query"
	"lifehub/internal/schedule"
	"lifehub/internal/store"
	"lifehub/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lifehub",
	Short: "Personal tasks, finance, mood & notes",
}

func Execute() error {
	// Build metadata is injected after package init, so resolve it here.
	rootCmd.Version = version.GetVersionInfo()
	return rootCmd.Execute()
}

func init() {
	// Load config and start reminder if enabled
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("LIFEHUB_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					title, msg := notify.FormatCheckInPrompt(missingToday(cfg))
					_ = notify.Info(title, msg)
				})
			}()
			// We intentionally don't store cancel globally; on process exit, signal cancels
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(
		newDomainCmd("task", query.DomainTasks),
		newDomainCmd("finance", query.DomainFinance),
		newDomainCmd("mood", query.DomainMood),
		newDomainCmd("note", query.DomainNotes),
		summaryCmd, serveCmd, tuiCmd,
	)
}

// missingToday lists the domains with no entry dated today, for the reminder text.
func missingToday(cfg config.Config) []string {
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil
	}
	defer st.Close()

	loc := cfg.Location()
	var missing []string
	for _, d := range []query.Domain{query.DomainTasks, query.DomainFinance, query.DomainMood, query.DomainNotes} {
		records, err := st.List(d)
		if err != nil {
			continue
		}
		crit := query.Criteria{Range: query.RangeToday}
		win, ok := query.ResolveWindow(crit.Range, time.Now().In(loc), loc, "", "")
		todays, _ := query.Filter(records, crit, win, ok)
		if len(todays) == 0 {
			missing = append(missing, string(d))
		}
	}
	return missing
}
