package cmd

import (
	"github.com/spf13/cobra"

	"lifehub/internal/ui"
)

// tuiCmd launches the Bubble Tea dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openFromConfig()
		if err != nil {
			return err
		}
		defer st.Close()
		return ui.Run(st, cfg)
	},
}
