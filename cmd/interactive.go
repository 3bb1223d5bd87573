package cmd

import (
	"gitamctl/pkg/app"
	"gitamctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to view, email or export today's timetable and manage settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(logger)
		if err != nil {
			return err
		}
		return tui.RunTUI(a, dayOverride)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
