package cmd

import (
	"gitamctl/pkg/app"
	"gitamctl/pkg/tui"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's reconciled timetable",
	Long:  `Fetch both timetable views from the portal and print the merged schedule for today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(logger)
		if err != nil {
			return err
		}

		_, err = tui.Collect(cmd.Context(), a, dayOverride, true)
		return err
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
