package cmd

import (
	"fmt"
	"strings"

	"gitamctl/pkg/app"
	"gitamctl/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export today's timetable to an ICS file",
	Long:  `Fetch and merge today's timetable and write it as calendar events to an ICS file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		a, err := app.New(logger)
		if err != nil {
			return err
		}

		report, err := tui.Collect(cmd.Context(), a, dayOverride, true)
		if err != nil {
			return err
		}

		if len(report.Entries) == 0 {
			return fmt.Errorf("no classes found for %s", report.Day)
		}

		if err := a.Export(report, output); err != nil {
			return err
		}

		fmt.Printf("Successfully exported %d classes to %s\n", len(report.Entries), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "today.ics", "Output file path")
}
