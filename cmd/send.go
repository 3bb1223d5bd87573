package cmd

import (
	"context"
	"fmt"

	"gitamctl/pkg/app"
	"gitamctl/pkg/tui"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Print today's timetable and email it",
	Long:  `Fetch and merge today's timetable, print it, and send it as an HTML email to the configured recipient.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(logger)
		if err != nil {
			return err
		}
		return runSend(cmd.Context(), a, true)
	},
}

// runSend is shared by the send and daemon commands
func runSend(ctx context.Context, a *app.App, interactive bool) error {
	// Fail on missing mail settings before touching the portal
	if err := a.CheckMail(); err != nil {
		return err
	}

	report, err := tui.Collect(ctx, a, dayOverride, interactive)
	if err != nil {
		return err
	}

	sent, err := a.Send(ctx, report)
	if err != nil {
		return err
	}
	if sent {
		fmt.Printf("Emailed %d classes to %s\n", len(report.Entries), a.MailConfig().To)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
