package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"gitamctl/pkg/app"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Email the timetable every morning on a cron schedule",
	Long: `Stay in the foreground and run "send" on the given cron schedule until interrupted.
A failed run is logged and retried at the next tick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, _ := cmd.Flags().GetString("cron")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
		}

		scheduler := cron.New()
		scheduler.Schedule(schedule, cron.FuncJob(func() {
			sendOnce(ctx)
		}))

		scheduler.Start()
		logger.Info("daemon started", "cron", spec, "next", schedule.Next(time.Now()))

		<-ctx.Done()
		logger.Info("shutting down, waiting for a running job")
		<-scheduler.Stop().Done()
		return nil
	},
}

func sendOnce(ctx context.Context) {
	// Reload settings each run so edits apply without a restart
	a, err := app.New(logger)
	if err == nil {
		err = runSend(ctx, a, false)
	}
	if err != nil {
		logger.Error("scheduled run failed", "err", err)
	}
}

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.Flags().String("cron", "30 6 * * MON-SAT", "Cron schedule (minute hour dom month dow)")
}
