package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	dayOverride string
	verbose     bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gitamctl",
	})
)

var rootCmd = &cobra.Command{
	Use:   "gitamctl",
	Short: "Fetch your GITAM class timetable and email it",
	Long: `gitamctl logs into the GITAM student portal, merges today's class list
with your registered courses (room, teacher), and prints or emails the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dayOverride, "day", "d", "", "Weekday to reconcile against (defaults to today); emails and exports are dated to its next occurrence")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
