package cmd

import (
	"fmt"

	"gitamctl/pkg/config"
	"gitamctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gitamctl configuration",
	Long: `View or edit your local settings (~/.gitamctl.json): recipient, portal pages, SMTP server, theme.
Credentials are never stored here; they come from USER_ID, PASSWORD_INPUT, EMAIL_ADDRESS,
EMAIL_PASSWORD and RECIPIENT_EMAIL in the environment or a .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		recipient, _ := cmd.Flags().GetString("recipient")
		accent, _ := cmd.Flags().GetString("accent")
		show, _ := cmd.Flags().GetBool("show")

		if show {
			fmt.Print(tui.DescribeConfig(cfg))
			return nil
		}

		if recipient == "" && accent == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if recipient != "" {
			if err := config.ValidEmail(recipient); err != nil {
				return err
			}
			cfg.Recipient = recipient
		}
		if accent != "" {
			cfg.AccentColor = accent
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("recipient", "", "Email address that receives the daily timetable")
	configCmd.Flags().String("accent", "", "Accent color for the TUI (ANSI code or #RRGGBB)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
