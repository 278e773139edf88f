package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/wire"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage shift reminder notifications",
}

var notifyEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn on shift reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := wire.LedgerService().SetNotificationsEnabled(context.Background(), true)
		if err != nil {
			return fmt.Errorf("failed to enable notifications: %w", err)
		}
		if !enabled {
			fmt.Println("Notification permission was denied; reminders stay off.")
			return nil
		}
		fmt.Println("✓ Reminders enabled")
		return nil
	},
}

var notifyDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn off shift reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := wire.LedgerService().SetNotificationsEnabled(context.Background(), false); err != nil {
			return fmt.Errorf("failed to disable notifications: %w", err)
		}
		fmt.Println("✓ Reminders disabled")
		return nil
	},
}

var notifyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reminder preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		if wire.LedgerService().NotificationsEnabled(context.Background()) {
			fmt.Println("Reminders are enabled.")
		} else {
			fmt.Println("Reminders are disabled.")
		}
		return nil
	},
}

// NotifyCmd returns the notify command tree.
func NotifyCmd() *cobra.Command {
	notifyCmd.AddCommand(notifyEnableCmd)
	notifyCmd.AddCommand(notifyDisableCmd)
	notifyCmd.AddCommand(notifyStatusCmd)
	return notifyCmd
}
