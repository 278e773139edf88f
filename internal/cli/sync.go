package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/wire"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the ledger with the remote store",
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Push the full local state to the remote store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SyncService().FullSync(context.Background()); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Println("✓ Pushed local state to remote")
		return nil
	},
}

var syncFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Pull remote state and apply it locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SyncService().FullFetch(context.Background()); err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		fmt.Println("✓ Applied remote state locally")
		return nil
	},
}

// SyncCmd returns the sync command tree.
func SyncCmd() *cobra.Command {
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncFetchCmd)
	return syncCmd
}
