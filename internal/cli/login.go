package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/wire"
)

var loginCmd = &cobra.Command{
	Use:   "login [user-id]",
	Short: "Sign in and reconcile with the remote store",
	Long: `Stores the user id for remote operations, then reconciles: when local
data exists it is pushed first so it wins, after which the remote state is
pulled back. Without a configured remote DSN the sign-in still succeeds but
reconciliation is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.Session().SignIn(args[0]); err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}
		fmt.Printf("✓ Signed in as %s\n", args[0])

		if err := wire.SyncService().Reconcile(context.Background()); err != nil {
			fmt.Printf("reconciliation skipped: %v\n", err)
			return nil
		}
		fmt.Println("✓ Reconciled with remote")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out, keeping local data intact",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.Session().SignOut(); err != nil {
			return fmt.Errorf("failed to sign out: %w", err)
		}
		fmt.Println("✓ Signed out")
		return nil
	},
}

// LoginCmd returns the login command.
func LoginCmd() *cobra.Command {
	return loginCmd
}

// LogoutCmd returns the logout command.
func LogoutCmd() *cobra.Command {
	return logoutCmd
}
