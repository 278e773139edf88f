package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/cli"
	"github.com/example/shiftledger/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shiftledger",
		Short:   "shiftledger - earnings tracking for shift-based work",
		Version: version.String(),
		Long: `shiftledger tracks hospitals, logged shifts, and the earnings they
produce under each workplace's payment model. State lives on this device
and optionally reconciles with a remote store after sign-in.`,
	}

	rootCmd.AddCommand(cli.HospitalCmd())
	rootCmd.AddCommand(cli.ShiftCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.ProfileCmd())
	rootCmd.AddCommand(cli.NotifyCmd())
	rootCmd.AddCommand(cli.BackupCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
