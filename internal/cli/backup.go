package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/app"
	"github.com/example/shiftledger/internal/core/backup"
	"github.com/example/shiftledger/internal/ports/secondary"
	"github.com/example/shiftledger/internal/wire"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore the full ledger state",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current state to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := wire.LedgerService().Export(context.Background())
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		file := app.ExportToBackup(data, time.Now())
		payload, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode backup: %w", err)
		}
		if err := os.WriteFile(args[0], payload, 0600); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}

		fmt.Printf("✓ Exported %d hospital(s) and %d shift(s) to %s\n", len(file.Hospitals), len(file.Shifts), args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace local state from a backup file",
	Long: `Validates the backup file shape and wholesale-replaces local state with
its contents. Nothing is pushed to the remote store; run "shiftledger sync
now" afterwards if the restored state should win remotely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}

		var file secondary.BackupFile
		if err := json.Unmarshal(payload, &file); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		guard := backup.CanImport(backup.ImportContext{
			HasProfile:   file.UserProfile != nil,
			HasHospitals: file.Hospitals != nil,
			HasShifts:    file.Shifts != nil,
		})
		if err := guard.Error(); err != nil {
			return err
		}

		req := app.BackupToImport(&file, time.Now())
		if err := wire.LedgerService().Import(context.Background(), req); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		fmt.Printf("✓ Restored %d hospital(s) and %d shift(s) from %s\n", len(req.Hospitals), len(req.Shifts), args[0])
		return nil
	},
}

// BackupCmd returns the backup command tree.
func BackupCmd() *cobra.Command {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
	return backupCmd
}
