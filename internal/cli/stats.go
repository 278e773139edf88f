package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/core/stats"
	"github.com/example/shiftledger/internal/wire"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Monthly earnings summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		monthStr, _ := cmd.Flags().GetString("month")

		month := time.Now()
		if monthStr != "" {
			parsed, err := time.Parse("2006-01", monthStr)
			if err != nil {
				return fmt.Errorf("invalid --month %q (expected YYYY-MM)", monthStr)
			}
			month = parsed
		}

		ledger := wire.LedgerService()
		m := stats.ComputeMonthly(ledger.Hospitals(ctx), ledger.Shifts(ctx), month.Year(), month.Month())

		bold := color.New(color.Bold)
		bold.Printf("%s\n", month.Format("January 2006"))
		fmt.Printf("Shifts:   %d\n", m.TotalShifts)
		fmt.Printf("Patients: %d\n", m.TotalPatients)
		fmt.Printf("Income:   %.2f\n", m.TotalIncome)

		if len(m.ByHospital) > 0 {
			fmt.Println()
			for _, h := range m.ByHospital {
				name := h.HospitalName
				if name == "" {
					name = h.HospitalID
				}
				fmt.Printf("  %s  %.2f (%d shift(s))\n", color.New(color.FgCyan).Sprint(name), h.Income, h.Shifts)
			}
		}
		return nil
	},
}

// StatsCmd returns the stats command.
func StatsCmd() *cobra.Command {
	statsCmd.Flags().String("month", "", "month to summarize (YYYY-MM, default current)")
	return statsCmd
}
