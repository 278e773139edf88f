package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/core/earnings"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/wire"
)

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Log and manage worked shifts",
}

var shiftAddCmd = &cobra.Command{
	Use:   "add [hospital-id]",
	Short: "Log a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dateStr, _ := cmd.Flags().GetString("date")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		cases, _ := cmd.Flags().GetInt("cases")
		procedures, _ := cmd.Flags().GetInt("procedures")
		outpatient, _ := cmd.Flags().GetBool("outpatient")
		notes, _ := cmd.Flags().GetString("notes")
		customRate, _ := cmd.Flags().GetFloat64("custom-rate")
		counts, _ := cmd.Flags().GetStringArray("count")

		date, err := parseDate(dateStr)
		if err != nil {
			return err
		}
		itemCounts, err := parseItemCounts(counts)
		if err != nil {
			return err
		}

		sh, err := wire.LedgerService().AddShift(ctx, primary.AddShiftRequest{
			HospitalID:         args[0],
			Date:               date,
			StartTime:          start,
			EndTime:            end,
			CasesCount:         clampCount(cases),
			ProceduresCount:    clampCount(procedures),
			IncludesOutpatient: outpatient,
			Notes:              notes,
			CustomRate:         customRate,
			ItemCounts:         itemCounts,
		})
		if err != nil {
			return fmt.Errorf("failed to add shift: %w", err)
		}

		fmt.Printf("✓ Logged shift %s on %s (%s–%s)\n", sh.ID, sh.Date.Format("2006-01-02"), sh.StartTime, sh.EndTime)
		fmt.Printf("  earnings: %.2f\n", sh.TotalEarnings)
		return nil
	},
}

var shiftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shifts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		monthStr, _ := cmd.Flags().GetString("month")

		shifts := wire.LedgerService().Shifts(ctx)
		if monthStr != "" {
			month, err := time.Parse("2006-01", monthStr)
			if err != nil {
				return fmt.Errorf("invalid --month %q (expected YYYY-MM)", monthStr)
			}
			filtered := shifts[:0]
			for _, sh := range shifts {
				if sh.Date.Year() == month.Year() && sh.Date.Month() == month.Month() {
					filtered = append(filtered, sh)
				}
			}
			shifts = filtered
		}
		if len(shifts) == 0 {
			fmt.Println("No shifts found.")
			return nil
		}

		// Collections are unordered; sorting is a display concern.
		sort.Slice(shifts, func(i, j int) bool { return shifts[i].Date.After(shifts[j].Date) })

		ledger := wire.LedgerService()
		for _, sh := range shifts {
			id := color.New(color.FgCyan).Sprint(sh.ID)
			name := ""
			if h := ledger.Hospital(ctx, sh.HospitalID); h != nil {
				name = h.Name
			}
			fmt.Printf("%s  %s %s–%s  %s  cases:%d  %.2f\n",
				id, sh.Date.Format("2006-01-02"), sh.StartTime, sh.EndTime, name, sh.CasesCount, sh.TotalEarnings)
			if sh.Notes != "" {
				fmt.Printf("    %s\n", sh.Notes)
			}
		}
		return nil
	},
}

var shiftUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req primary.UpdateShiftRequest
		if cmd.Flags().Changed("hospital") {
			v, _ := cmd.Flags().GetString("hospital")
			req.HospitalID = &v
		}
		if cmd.Flags().Changed("date") {
			v, _ := cmd.Flags().GetString("date")
			date, err := parseDate(v)
			if err != nil {
				return err
			}
			req.Date = &date
		}
		if cmd.Flags().Changed("start") {
			v, _ := cmd.Flags().GetString("start")
			req.StartTime = &v
		}
		if cmd.Flags().Changed("end") {
			v, _ := cmd.Flags().GetString("end")
			req.EndTime = &v
		}
		if cmd.Flags().Changed("cases") {
			v, _ := cmd.Flags().GetInt("cases")
			v = clampCount(v)
			req.CasesCount = &v
		}
		if cmd.Flags().Changed("procedures") {
			v, _ := cmd.Flags().GetInt("procedures")
			v = clampCount(v)
			req.ProceduresCount = &v
		}
		if cmd.Flags().Changed("outpatient") {
			v, _ := cmd.Flags().GetBool("outpatient")
			req.IncludesOutpatient = &v
		}
		if cmd.Flags().Changed("notes") {
			v, _ := cmd.Flags().GetString("notes")
			req.Notes = &v
		}
		if cmd.Flags().Changed("custom-rate") {
			v, _ := cmd.Flags().GetFloat64("custom-rate")
			req.CustomRate = &v
		}
		if cmd.Flags().Changed("count") {
			counts, _ := cmd.Flags().GetStringArray("count")
			itemCounts, err := parseItemCounts(counts)
			if err != nil {
				return err
			}
			req.ItemCounts = &itemCounts
		}

		if err := wire.LedgerService().UpdateShift(context.Background(), args[0], req); err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
		fmt.Printf("✓ Updated shift %s\n", args[0])
		return nil
	},
}

var shiftDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.LedgerService().DeleteShift(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete shift: %w", err)
		}
		fmt.Printf("✓ Deleted shift %s\n", args[0])
		return nil
	},
}

var shiftEstimateCmd = &cobra.Command{
	Use:   "estimate [hospital-id]",
	Short: "Show duration and advisory pro-rata value for a time window",
	Long: `Computes the elapsed hours between two wall-clock times (overnight spans
wrap past midnight) and the pro-rata share of the hospital's full-shift
value. The estimate is advisory: pass it as --custom-rate when logging the
shift if you want to apply it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		cases, _ := cmd.Flags().GetInt("cases")

		hours, err := earnings.DurationHours(start, end)
		if err != nil {
			return fmt.Errorf("invalid time window: %w", err)
		}

		h := wire.LedgerService().Hospital(ctx, args[0])
		full := earnings.Compute(h, clampCount(cases), 0, nil)
		fmt.Printf("Duration: %.2f h\n", hours)
		fmt.Printf("Full-shift value: %.2f\n", full)
		fmt.Printf("Pro-rata estimate: %.2f\n", earnings.ProRata(full, hours))
		return nil
	},
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", s)
	}
	return date, nil
}

// parseItemCounts turns repeated "itemID=count" flags into a count map,
// clamping negatives to zero.
func parseItemCounts(counts []string) (map[string]int, error) {
	if len(counts) == 0 {
		return nil, nil
	}
	out := make(map[string]int, len(counts))
	for _, raw := range counts {
		id, countStr, found := strings.Cut(raw, "=")
		if !found {
			return nil, fmt.Errorf("invalid --count %q (expected itemID=count)", raw)
		}
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --count value %q: %w", countStr, err)
		}
		out[id] = clampCount(n)
	}
	return out, nil
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ShiftCmd returns the shift command tree.
func ShiftCmd() *cobra.Command {
	shiftAddCmd.Flags().String("date", "", "shift date as YYYY-MM-DD (default today)")
	shiftAddCmd.Flags().String("start", "08:00", "start time HH:MM")
	shiftAddCmd.Flags().String("end", "16:00", "end time HH:MM (before start means overnight)")
	shiftAddCmd.Flags().Int("cases", 0, "number of cases")
	shiftAddCmd.Flags().Int("procedures", 0, "number of procedures")
	shiftAddCmd.Flags().Bool("outpatient", false, "shift includes outpatient work")
	shiftAddCmd.Flags().String("notes", "", "free-text notes")
	shiftAddCmd.Flags().Float64("custom-rate", 0, "manual earnings override (positive applies)")
	shiftAddCmd.Flags().StringArray("count", nil, "billed item as itemID=count (detailed model, repeatable)")

	shiftListCmd.Flags().String("month", "", "restrict to a month (YYYY-MM)")

	shiftUpdateCmd.Flags().String("hospital", "", "move the shift to another hospital")
	shiftUpdateCmd.Flags().String("date", "", "shift date YYYY-MM-DD")
	shiftUpdateCmd.Flags().String("start", "", "start time HH:MM")
	shiftUpdateCmd.Flags().String("end", "", "end time HH:MM")
	shiftUpdateCmd.Flags().Int("cases", 0, "number of cases")
	shiftUpdateCmd.Flags().Int("procedures", 0, "number of procedures")
	shiftUpdateCmd.Flags().Bool("outpatient", false, "shift includes outpatient work")
	shiftUpdateCmd.Flags().String("notes", "", "free-text notes")
	shiftUpdateCmd.Flags().Float64("custom-rate", 0, "manual earnings override (0 clears)")
	shiftUpdateCmd.Flags().StringArray("count", nil, "billed item as itemID=count (replaces the map)")

	shiftEstimateCmd.Flags().String("start", "08:00", "start time HH:MM")
	shiftEstimateCmd.Flags().String("end", "16:00", "end time HH:MM")
	shiftEstimateCmd.Flags().Int("cases", 0, "number of cases")

	shiftCmd.AddCommand(shiftAddCmd)
	shiftCmd.AddCommand(shiftListCmd)
	shiftCmd.AddCommand(shiftUpdateCmd)
	shiftCmd.AddCommand(shiftDeleteCmd)
	shiftCmd.AddCommand(shiftEstimateCmd)
	return shiftCmd
}
