// Package cli contains the cobra commands fronting the application
// services. Input coercion (number parsing, clamping, defaults) happens
// here; the services receive validated primitives.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/wire"
)

var hospitalCmd = &cobra.Command{
	Use:   "hospital",
	Short: "Manage workplaces and their payment configuration",
}

var hospitalAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a workplace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		model, _ := cmd.Flags().GetString("model")
		fixedRate, _ := cmd.Flags().GetFloat64("fixed-rate")
		perPatientRate, _ := cmd.Flags().GetFloat64("per-patient-rate")
		fixedSalary, _ := cmd.Flags().GetFloat64("fixed-salary")
		items, _ := cmd.Flags().GetStringArray("item")
		hexColor, _ := cmd.Flags().GetString("color")

		itemRates, err := parseItemRates(items)
		if err != nil {
			return err
		}

		h, err := wire.LedgerService().AddHospital(ctx, primary.AddHospitalRequest{
			Name:           args[0],
			PaymentModel:   models.PaymentModel(model),
			FixedRate:      fixedRate,
			PerPatientRate: perPatientRate,
			FixedSalary:    fixedSalary,
			ItemRates:      itemRates,
			Color:          hexColor,
		})
		if err != nil {
			return fmt.Errorf("failed to add hospital: %w", err)
		}

		fmt.Printf("✓ Added hospital %s: %s (%s)\n", h.ID, h.Name, h.PaymentModel)
		for _, it := range h.ItemRates {
			fmt.Printf("  item %s: %s @ %.2f\n", it.ID, it.Name, it.Rate)
		}
		return nil
	},
}

var hospitalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workplaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		hospitals := wire.LedgerService().Hospitals(context.Background())
		if len(hospitals) == 0 {
			fmt.Println("No hospitals yet. Add one with: shiftledger hospital add")
			return nil
		}

		for _, h := range hospitals {
			id := color.New(color.FgCyan).Sprint(h.ID)
			fmt.Printf("%s  %s [%s]\n", id, h.Name, h.PaymentModel)
			switch h.PaymentModel {
			case models.PaymentFixed:
				fmt.Printf("    fixed rate: %.2f\n", h.FixedRate)
			case models.PaymentPerPatient:
				fmt.Printf("    per patient: %.2f\n", h.PerPatientRate)
			case models.PaymentMixed:
				fmt.Printf("    fixed rate: %.2f, per patient: %.2f\n", h.FixedRate, h.PerPatientRate)
			case models.PaymentDetailed:
				fmt.Printf("    base salary: %.2f, %d item rate(s)\n", h.FixedSalary, len(h.ItemRates))
			}
		}
		return nil
	},
}

var hospitalUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a workplace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req primary.UpdateHospitalRequest
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			req.Name = &v
		}
		if cmd.Flags().Changed("model") {
			v, _ := cmd.Flags().GetString("model")
			m := models.PaymentModel(v)
			req.PaymentModel = &m
		}
		if cmd.Flags().Changed("fixed-rate") {
			v, _ := cmd.Flags().GetFloat64("fixed-rate")
			req.FixedRate = &v
		}
		if cmd.Flags().Changed("per-patient-rate") {
			v, _ := cmd.Flags().GetFloat64("per-patient-rate")
			req.PerPatientRate = &v
		}
		if cmd.Flags().Changed("fixed-salary") {
			v, _ := cmd.Flags().GetFloat64("fixed-salary")
			req.FixedSalary = &v
		}
		if cmd.Flags().Changed("item") {
			items, _ := cmd.Flags().GetStringArray("item")
			itemRates, err := parseItemRates(items)
			if err != nil {
				return err
			}
			req.ItemRates = &itemRates
		}
		if cmd.Flags().Changed("color") {
			v, _ := cmd.Flags().GetString("color")
			req.Color = &v
		}

		if err := wire.LedgerService().UpdateHospital(context.Background(), args[0], req); err != nil {
			return fmt.Errorf("failed to update hospital: %w", err)
		}
		fmt.Printf("✓ Updated hospital %s\n", args[0])
		return nil
	},
}

var hospitalDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a workplace and all of its shifts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.LedgerService().DeleteHospital(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete hospital: %w", err)
		}
		fmt.Printf("✓ Deleted hospital %s and its shifts\n", args[0])
		return nil
	},
}

// parseItemRates turns repeated "name=rate" flags into item rates with
// generated ids.
func parseItemRates(items []string) ([]models.ItemRate, error) {
	if len(items) == 0 {
		return nil, nil
	}
	rates := make([]models.ItemRate, 0, len(items))
	for _, raw := range items {
		name, rateStr, found := strings.Cut(raw, "=")
		if !found {
			return nil, fmt.Errorf("invalid --item %q (expected name=rate)", raw)
		}
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --item rate %q: %w", rateStr, err)
		}
		rates = append(rates, models.ItemRate{ID: uuid.NewString(), Name: name, Rate: rate})
	}
	return rates, nil
}

// HospitalCmd returns the hospital command tree.
func HospitalCmd() *cobra.Command {
	hospitalAddCmd.Flags().String("model", "fixed", "payment model: fixed, per_patient, mixed, detailed")
	hospitalAddCmd.Flags().Float64("fixed-rate", 0, "amount per shift (fixed/mixed)")
	hospitalAddCmd.Flags().Float64("per-patient-rate", 0, "amount per case (per_patient/mixed)")
	hospitalAddCmd.Flags().Float64("fixed-salary", 0, "base pay per shift (detailed)")
	hospitalAddCmd.Flags().StringArray("item", nil, "billable item as name=rate (detailed, repeatable)")
	hospitalAddCmd.Flags().String("color", "", "display color (auto-assigned when omitted)")

	hospitalUpdateCmd.Flags().String("name", "", "display name")
	hospitalUpdateCmd.Flags().String("model", "", "payment model")
	hospitalUpdateCmd.Flags().Float64("fixed-rate", 0, "amount per shift")
	hospitalUpdateCmd.Flags().Float64("per-patient-rate", 0, "amount per case")
	hospitalUpdateCmd.Flags().Float64("fixed-salary", 0, "base pay per shift")
	hospitalUpdateCmd.Flags().StringArray("item", nil, "billable item as name=rate (replaces the list)")
	hospitalUpdateCmd.Flags().String("color", "", "display color")

	hospitalCmd.AddCommand(hospitalAddCmd)
	hospitalCmd.AddCommand(hospitalListCmd)
	hospitalCmd.AddCommand(hospitalUpdateCmd)
	hospitalCmd.AddCommand(hospitalDeleteCmd)
	return hospitalCmd
}
