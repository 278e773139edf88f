package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/wire"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := wire.LedgerService().Profile(context.Background())
		if p == (models.UserProfile{}) {
			fmt.Println("No profile set. Use: shiftledger profile set")
			return nil
		}
		fmt.Printf("Name:   %s\n", p.Name)
		fmt.Printf("Title:  %s\n", p.Title)
		fmt.Printf("Email:  %s\n", p.Email)
		fmt.Printf("Gender: %s\n", p.Gender)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p := wire.LedgerService().Profile(ctx)

		if cmd.Flags().Changed("name") {
			p.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("title") {
			p.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("email") {
			p.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("gender") {
			p.Gender, _ = cmd.Flags().GetString("gender")
		}

		if err := wire.LedgerService().SetProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		fmt.Println("✓ Profile updated")
		return nil
	},
}

// ProfileCmd returns the profile command tree.
func ProfileCmd() *cobra.Command {
	profileSetCmd.Flags().String("name", "", "display name")
	profileSetCmd.Flags().String("title", "", "job title")
	profileSetCmd.Flags().String("email", "", "contact email")
	profileSetCmd.Flags().String("gender", "", "gender")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	return profileCmd
}
