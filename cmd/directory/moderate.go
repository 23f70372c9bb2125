package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var moderateEnable bool

var moderateCmd = &cobra.Command{
	Use:   "moderate",
	Short: "Review the pending moderation queue",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Run the root setup first; subcommand PreRun replaces it.
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}

		ctx := cmd.Context()
		if moderateEnable {
			if err := app.ReviewService.SetModeratorMode(ctx, true); err != nil {
				return err
			}
		}
		if !app.ReviewService.ModeratorMode(ctx) {
			return errors.New("moderator mode is off (enable with --mod or 'directory mod on')")
		}
		return nil
	},
}

var moderateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending reviews, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pending := app.ReviewService.ListPending(ctx)
		if len(pending) == 0 {
			fmt.Println("No pending reviews.")
			return nil
		}

		for _, rv := range pending {
			name := restaurantName(cmd, rv.RestaurantID)
			fmt.Printf("%s  %s @ %s — %.1f/5 — %s\n", rv.ID, rv.Name, name, rv.Rating, rv.CreatedAt.Time().Format("Jan 2 15:04"))
			fmt.Printf("    %s\n", rv.Text)
			if len(rv.Photos) > 0 {
				fmt.Printf("    (%d photos)\n", len(rv.Photos))
			}
		}
		return nil
	},
}

var moderateApproveCmd = &cobra.Command{
	Use:   "approve <pending-id>",
	Short: "Approve a pending review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		approved, err := app.ReviewService.Approve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Approved: now visible on %s as review %s.\n", approved.RestaurantID, approved.ID)
		return nil
	},
}

var moderateRejectCmd = &cobra.Command{
	Use:   "reject <pending-id>",
	Short: "Reject (discard) a pending review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.ReviewService.Reject(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Rejected.")
		return nil
	},
}

var moderatePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Discard the whole pending queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.ReviewService.PurgePending(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Pending queue purged.")
		return nil
	},
}

var modCmd = &cobra.Command{
	Use:       "mod {on|off}",
	Short:     "Toggle moderator mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		on := args[0] == "on"
		if err := app.ReviewService.SetModeratorMode(cmd.Context(), on); err != nil {
			return err
		}
		if on {
			fmt.Println("Moderator mode is on.")
		} else {
			fmt.Println("Moderator mode is off.")
		}
		return nil
	},
}

func init() {
	moderateCmd.PersistentFlags().BoolVar(&moderateEnable, "mod", false, "enable moderator mode for this and future runs")

	moderateCmd.AddCommand(moderateListCmd)
	moderateCmd.AddCommand(moderateApproveCmd)
	moderateCmd.AddCommand(moderateRejectCmd)
	moderateCmd.AddCommand(moderatePurgeCmd)

	rootCmd.AddCommand(moderateCmd)
	rootCmd.AddCommand(modCmd)
}

// restaurantName resolves an id for display, falling back to the id for
// pending entries pointing at restaurants that left the catalog.
func restaurantName(cmd *cobra.Command, id string) string {
	r, err := app.CatalogService.Get(cmd.Context(), id)
	if err != nil {
		return id
	}
	return r.Name
}
