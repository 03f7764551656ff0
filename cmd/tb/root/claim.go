package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/game"
	"taskbuddy/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim all unlocked rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			claimed, err := svc.ClaimRewards(ctx, time.Now())
			if err != nil {
				return err
			}
			if len(claimed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No rewards to claim yet. Keep leveling!"))
				return nil
			}
			for _, id := range claimed {
				if def, ok := game.RewardByID(id); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
						ui.Gold.Render(ui.IconGift+" Claimed"), def.Title, ui.Muted.Render(def.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
