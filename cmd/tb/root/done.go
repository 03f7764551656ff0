package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/game"
	"taskbuddy/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task (overdue tasks are marked failed)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0], time.Now())
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do: no active task with that id."))
				return nil
			}

			out := cmd.OutOrStdout()
			if res.Entry.Completed {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Completed"),
					res.Task.Title,
					ui.Gold.Render(fmt.Sprintf("+%d pts", res.PointsAwarded)))
				if res.LevelUp() {
					fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp,
						ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
				}
				for _, id := range res.Unlocked {
					if def, ok := game.BadgeByID(id); ok {
						fmt.Fprintf(out, "%s %s %s\n", ui.IconBadge, ui.Gold.Render(def.Title), ui.Muted.Render(def.Description))
					}
				}
				for _, id := range res.NewRewards {
					if def, ok := game.RewardByID(id); ok {
						fmt.Fprintf(out, "%s %s %s\n", ui.IconGift, ui.Gold.Render(def.Title), ui.Muted.Render("available to claim"))
					}
				}
			} else {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Bad.Render(ui.IconFailed+" Overdue"),
					res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("consolation +%d pts", res.PointsAwarded)))
			}
			return nil
		},
	}

	return cmd
}
