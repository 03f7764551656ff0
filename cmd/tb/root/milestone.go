package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/ui"
)

func newMilestoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage task milestones",
	}
	cmd.AddCommand(newMilestoneAddCmd(), newMilestoneToggleCmd())
	return cmd
}

func newMilestoneAddCmd() *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "add <task_id> <title>",
		Short: "Add a milestone to a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and title are required")
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

			m, err := svc.AddMilestone(ctx, args[0], args[1], shared)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconFlag+" Milestone added"), m.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("ID", m.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "Mark the milestone as shared with others")

	return cmd
}

func newMilestoneToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <task_id> <milestone_id>",
		Short: "Toggle a milestone's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and milestone id are required")
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

			res, err := svc.ToggleMilestone(ctx, args[0], args[1], time.Now())
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do: unknown task or milestone id."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconFlag+" Toggled"),
				ui.Muted.Render(fmt.Sprintf("%d/%d milestones done", res.Task.CompletedMilestones(), len(res.Task.Milestones))))
			if res.BonusXP > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.Gold.Render(ui.IconSparkle+" All milestones complete!"),
					ui.Muted.Render(fmt.Sprintf("+%d XP", res.BonusXP)))
			}
			return nil
		},
	}

	return cmd
}
