package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/game"
	"taskbuddy/internal/service"
	"taskbuddy/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string
	var dueDate string
	var dueTime string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			now := time.Now()
			in := service.AddTaskInput{
				Title:    args[0],
				Priority: priority,
				DueDate:  dueDate,
				DueTime:  dueTime,
			}
			if in.DueDate == "" {
				in.DueDate = game.CalendarDay(now)
			}

			task, err := svc.AddTask(ctx, in, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTask+" Added"),
				task.Title,
				ui.Muted.Render(fmt.Sprintf("(%d pts, due %s %s)", task.Points, task.DueDate, task.DueTime)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("ID", task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&dueDate, "due", "d", "", "Due date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&dueTime, "at", "t", "11:59 PM", "Due time (HH:MM or H:MM AM/PM)")

	return cmd
}
