package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/game"
	"taskbuddy/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No active tasks. Add one with `tb add`."))
				return nil
			}

			now := time.Now()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Active Tasks"))
			for _, t := range tasks {
				line := fmt.Sprintf("- %s  %s  %s",
					t.Title,
					ui.PriorityText(t.Priority),
					ui.Muted.Render(fmt.Sprintf("due %s %s · %d pts", t.DueDate, t.DueTime, t.Points)))
				if game.IsOverdue(t, now) {
					line += " " + ui.Bad.Render("overdue")
				}
				fmt.Fprintln(out, line)
				fmt.Fprintf(out, "  %s\n", ui.Muted.Render(t.ID))
				for _, m := range t.Milestones {
					mark := "[ ]"
					if m.Completed {
						mark = "[x]"
					}
					shared := ""
					if m.Shared {
						shared = " " + ui.Muted.Render("(shared)")
					}
					fmt.Fprintf(out, "    %s %s%s %s\n", mark, m.Title, shared, ui.Muted.Render(m.ID))
				}
			}
			return nil
		},
	}

	return cmd
}
