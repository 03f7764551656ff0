package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskbuddy/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var deleteID string
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or prune completed/failed task history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if clear {
				if err := svc.ClearHistory(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Warn.Render("History cleared."))
				return nil
			}
			if deleteID != "" {
				removed, err := svc.DeleteHistoryEntry(ctx, deleteID)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintln(out, ui.Muted.Render("No history entry with that task id."))
					return nil
				}
				fmt.Fprintln(out, ui.Warn.Render("History entry deleted."))
				return nil
			}

			entries, err := svc.History(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Task History"))
			for _, e := range entries {
				mark := ui.Good.Render(ui.IconDone)
				if !e.Completed {
					mark = ui.Bad.Render(ui.IconFailed)
				}
				fmt.Fprintf(out, "%s %s  %s\n", mark, e.Task.Title,
					ui.Muted.Render(fmt.Sprintf("%s · %d pts", e.RecordedAt.Format("2006-01-02 15:04"), e.PointsAwarded)))
				fmt.Fprintf(out, "  %s\n", ui.Muted.Render(e.Task.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&deleteID, "delete", "", "Delete the entry for the given task id")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all history entries")

	return cmd
}
