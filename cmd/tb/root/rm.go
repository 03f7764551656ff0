package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskbuddy/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an active task",
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

			removed, err := svc.DeleteTask(ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active task with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Task deleted."))
			return nil
		},
	}

	return cmd
}
