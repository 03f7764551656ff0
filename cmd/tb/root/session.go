package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskbuddy/internal/auth"
	"taskbuddy/internal/config"
	"taskbuddy/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <user>",
		Short: "Sign in as a user",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("user id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := auth.Login(cfg.SessionPath, cfg.SessionSecret, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Signed in as"), args[0])
			return nil
		},
	}

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := auth.Logout(cfg.SessionPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Signed out."))
			return nil
		},
	}

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			session := auth.Current(cfg.SessionPath, cfg.SessionSecret)
			if !session.SignedIn {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not signed in."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.UserID)
			return nil
		},
	}

	return cmd
}
