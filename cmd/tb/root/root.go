package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskbuddy/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tb",
	Short:         "TaskBuddy — gamified task manager",
	Long:          "TaskBuddy is a local-first task manager that turns deadlines into points, levels, streaks and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newMilestoneCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newClaimCmd(),
		newBoardCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
