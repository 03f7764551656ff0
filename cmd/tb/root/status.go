package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskbuddy/internal/game"
	"taskbuddy/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player stats, badges and rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			required := game.RequiredXP(p.Level)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status — "+svc.UserID()))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render("XP:"),
				ui.XPBar(p.XP, required, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d (%d to next level)", p.XP, required, required-p.XP)))
			fmt.Fprintf(out, "%s %s\n", ui.IconStreak, ui.LabelValue("Streak", fmt.Sprintf("%d days (best %d)", p.Streak, p.LongestStreak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Points"))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Today", p.TodayPoints))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("This week", p.WeeklyPoints))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("All time", p.TotalPoints))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📈 Tasks"))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Created", p.TotalTasks))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Completed", p.TotalCompletedTasks))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Failed", p.TotalFailedTasks))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Milestones", p.TotalMilestones))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Badges"))
			for _, def := range game.Badges {
				progress := p.BadgeProgress[def.ID]
				switch {
				case def.Category == game.BadgePermanent && containsBadge(p.Badges, def.ID):
					fmt.Fprintf(out, "- %s %s\n", ui.Gold.Render(def.Title), ui.Muted.Render("unlocked"))
				case def.Category == game.BadgeDaily && containsBadge(p.DailyBadges, def.ID):
					fmt.Fprintf(out, "- %s %s\n", ui.Warn.Render(def.Title), ui.Muted.Render("earned today"))
				default:
					fmt.Fprintf(out, "- %s %s\n", def.Title, ui.Muted.Render(fmt.Sprintf("(%d/%d)", progress, def.Requirement)))
				}
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconGift+" Rewards"))
			for _, def := range game.Rewards {
				switch {
				case containsReward(p.ClaimedRewards, def.ID):
					fmt.Fprintf(out, "- %s %s\n", ui.Gold.Render(def.Title), ui.Muted.Render("claimed"))
				case containsReward(p.UnlockedRewards, def.ID):
					fmt.Fprintf(out, "- %s %s\n", ui.Good.Render(def.Title), ui.Muted.Render("available — `tb claim`"))
				default:
					fmt.Fprintf(out, "- %s %s\n", def.Title, ui.Muted.Render(fmt.Sprintf("unlocks at level %d", def.RequiredLevel)))
				}
			}
			return nil
		},
	}

	return cmd
}

func containsBadge(set []game.BadgeID, id game.BadgeID) bool {
	for _, b := range set {
		if b == id {
			return true
		}
	}
	return false
}

func containsReward(set []game.RewardID, id game.RewardID) bool {
	for _, r := range set {
		if r == id {
			return true
		}
	}
	return false
}
