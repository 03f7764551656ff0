package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskbuddy/internal/game"
)

// TaskBuddy theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "📝"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconFailed  = "💔"
	IconTrophy  = "🏆"
	IconStreak  = "🔥"
	IconBadge   = "🎖️"
	IconGift    = "🎁"
	IconClock   = "⏰"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconFlag    = "🚩"
)

var (
	cPrimary = lipgloss.Color("33")  // blue
	cAccent  = lipgloss.Color("214") // amber, the TaskBuddy brand color
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("220") // yellow
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func PriorityText(p game.Priority) string {
	switch p {
	case game.PriorityHigh:
		return Bad.Render("high")
	case game.PriorityMedium:
		return Warn.Render("medium")
	case game.PriorityLow:
		return Good.Render("low")
	default:
		return Muted.Render(strings.ToLower(string(p)))
	}
}

// XPBar renders a fixed-width progress bar toward the next level.
func XPBar(xp, required, width int) string {
	if width < 4 {
		width = 4
	}
	if required <= 0 {
		required = 1
	}
	filled := xp * width / required
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Gold.Render(bar)
}
