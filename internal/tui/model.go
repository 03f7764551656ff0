package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskbuddy/internal/game"
	"taskbuddy/internal/service"
	"taskbuddy/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *service.Service

	tick time.Duration

	width  int
	height int

	progress game.PlayerProgress
	tasks    []game.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	progress game.PlayerProgress
	tasks    []game.Task
	err      error
}

type completedMsg struct {
	id  string
	res *game.CompleteResult
	err error
}

type rolloverTickMsg time.Time

func newBoardModel(ctx context.Context, svc *service.Service, tick time.Duration) boardModel {
	if tick <= 0 {
		tick = time.Minute
	}
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		tick:    tick,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.tickCmd())
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Progress(m.ctx, time.Now())
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.Tasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{progress: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id, time.Now())
		return completedMsg{id: id, res: res, err: err}
	}
}

// tickCmd schedules the periodic rollover check. The rollover itself is a
// no-op on most ticks.
func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return rolloverTickMsg(t)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.progress = msg.progress
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Nothing to do."
			return m, m.loadCmd()
		}
		if msg.res.Entry.Completed {
			m.lastLog = fmt.Sprintf("%s +%d pts", ui.IconDone, msg.res.PointsAwarded)
			if msg.res.LevelUp() {
				m.lastLog += " " + ui.BadgeLevelUp
			}
			for _, id := range msg.res.Unlocked {
				if def, ok := game.BadgeByID(id); ok {
					m.lastLog += fmt.Sprintf(" %s %s", ui.IconBadge, def.Title)
				}
			}
		} else {
			m.lastLog = fmt.Sprintf("%s Overdue — consolation +%d pts", ui.IconFailed, msg.res.PointsAwarded)
		}
		return m, m.loadCmd()
	case rolloverTickMsg:
		return m, tea.Batch(func() tea.Msg {
			if _, err := m.svc.Rollover(m.ctx, time.Now()); err != nil {
				return loadedMsg{err: err}
			}
			return m.loadCmd()()
		}, m.tickCmd())
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.tasks) {
				return m, m.completeCmd(m.tasks[m.selected].ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return "Loading…\n"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	p := m.progress

	b.WriteString(ui.Heading(ui.IconSparkle, "TaskBuddy") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s %s\n",
		ui.LabelValue("Level", p.Level),
		ui.XPBar(p.XP, game.RequiredXP(p.Level), 24),
		ui.Muted.Render(fmt.Sprintf("%d/%d XP", p.XP, game.RequiredXP(p.Level)))))
	b.WriteString(fmt.Sprintf("%s %s  %s  %s\n\n",
		ui.IconStreak,
		ui.LabelValue("Streak", fmt.Sprintf("%d (best %d)", p.Streak, p.LongestStreak)),
		ui.LabelValue("Today", p.TodayPoints),
		ui.LabelValue("Total", p.TotalPoints)))

	b.WriteString(ui.H2.Render(ui.IconTask+" Active Tasks") + "\n")
	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("  (none — add one with `tb add`)") + "\n")
	}
	now := time.Now()
	for i, t := range m.tasks {
		line := fmt.Sprintf("  %s  %s  %s %s",
			t.Title,
			ui.PriorityText(t.Priority),
			ui.Muted.Render(t.DueDate),
			ui.Muted.Render(t.DueTime))
		if len(t.Milestones) > 0 {
			line += ui.Muted.Render(fmt.Sprintf("  [%d/%d]", t.CompletedMilestones(), len(t.Milestones)))
		}
		if game.IsOverdue(t, now) {
			line += " " + ui.Bad.Render("overdue")
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("▸" + line)
		}
		b.WriteString(line + "\n")
	}

	if len(p.DailyBadges) > 0 || len(p.Badges) > 0 {
		b.WriteString("\n" + ui.H2.Render(ui.IconBadge+" Badges") + "\n")
		for _, id := range p.DailyBadges {
			if def, ok := game.BadgeByID(id); ok {
				b.WriteString("  " + ui.Warn.Render(def.Title) + ui.Muted.Render(" (today)") + "\n")
			}
		}
		for _, id := range p.Badges {
			if def, ok := game.BadgeByID(id); ok {
				b.WriteString("  " + ui.Gold.Render(def.Title) + "\n")
			}
		}
	}

	if len(p.UnlockedRewards) > 0 {
		b.WriteString("\n" + ui.H2.Render(ui.IconGift+" Rewards to claim") + "\n")
		for _, id := range p.UnlockedRewards {
			if def, ok := game.RewardByID(id); ok {
				b.WriteString("  " + def.Title + "\n")
			}
		}
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · enter complete · r refresh · q quit") + "\n")
	return b.String()
}
