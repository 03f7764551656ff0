package game

import "time"

const (
	lastMinuteWindow = 5 * time.Minute
	focusGap         = 15 * time.Minute
	sprintGap        = 30 * time.Minute
)

// CompleteResult carries everything a caller needs to persist and display
// after a terminal task transition.
type CompleteResult struct {
	Progress      PlayerProgress
	Task          Task
	Entry         HistoryEntry
	PointsAwarded int
	Unlocked      []BadgeID
	NewRewards    []RewardID
	LevelBefore   int
	LevelAfter    int
}

func (r CompleteResult) LevelUp() bool { return r.LevelAfter > r.LevelBefore }

// CompleteTask applies a successful completion at now. recent holds the
// completion timestamps of previously completed tasks, newest first; only the
// two most recent matter. The caller must have routed overdue tasks to
// FailTask first.
func CompleteTask(p PlayerProgress, t Task, recent []time.Time, now time.Time) CompleteResult {
	out := p.clone()
	levelBefore := out.Level

	t.Milestones = t.cloneMilestones()
	t.Completed = true
	completedAt := now
	t.CompletedAt = &completedAt

	pts := TaskPoints(t, out.Streak)
	out.addPoints(pts)
	out.AddXP(pts)
	out.TotalCompletedTasks++

	due, dueErr := t.DueAt()

	if isEarlyMorning(now) {
		out.BadgeProgress[BadgeEarlyBird]++
		out.EarlyTasksToday++
	}
	if isLateNight(now) {
		out.BadgeProgress[BadgeNightOwl]++
	}
	if IsWeekend(now) {
		out.BadgeProgress[BadgeWeekendWarrior]++
	}
	if dueErr == nil && now.Before(due) {
		out.BadgeProgress[BadgeSpeedDemon]++
		if due.Sub(now) <= lastMinuteWindow {
			out.BadgeProgress[BadgeLastMinuteHero]++
		}
	}
	if len(recent) >= 1 && now.Sub(recent[0]) <= sprintGap {
		out.BadgeProgress[BadgeTaskSprinter]++
	}
	if len(recent) >= 2 && now.Sub(recent[0]) <= focusGap && recent[0].Sub(recent[1]) <= focusGap {
		out.BadgeProgress[BadgeFocusMaster]++
	}

	if t.Priority == PriorityHigh {
		out.BadgeProgress[BadgePriorityMaster]++
	}
	if done := t.CompletedMilestones(); done > 0 {
		out.BadgeProgress[BadgeMilestoneHunter] += done
	}
	if t.AllMilestonesDone() {
		out.BadgeProgress[BadgePerfectionist]++
	}
	if t.HasSharedMilestones() {
		out.BadgeProgress[BadgeTeamPlayer]++
	}

	// Streak badges track consecutive days directly rather than per-event
	// increments.
	out.BadgeProgress[BadgeStreakMaster] = out.Streak
	out.BadgeProgress[BadgeConsistencyKing] = out.Streak

	unlocked := evaluateBadges(&out)
	rewards := evaluateRewards(&out)

	entry := HistoryEntry{
		Task:          t,
		Completed:     true,
		PointsAwarded: pts,
		Achievements:  unlocked,
		RecordedAt:    now,
	}

	return CompleteResult{
		Progress:      out,
		Task:          t,
		Entry:         entry,
		PointsAwarded: pts,
		Unlocked:      unlocked,
		NewRewards:    rewards,
		LevelBefore:   levelBefore,
		LevelAfter:    out.Level,
	}
}

// FailTask applies the overdue terminal transition: a 10% consolation on
// points (never XP), no badge or reward evaluation.
func FailTask(p PlayerProgress, t Task, now time.Time) CompleteResult {
	out := p.clone()
	levelBefore := out.Level

	t.Milestones = t.cloneMilestones()
	t.Completed = false
	failedAt := now
	t.CompletedAt = &failedAt

	pts := int(float64(t.Points) * FailConsolationRate)
	out.addPoints(pts)
	out.TotalFailedTasks++

	entry := HistoryEntry{
		Task:          t,
		Completed:     false,
		PointsAwarded: pts,
		RecordedAt:    now,
	}

	return CompleteResult{
		Progress:      out,
		Task:          t,
		Entry:         entry,
		PointsAwarded: pts,
		LevelBefore:   levelBefore,
		LevelAfter:    out.Level,
	}
}
