package game

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Points returns the base point value fixed at task creation.
func (p Priority) Points() int {
	switch p {
	case PriorityLow:
		return PointsLow
	case PriorityHigh:
		return PointsHigh
	default:
		return PointsMedium
	}
}

func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(input)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", input)
	}
	return p, nil
}

type BadgeID string

type RewardID string

type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Shared    bool   `json:"shared,omitempty"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Priority    Priority    `json:"priority"`
	Points      int         `json:"points"`
	DueDate     string      `json:"dueDate"` // YYYY-MM-DD
	DueTime     string      `json:"dueTime"` // H:MM AM/PM
	CreatedAt   time.Time   `json:"createdAt"`
	Milestones  []Milestone `json:"milestones"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

func (t Task) CompletedMilestones() int {
	n := 0
	for _, m := range t.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// AllMilestonesDone reports whether the task has milestones and every one is completed.
func (t Task) AllMilestonesDone() bool {
	return len(t.Milestones) > 0 && t.CompletedMilestones() == len(t.Milestones)
}

func (t Task) HasSharedMilestones() bool {
	for _, m := range t.Milestones {
		if m.Shared {
			return true
		}
	}
	return false
}

// PlayerProgress is the persisted per-user progression record. It is only
// ever transformed by the pure functions in this package; callers persist the
// returned copy.
type PlayerProgress struct {
	Level int `json:"level"`
	XP    int `json:"xp"`

	TotalPoints  int `json:"totalPoints"`
	TodayPoints  int `json:"todayPoints"`
	WeeklyPoints int `json:"weeklyPoints"`

	Streak        int `json:"streak"`
	LongestStreak int `json:"longestStreak"`

	TotalTasks          int `json:"totalTasks"`
	TotalCompletedTasks int `json:"totalCompletedTasks"`
	TotalFailedTasks    int `json:"totalFailedTasks"`
	TotalMilestones     int `json:"totalMilestones"`
	EarlyTasksToday     int `json:"earlyTasksToday"`

	Badges                  []BadgeID            `json:"badges"`
	DailyBadges             []BadgeID            `json:"dailyBadges"`
	DailyAchievementHistory map[string][]BadgeID `json:"dailyAchievementHistory"`
	BadgeProgress           map[BadgeID]int      `json:"badgeProgress"`

	UnlockedRewards []RewardID `json:"unlockedRewards"`
	ClaimedRewards  []RewardID `json:"claimedRewards"`

	LastLoginDate       string `json:"lastLoginDate"`       // calendar day of the last rollover
	LastWeeklyResetDate string `json:"lastWeeklyResetDate"` // calendar day of the last weekly reset
}

// NewPlayerProgress returns first-run defaults. Malformed or missing persisted
// records are replaced with this rather than failing.
func NewPlayerProgress(now time.Time) PlayerProgress {
	p := PlayerProgress{
		Level:                   1,
		DailyAchievementHistory: map[string][]BadgeID{},
		BadgeProgress:           map[BadgeID]int{},
		LastLoginDate:           CalendarDay(now),
		LastWeeklyResetDate:     CalendarDay(now),
	}
	for _, def := range Badges {
		p.BadgeProgress[def.ID] = 0
	}
	return p
}

// Normalize repairs a record loaded from storage so the engine never sees nil
// maps or a level below 1.
func (p *PlayerProgress) Normalize(now time.Time) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.DailyAchievementHistory == nil {
		p.DailyAchievementHistory = map[string][]BadgeID{}
	}
	if p.BadgeProgress == nil {
		p.BadgeProgress = map[BadgeID]int{}
	}
	for _, def := range Badges {
		if _, ok := p.BadgeProgress[def.ID]; !ok {
			p.BadgeProgress[def.ID] = 0
		}
	}
	if p.LastLoginDate == "" {
		p.LastLoginDate = CalendarDay(now)
	}
	if p.LastWeeklyResetDate == "" {
		p.LastWeeklyResetDate = CalendarDay(now)
	}
	if p.LongestStreak < p.Streak {
		p.LongestStreak = p.Streak
	}
}

// clone returns a deep copy so transformations never alias the caller's maps
// and slices.
func (p PlayerProgress) clone() PlayerProgress {
	out := p
	out.Badges = append([]BadgeID(nil), p.Badges...)
	out.DailyBadges = append([]BadgeID(nil), p.DailyBadges...)
	out.UnlockedRewards = append([]RewardID(nil), p.UnlockedRewards...)
	out.ClaimedRewards = append([]RewardID(nil), p.ClaimedRewards...)
	out.DailyAchievementHistory = make(map[string][]BadgeID, len(p.DailyAchievementHistory))
	for k, v := range p.DailyAchievementHistory {
		out.DailyAchievementHistory[k] = append([]BadgeID(nil), v...)
	}
	out.BadgeProgress = make(map[BadgeID]int, len(p.BadgeProgress))
	for k, v := range p.BadgeProgress {
		out.BadgeProgress[k] = v
	}
	return out
}

func (t Task) cloneMilestones() []Milestone {
	return append([]Milestone(nil), t.Milestones...)
}

func hasBadge(set []BadgeID, id BadgeID) bool {
	for _, b := range set {
		if b == id {
			return true
		}
	}
	return false
}

func hasReward(set []RewardID, id RewardID) bool {
	for _, r := range set {
		if r == id {
			return true
		}
	}
	return false
}

// HistoryEntry is an immutable snapshot of a task at its terminal transition.
type HistoryEntry struct {
	Task          Task      `json:"task"`
	Completed     bool      `json:"completed"`
	PointsAwarded int       `json:"pointsAwarded"`
	Achievements  []BadgeID `json:"achievementsUnlocked,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}
