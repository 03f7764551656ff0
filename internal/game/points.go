package game

import "math"

const (
	PointsLow    = 50
	PointsMedium = 100
	PointsHigh   = 150

	// MilestonePoints is added per completed milestone when a task completes.
	MilestonePoints = 30

	// StreakMultiplier is the bonus rate per day of streak (10%).
	StreakMultiplier = 0.1

	// FailConsolationRate is the fraction of the base points awarded when a
	// task is failed rather than completed.
	FailConsolationRate = 0.1
)

// RequiredXP returns the XP threshold for leaving the given level.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return 1000 + (level-1)*500
}

// TaskPoints computes the points awarded for completing a task at the given
// streak: base (task points + milestone points) plus the streak bonus.
func TaskPoints(t Task, streak int) int {
	base := t.Points + t.CompletedMilestones()*MilestonePoints
	bonus := int(math.Floor(float64(base) * float64(streak) * StreakMultiplier))
	return base + bonus
}

// AddXP adds xp and normalizes via the carry-over loop so that
// p.XP < RequiredXP(p.Level) always holds afterward. Returns the number of
// levels gained.
func (p *PlayerProgress) AddXP(xp int) int {
	if xp < 0 {
		return 0
	}
	p.XP += xp
	gained := 0
	for p.XP >= RequiredXP(p.Level) {
		p.XP -= RequiredXP(p.Level)
		p.Level++
		gained++
	}
	return gained
}

func (p *PlayerProgress) addPoints(pts int) {
	p.TotalPoints += pts
	p.TodayPoints += pts
	p.WeeklyPoints += pts
}
