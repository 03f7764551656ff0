package game

type BadgeCategory string

const (
	BadgeDaily     BadgeCategory = "DAILY"
	BadgePermanent BadgeCategory = "PERMANENT"
)

// BadgeDef is a static badge definition: the unlock threshold applies to the
// matching BadgeProgress counter.
type BadgeDef struct {
	ID          BadgeID
	Category    BadgeCategory
	Title       string
	Description string
	Requirement int
}

const (
	BadgeEarlyBird       BadgeID = "early_bird"
	BadgeNightOwl        BadgeID = "night_owl"
	BadgeSpeedDemon      BadgeID = "speed_demon"
	BadgeWeekendWarrior  BadgeID = "weekend_warrior"
	BadgeFocusMaster     BadgeID = "focus_master"
	BadgeTaskSprinter    BadgeID = "task_sprinter"
	BadgeLastMinuteHero  BadgeID = "last_minute_hero"
	BadgeStreakMaster    BadgeID = "streak_master"
	BadgeMilestoneHunter BadgeID = "milestone_hunter"
	BadgePerfectionist   BadgeID = "perfectionist"
	BadgePriorityMaster  BadgeID = "priority_master"
	BadgeTeamPlayer      BadgeID = "team_player"
	BadgeConsistencyKing BadgeID = "consistency_king"
)

var Badges = []BadgeDef{
	{BadgeEarlyBird, BadgeDaily, "Early Bird", "Complete 3 tasks before 10 AM", 3},
	{BadgeNightOwl, BadgeDaily, "Night Owl", "Complete 5 tasks after 8 PM", 5},
	{BadgeSpeedDemon, BadgeDaily, "Speed Demon", "Complete 5 tasks before their due time", 5},
	{BadgeWeekendWarrior, BadgeDaily, "Weekend Warrior", "Complete 10 tasks on weekends", 10},
	{BadgeFocusMaster, BadgeDaily, "Focus Master", "Complete 3 tasks without any breaks longer than 15 minutes", 3},
	{BadgeTaskSprinter, BadgeDaily, "Task Sprinter", "Complete 2 tasks within 30 minutes of each other", 2},
	{BadgeLastMinuteHero, BadgeDaily, "Last-Minute Hero", "Complete 1 task within 5 minutes of its deadline", 1},
	{BadgeStreakMaster, BadgePermanent, "Streak Master", "Maintain a 7-day streak", 7},
	{BadgeMilestoneHunter, BadgePermanent, "Milestone Hunter", "Complete 50 milestones", 50},
	{BadgePerfectionist, BadgePermanent, "Perfectionist", "Complete all milestones in 10 tasks", 10},
	{BadgePriorityMaster, BadgePermanent, "Priority Master", "Complete 20 high-priority tasks", 20},
	{BadgeTeamPlayer, BadgePermanent, "Team Player", "Complete 15 tasks with shared milestones", 15},
	{BadgeConsistencyKing, BadgePermanent, "Consistency King", "Complete tasks for 30 consecutive days", 30},
}

func BadgeByID(id BadgeID) (BadgeDef, bool) {
	for _, def := range Badges {
		if def.ID == id {
			return def, true
		}
	}
	return BadgeDef{}, false
}

// DailyBadgeIDs lists the counters zeroed at daily rollover.
func DailyBadgeIDs() []BadgeID {
	out := make([]BadgeID, 0, len(Badges))
	for _, def := range Badges {
		if def.Category == BadgeDaily {
			out = append(out, def.ID)
		}
	}
	return out
}

// RewardDef is a feature unlock gated purely on player level.
type RewardDef struct {
	ID            RewardID
	Title         string
	Description   string
	RequiredLevel int
}

const (
	RewardThemeUnlock       RewardID = "theme_unlock"
	RewardAdvancedAnalytics RewardID = "advanced_analytics"
	RewardPremiumBadges     RewardID = "premium_badges"
)

var Rewards = []RewardDef{
	{RewardThemeUnlock, "Custom Theme", "Unlock custom theme colors", 5},
	{RewardAdvancedAnalytics, "Advanced Analytics", "Unlock detailed progress tracking", 10},
	{RewardPremiumBadges, "Premium Badges", "Unlock exclusive badges", 15},
}

func RewardByID(id RewardID) (RewardDef, bool) {
	for _, def := range Rewards {
		if def.ID == id {
			return def, true
		}
	}
	return RewardDef{}, false
}

// evaluateBadges unlocks every badge whose counter has reached its
// requirement and is not already in the applicable set. Counters are compared
// post-increment. Returns the newly unlocked ids.
func evaluateBadges(p *PlayerProgress) []BadgeID {
	var unlocked []BadgeID
	for _, def := range Badges {
		if p.BadgeProgress[def.ID] < def.Requirement {
			continue
		}
		switch def.Category {
		case BadgeDaily:
			if hasBadge(p.DailyBadges, def.ID) {
				continue
			}
			p.DailyBadges = append(p.DailyBadges, def.ID)
		case BadgePermanent:
			if hasBadge(p.Badges, def.ID) {
				continue
			}
			p.Badges = append(p.Badges, def.ID)
		}
		unlocked = append(unlocked, def.ID)
	}
	return unlocked
}

// evaluateRewards marks every level-gated reward the player now qualifies for
// as available to claim. Claiming itself is a separate user action.
func evaluateRewards(p *PlayerProgress) []RewardID {
	var unlocked []RewardID
	for _, def := range Rewards {
		if p.Level < def.RequiredLevel {
			continue
		}
		if hasReward(p.UnlockedRewards, def.ID) || hasReward(p.ClaimedRewards, def.ID) {
			continue
		}
		p.UnlockedRewards = append(p.UnlockedRewards, def.ID)
		unlocked = append(unlocked, def.ID)
	}
	return unlocked
}

// ClaimRewards moves every unlocked reward into the claimed set and returns
// what was claimed.
func ClaimRewards(p PlayerProgress) (PlayerProgress, []RewardID) {
	out := p.clone()
	claimed := out.UnlockedRewards
	out.ClaimedRewards = append(out.ClaimedRewards, claimed...)
	out.UnlockedRewards = nil
	return out, claimed
}
