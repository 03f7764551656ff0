package game

import "time"

// StreakRollover updates the consecutive-day streak. Must run before
// DailyRollover in the same tick: both read LastLoginDate and DailyRollover
// overwrites it.
func StreakRollover(p PlayerProgress, now time.Time) PlayerProgress {
	out := p.clone()
	today := CalendarDay(now)
	yesterday := CalendarDay(now.AddDate(0, 0, -1))

	switch {
	case out.LastLoginDate == yesterday:
		out.Streak++
		if out.Streak > out.LongestStreak {
			out.LongestStreak = out.Streak
		}
	case out.LastLoginDate != today:
		out.Streak = 0
	}
	return out
}

// DailyRollover archives yesterday's daily badges and zeroes the daily
// counters when the calendar day has changed. Idempotent within a day: the
// trigger condition is re-checked on every invocation.
func DailyRollover(p PlayerProgress, now time.Time) PlayerProgress {
	today := CalendarDay(now)
	if p.LastLoginDate == today {
		return p
	}

	out := p.clone()
	out.DailyAchievementHistory[out.LastLoginDate] = out.DailyBadges
	out.DailyBadges = nil
	out.TodayPoints = 0
	out.EarlyTasksToday = 0
	for _, id := range DailyBadgeIDs() {
		out.BadgeProgress[id] = 0
	}
	out.LastLoginDate = today
	return out
}

// WeeklyRollover zeroes the weekly point counter when the ISO week has
// changed since the last reset.
func WeeklyRollover(p PlayerProgress, now time.Time) PlayerProgress {
	if sameISOWeek(p.LastWeeklyResetDate, now) {
		return p
	}
	out := p.clone()
	out.WeeklyPoints = 0
	out.LastWeeklyResetDate = CalendarDay(now)
	return out
}

func sameISOWeek(day string, now time.Time) bool {
	last, err := time.ParseInLocation(calendarDayLayout, day, time.Local)
	if err != nil {
		return false
	}
	ly, lw := last.ISOWeek()
	ny, nw := now.ISOWeek()
	return ly == ny && lw == nw
}

// Rollover runs the full session tick: streak first, then the daily and
// weekly resets. Safe to call on every timer tick; a no-op on most of them.
func Rollover(p PlayerProgress, now time.Time) PlayerProgress {
	out := StreakRollover(p, now)
	out = DailyRollover(out, now)
	return WeeklyRollover(out, now)
}
