package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const calendarDayLayout = "2006-01-02"

const (
	earlyBirdHour = 10 // tasks completed before 10:00 count as early
	nightOwlHour  = 20 // tasks completed at or after 20:00 count as late
)

// CalendarDay normalizes a timestamp to its local calendar-day key. Two
// timestamps on the same local day yield the same string regardless of
// time of day.
func CalendarDay(t time.Time) string {
	return t.Format(calendarDayLayout)
}

// ParseDueDateTime combines a YYYY-MM-DD date and an "H:MM AM/PM" time into
// one local instant.
func ParseDueDateTime(dueDate, dueTime string) (time.Time, error) {
	day, err := time.ParseInLocation(calendarDayLayout, dueDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}
	hour, minute, err := parseClock12(dueTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}

func parseClock12(s string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid due time %q", s)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid due time %q", s)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid due time %q", s)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid due time %q", s)
	}
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid due time %q", s)
	}
	return hour, minute, nil
}

// To12Hour converts a 24-hour "HH:MM" string to "H:MM AM/PM".
func To12Hour(hhmm string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid time %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q", hhmm)
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, ampm), nil
}

// NormalizeDueTime accepts either 24-hour "HH:MM" or 12-hour "H:MM AM/PM"
// input and returns the canonical 12-hour form stored on tasks. Validation
// happens here, at creation time, so the engine never sees a malformed string.
func NormalizeDueTime(input string) (string, error) {
	s := strings.TrimSpace(input)
	if hour, minute, err := parseClock12(s); err == nil {
		return To12Hour(fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return To12Hour(s)
}

// DueAt returns the task's deadline as an instant. The due time string is
// validated at creation, so a parse failure here is an input-contract
// violation surfaced as an error.
func (t Task) DueAt() (time.Time, error) {
	return ParseDueDateTime(t.DueDate, t.DueTime)
}

// IsOverdue reports whether now is strictly past the task's deadline.
func IsOverdue(t Task, now time.Time) bool {
	due, err := t.DueAt()
	if err != nil {
		return false
	}
	return now.After(due)
}

func isEarlyMorning(now time.Time) bool {
	return now.Hour() < earlyBirdHour
}

func isLateNight(now time.Time) bool {
	return now.Hour() >= nightOwlHour
}

// IsWeekend reports whether now falls on a Saturday or Sunday.
func IsWeekend(now time.Time) bool {
	wd := now.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
