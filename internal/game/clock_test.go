package game

import (
	"testing"
	"time"
)

func TestParseDueDateTime(t *testing.T) {
	cases := []struct {
		date string
		tod  string
		hour int
		min  int
	}{
		{"2026-03-04", "2:00 PM", 14, 0},
		{"2026-03-04", "12:00 PM", 12, 0},
		{"2026-03-04", "12:15 AM", 0, 15},
		{"2026-03-04", "9:05 AM", 9, 5},
		{"2026-03-04", "11:59 PM", 23, 59},
	}
	for _, tc := range cases {
		got, err := ParseDueDateTime(tc.date, tc.tod)
		if err != nil {
			t.Fatalf("ParseDueDateTime(%q, %q): %v", tc.date, tc.tod, err)
		}
		if got.Hour() != tc.hour || got.Minute() != tc.min {
			t.Fatalf("ParseDueDateTime(%q, %q) = %02d:%02d, want %02d:%02d",
				tc.date, tc.tod, got.Hour(), got.Minute(), tc.hour, tc.min)
		}
		if CalendarDay(got) != tc.date {
			t.Fatalf("ParseDueDateTime(%q, %q) day = %s", tc.date, tc.tod, CalendarDay(got))
		}
	}
}

func TestParseDueDateTimeRejectsMalformed(t *testing.T) {
	bad := []struct{ date, tod string }{
		{"2026-03-04", "14:00"},
		{"2026-03-04", "2:00"},
		{"2026-03-04", "13:00 PM"},
		{"2026-03-04", "2:60 AM"},
		{"2026-03-04", "soon"},
		{"04/03/2026", "2:00 PM"},
	}
	for _, tc := range bad {
		if _, err := ParseDueDateTime(tc.date, tc.tod); err == nil {
			t.Fatalf("ParseDueDateTime(%q, %q): expected error", tc.date, tc.tod)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct{ in, want string }{
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"14:45", "2:45 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDueTimeAcceptsBothForms(t *testing.T) {
	for _, in := range []string{"14:45", "2:45 PM", "2:45 pm"} {
		got, err := NormalizeDueTime(in)
		if err != nil {
			t.Fatalf("NormalizeDueTime(%q): %v", in, err)
		}
		if got != "2:45 PM" {
			t.Fatalf("NormalizeDueTime(%q) = %q, want %q", in, got, "2:45 PM")
		}
	}
	if _, err := NormalizeDueTime("later"); err == nil {
		t.Fatalf("NormalizeDueTime: expected error for malformed input")
	}
}

func TestCalendarDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 3, 4, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 3, 4, 23, 58, 0, 0, time.Local)
	if CalendarDay(morning) != CalendarDay(night) {
		t.Fatalf("same day normalized differently: %s vs %s", CalendarDay(morning), CalendarDay(night))
	}
}

func TestIsOverdue(t *testing.T) {
	task := Task{DueDate: "2026-03-04", DueTime: "2:00 PM"}
	before := time.Date(2026, 3, 4, 13, 0, 0, 0, time.Local)
	after := time.Date(2026, 3, 4, 15, 0, 0, 0, time.Local)
	if IsOverdue(task, before) {
		t.Fatalf("task should not be overdue at 13:00")
	}
	if !IsOverdue(task, after) {
		t.Fatalf("task should be overdue at 15:00")
	}
}

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)
	sun := time.Date(2026, 3, 8, 12, 0, 0, 0, time.Local)
	wed := time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local)
	if !IsWeekend(sat) || !IsWeekend(sun) {
		t.Fatalf("saturday/sunday should be weekend")
	}
	if IsWeekend(wed) {
		t.Fatalf("wednesday should not be weekend")
	}
}
