package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"taskbuddy/internal/game"
	"taskbuddy/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "taskbuddy.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, zap.NewNop(), "test_user")
}

// Fixed Wednesday afternoon; due times are placed the next day so a test never
// straddles the daily rollover.
var testNow = time.Date(2026, 3, 4, 14, 0, 0, 0, time.Local)

func addTestTask(t *testing.T, svc *Service, priority string) game.Task {
	t.Helper()
	due := testNow.AddDate(0, 0, 1)
	task, err := svc.AddTask(context.Background(), AddTaskInput{
		Title:    "write report",
		Priority: priority,
		DueDate:  game.CalendarDay(due),
		DueTime:  "5:00 PM",
	}, testNow)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return task
}

func TestAddAndCompleteTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task := addTestTask(t, svc, "MEDIUM")
	if task.Points != 100 {
		t.Fatalf("points = %d, want 100", task.Points)
	}

	res, err := svc.CompleteTask(ctx, task.ID, testNow)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res == nil || !res.Entry.Completed {
		t.Fatalf("expected a completion result, got %+v", res)
	}
	if res.PointsAwarded != 100 {
		t.Fatalf("awarded = %d, want 100", res.PointsAwarded)
	}

	p, err := svc.Progress(ctx, testNow)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.XP != 100 || p.TotalCompletedTasks != 1 || p.TotalTasks != 1 {
		t.Fatalf("persisted progress = xp %d, completed %d, total %d", p.XP, p.TotalCompletedTasks, p.TotalTasks)
	}

	tasks, err := svc.Tasks(ctx)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("task list = %d entries, want 0", len(tasks))
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Task.ID != task.ID {
		t.Fatalf("history = %+v", history)
	}
}

func TestCompleteTaskUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task := addTestTask(t, svc, "LOW")

	if _, err := svc.CompleteTask(ctx, task.ID, testNow); err != nil {
		t.Fatalf("complete: %v", err)
	}
	res, err := svc.CompleteTask(ctx, task.ID, testNow)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if res != nil {
		t.Fatalf("archived task completed twice: %+v", res)
	}
}

func TestOverdueTaskFails(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	due := testNow.Add(-2 * time.Hour)
	task, err := svc.AddTask(ctx, AddTaskInput{
		Title:    "missed it",
		Priority: "HIGH",
		DueDate:  game.CalendarDay(due),
		DueTime:  "12:00 PM",
	}, testNow.Add(-3*time.Hour))
	if err != nil {
		t.Fatalf("add task: %v", err)
	}

	res, err := svc.CompleteTask(ctx, task.ID, testNow)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res == nil || res.Entry.Completed {
		t.Fatalf("overdue task should fail, got %+v", res)
	}
	if res.PointsAwarded != 15 {
		t.Fatalf("consolation = %d, want 15", res.PointsAwarded)
	}

	p, err := svc.Progress(ctx, testNow)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalFailedTasks != 1 || p.XP != 0 {
		t.Fatalf("failed %d, xp %d; want 1, 0", p.TotalFailedTasks, p.XP)
	}
}

func TestAddTaskRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cases := []AddTaskInput{
		{Title: "", Priority: "LOW", DueDate: "2026-03-05", DueTime: "5:00 PM"},
		{Title: "x", Priority: "URGENT", DueDate: "2026-03-05", DueTime: "5:00 PM"},
		{Title: "x", Priority: "LOW", DueDate: "2026-03-05", DueTime: "later"},
		{Title: "x", Priority: "LOW", DueDate: "05/03/2026", DueTime: "5:00 PM"},
	}
	for i, in := range cases {
		if _, err := svc.AddTask(ctx, in, testNow); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, in)
		}
	}
}

func TestMilestoneFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task := addTestTask(t, svc, "MEDIUM")

	m1, err := svc.AddMilestone(ctx, task.ID, "outline", false)
	if err != nil {
		t.Fatalf("add milestone: %v", err)
	}
	m2, err := svc.AddMilestone(ctx, task.ID, "draft", true)
	if err != nil {
		t.Fatalf("add milestone: %v", err)
	}

	if _, err := svc.AddMilestone(ctx, "missing", "x", false); err == nil {
		t.Fatalf("expected error for unknown task")
	}

	res, err := svc.ToggleMilestone(ctx, task.ID, m1.ID, testNow)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res == nil || !res.Toggled || res.BonusXP != 0 {
		t.Fatalf("first toggle = %+v", res)
	}

	res, err = svc.ToggleMilestone(ctx, task.ID, m2.ID, testNow)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.BonusXP != 3*game.MilestonePoints {
		t.Fatalf("bonus = %d, want %d", res.BonusXP, 3*game.MilestonePoints)
	}

	p, err := svc.Progress(ctx, testNow)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalMilestones != 2 || p.XP != 3*game.MilestonePoints {
		t.Fatalf("milestones %d, xp %d", p.TotalMilestones, p.XP)
	}

	// Completing the task now counts both milestones toward the base score.
	cres, err := svc.CompleteTask(ctx, task.ID, testNow)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if cres.PointsAwarded != 100+2*game.MilestonePoints {
		t.Fatalf("awarded = %d, want %d", cres.PointsAwarded, 100+2*game.MilestonePoints)
	}
}

func TestToggleMilestoneUnknownIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task := addTestTask(t, svc, "LOW")

	res, err := svc.ToggleMilestone(ctx, task.ID, "missing", testNow)
	if err != nil || res != nil {
		t.Fatalf("unknown milestone: res %+v err %v", res, err)
	}
	res, err = svc.ToggleMilestone(ctx, "missing", "missing", testNow)
	if err != nil || res != nil {
		t.Fatalf("unknown task: res %+v err %v", res, err)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task := addTestTask(t, svc, "LOW")

	removed, err := svc.DeleteTask(ctx, task.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed %v err %v", removed, err)
	}
	removed, err = svc.DeleteTask(ctx, task.ID)
	if err != nil || removed {
		t.Fatalf("second delete: removed %v err %v", removed, err)
	}

	// Deleting without completing leaves TotalTasks alone.
	p, err := svc.Progress(ctx, testNow)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalTasks != 1 || p.TotalCompletedTasks != 0 {
		t.Fatalf("total %d, completed %d", p.TotalTasks, p.TotalCompletedTasks)
	}
}

func TestHistoryPruneAndClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t1 := addTestTask(t, svc, "LOW")
	t2 := addTestTask(t, svc, "LOW")
	if _, err := svc.CompleteTask(ctx, t1.ID, testNow); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, t2.ID, testNow); err != nil {
		t.Fatalf("complete: %v", err)
	}

	removed, err := svc.DeleteHistoryEntry(ctx, t1.ID)
	if err != nil || !removed {
		t.Fatalf("delete entry: removed %v err %v", removed, err)
	}
	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Task.ID != t2.ID {
		t.Fatalf("history after prune = %+v", history)
	}

	if err := svc.ClearHistory(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	history, err = svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history after clear = %+v", history)
	}
}

func TestRolloverAcrossDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// A mutation persists the progress record with today as the login day.
	addTestTask(t, svc, "LOW")
	changed, err := svc.Rollover(ctx, testNow)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if changed {
		t.Fatalf("same-day rollover reported a change")
	}

	nextDay := testNow.AddDate(0, 0, 1)
	changed, err = svc.Rollover(ctx, nextDay)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !changed {
		t.Fatalf("day change not detected")
	}

	p, err := svc.Progress(ctx, nextDay)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.LastLoginDate != game.CalendarDay(nextDay) {
		t.Fatalf("lastLoginDate = %s", p.LastLoginDate)
	}
	if p.Streak != 1 {
		t.Fatalf("streak = %d, want 1", p.Streak)
	}
}

func TestClaimRewards(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	claimed, err := svc.ClaimRewards(ctx, testNow)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(claimed) != 0 {
		t.Fatalf("claimed with nothing unlocked: %v", claimed)
	}
}

func TestCorruptDocumentRecovers(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "taskbuddy.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	docs := storage.NewDocumentStore(db)
	if err := docs.Save(ctx, "test_user", storage.DocProgress, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	svc := New(db, zap.NewNop(), "test_user")
	p, err := svc.Progress(ctx, testNow)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.Level != 1 || p.XP != 0 {
		t.Fatalf("expected first-run defaults, got level %d xp %d", p.Level, p.XP)
	}
}
