package game

import (
	"testing"
	"time"
)

func milestoneTask() Task {
	t := newTask(PriorityMedium, time.Date(2026, 3, 4, 17, 0, 0, 0, time.Local))
	t.Milestones = []Milestone{
		{ID: "m1", Title: "outline"},
		{ID: "m2", Title: "draft"},
		{ID: "m3", Title: "review"},
	}
	return t
}

func TestToggleMilestoneBonusOnLastCompletion(t *testing.T) {
	p := NewPlayerProgress(noon)
	task := milestoneTask()
	task.Milestones[0].Completed = true
	task.Milestones[1].Completed = true

	res := ToggleMilestone(p, task, "m3")

	if !res.Toggled {
		t.Fatalf("expected toggle")
	}
	if !res.Task.Milestones[2].Completed {
		t.Fatalf("milestone not marked completed")
	}
	if res.BonusXP != 4*MilestonePoints {
		t.Fatalf("bonus = %d, want %d", res.BonusXP, 4*MilestonePoints)
	}
	if res.Progress.XP != 4*MilestonePoints {
		t.Fatalf("xp = %d, want %d", res.Progress.XP, 4*MilestonePoints)
	}
	if res.Progress.TotalMilestones != 3 {
		t.Fatalf("totalMilestones = %d, want 3", res.Progress.TotalMilestones)
	}
}

func TestToggleMilestoneNoBonusWhileOpen(t *testing.T) {
	p := NewPlayerProgress(noon)
	task := milestoneTask()

	res := ToggleMilestone(p, task, "m1")

	if !res.Toggled || res.BonusXP != 0 {
		t.Fatalf("toggled/bonus = %v/%d, want true/0", res.Toggled, res.BonusXP)
	}
	if res.Progress.XP != 0 || res.Progress.TotalMilestones != 0 {
		t.Fatalf("progress advanced without full completion: %+v", res.Progress)
	}
}

func TestToggleMilestoneUncheckAwardsNothing(t *testing.T) {
	p := NewPlayerProgress(noon)
	task := milestoneTask()
	for i := range task.Milestones {
		task.Milestones[i].Completed = true
	}

	res := ToggleMilestone(p, task, "m2")

	if !res.Toggled {
		t.Fatalf("expected toggle")
	}
	if res.Task.Milestones[1].Completed {
		t.Fatalf("milestone not unchecked")
	}
	if res.BonusXP != 0 || res.Progress.XP != 0 {
		t.Fatalf("uncheck awarded xp: %d", res.Progress.XP)
	}
}

func TestToggleMilestoneUnknownID(t *testing.T) {
	p := NewPlayerProgress(noon)
	task := milestoneTask()

	res := ToggleMilestone(p, task, "nope")

	if res.Toggled {
		t.Fatalf("unknown id must not toggle")
	}
	for i := range res.Task.Milestones {
		if res.Task.Milestones[i].Completed {
			t.Fatalf("milestone %d flipped", i)
		}
	}
}

func TestToggleMilestoneDoesNotMutateInput(t *testing.T) {
	p := NewPlayerProgress(noon)
	task := milestoneTask()

	_ = ToggleMilestone(p, task, "m1")

	if task.Milestones[0].Completed {
		t.Fatalf("input task mutated")
	}
}
