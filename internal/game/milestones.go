package game

// ToggleResult describes a milestone toggle. BonusXP is non-zero only when
// the toggle just completed the last open milestone on the task.
type ToggleResult struct {
	Progress PlayerProgress
	Task     Task
	Toggled  bool
	BonusXP  int
}

// ToggleMilestone flips the named milestone's completed flag. Unknown
// milestone ids are a no-op. When the toggle leaves every milestone on the
// task completed, a bonus of (count+1) * MilestonePoints XP is awarded and
// the milestone total advances by count. The "+1" reproduces the original
// product behavior verbatim; see DESIGN.md before changing it.
func ToggleMilestone(p PlayerProgress, t Task, milestoneID string) ToggleResult {
	out := p.clone()
	t.Milestones = t.cloneMilestones()

	idx := -1
	for i := range t.Milestones {
		if t.Milestones[i].ID == milestoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ToggleResult{Progress: out, Task: t}
	}

	t.Milestones[idx].Completed = !t.Milestones[idx].Completed

	bonus := 0
	if t.Milestones[idx].Completed && t.AllMilestonesDone() {
		count := len(t.Milestones)
		bonus = (count + 1) * MilestonePoints
		out.AddXP(bonus)
		out.TotalMilestones += count
	}

	return ToggleResult{Progress: out, Task: t, Toggled: true, BonusXP: bonus}
}
