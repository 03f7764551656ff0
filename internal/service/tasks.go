package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskbuddy/internal/game"
)

type AddTaskInput struct {
	Title    string
	Priority string
	DueDate  string // YYYY-MM-DD
	DueTime  string // "HH:MM" or "H:MM AM/PM"
}

// AddTask validates input, fixes the point value from priority, and appends
// the task to the active list. Due-time validation happens here so the
// engine never observes a malformed time string.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput, now time.Time) (game.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return game.Task{}, errors.New("title is required")
	}
	priority, err := game.ParsePriority(in.Priority)
	if err != nil {
		return game.Task{}, err
	}
	dueTime, err := game.NormalizeDueTime(in.DueTime)
	if err != nil {
		return game.Task{}, err
	}
	if _, err := game.ParseDueDateTime(in.DueDate, dueTime); err != nil {
		return game.Task{}, err
	}

	task := game.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Priority:  priority,
		Points:    priority.Points(),
		DueDate:   in.DueDate,
		DueTime:   dueTime,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return game.Task{}, err
	}
	s.rolloverLocked(&p, now)
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return game.Task{}, err
	}

	p.TotalTasks++
	tasks = append([]game.Task{task}, tasks...)

	if err := s.saveProgress(ctx, p); err != nil {
		return game.Task{}, err
	}
	if err := s.saveTasks(ctx, tasks); err != nil {
		return game.Task{}, err
	}

	s.log.Info("task added",
		zap.String("user", s.userID),
		zap.String("task", task.ID),
		zap.String("priority", string(priority)))
	return task, nil
}

// Tasks returns the active task list.
func (s *Service) Tasks(ctx context.Context) ([]game.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTasks(ctx)
}

// Task returns an active task by id, or nil.
func (s *Service) Task(ctx context.Context, id string) (*game.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

// DeleteTask removes an active task without a terminal transition. Unknown
// ids are a no-op.
func (s *Service) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return false, err
	}
	kept := tasks[:0]
	removed := false
	for _, t := range tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return false, nil
	}
	if err := s.saveTasks(ctx, kept); err != nil {
		return false, err
	}
	s.log.Info("task deleted", zap.String("user", s.userID), zap.String("task", id))
	return true, nil
}

// CompleteTask applies the terminal transition for a task. Overdue tasks are
// routed to the fail path automatically; the result's Entry.Completed flag
// says which way it went. Unknown or already-archived ids return (nil, nil).
// Progress, task list and history are all written before returning.
func (s *Service) CompleteTask(ctx context.Context, id string, now time.Time) (*game.CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return nil, err
	}
	s.rolloverLocked(&p, now)

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range tasks {
		if tasks[i].ID == id && !tasks[i].Completed {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	task := tasks[idx]

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	var res game.CompleteResult
	if game.IsOverdue(task, now) {
		res = game.FailTask(p, task, now)
	} else {
		res = game.CompleteTask(p, task, recentCompletions(history, 2), now)
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)
	history = append([]game.HistoryEntry{res.Entry}, history...)

	if err := s.saveProgress(ctx, res.Progress); err != nil {
		return nil, err
	}
	if err := s.saveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	if err := s.saveHistory(ctx, history); err != nil {
		return nil, err
	}

	s.log.Info("task archived",
		zap.String("user", s.userID),
		zap.String("task", id),
		zap.Bool("completed", res.Entry.Completed),
		zap.Int("points", res.PointsAwarded),
		zap.Int("level", res.LevelAfter),
		zap.Int("badges", len(res.Unlocked)))
	return &res, nil
}

// recentCompletions returns the completion instants of the most recent
// successful history entries, newest first.
func recentCompletions(history []game.HistoryEntry, limit int) []time.Time {
	var out []time.Time
	for _, e := range history {
		if !e.Completed {
			continue
		}
		out = append(out, e.RecordedAt)
		if len(out) == limit {
			break
		}
	}
	return out
}

// AddMilestone appends a milestone to an active task.
func (s *Service) AddMilestone(ctx context.Context, taskID, title string, shared bool) (*game.Milestone, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("milestone title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		m := game.Milestone{ID: uuid.NewString(), Title: title, Shared: shared}
		tasks[i].Milestones = append(tasks[i].Milestones, m)
		if err := s.saveTasks(ctx, tasks); err != nil {
			return nil, err
		}
		s.log.Info("milestone added",
			zap.String("user", s.userID),
			zap.String("task", taskID),
			zap.String("milestone", m.ID))
		return &m, nil
	}
	return nil, fmt.Errorf("task %s not found", taskID)
}

// ToggleMilestone flips a milestone's completed flag. Unknown task or
// milestone ids are a no-op (nil result).
func (s *Service) ToggleMilestone(ctx context.Context, taskID, milestoneID string, now time.Time) (*game.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return nil, err
	}
	s.rolloverLocked(&p, now)

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		res := game.ToggleMilestone(p, tasks[i], milestoneID)
		if !res.Toggled {
			return nil, nil
		}
		tasks[i] = res.Task
		if err := s.saveProgress(ctx, res.Progress); err != nil {
			return nil, err
		}
		if err := s.saveTasks(ctx, tasks); err != nil {
			return nil, err
		}
		if res.BonusXP > 0 {
			s.log.Info("milestone bonus awarded",
				zap.String("user", s.userID),
				zap.String("task", taskID),
				zap.Int("xp", res.BonusXP))
		}
		return &res, nil
	}
	return nil, nil
}
