package service

import (
	"context"

	"go.uber.org/zap"

	"taskbuddy/internal/game"
)

// History returns all archived entries, newest first. Entries are never
// mutated after insertion, only pruned.
func (s *Service) History(ctx context.Context) ([]game.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHistory(ctx)
}

// DeleteHistoryEntry removes the entry for the given task id. Unknown ids
// are a no-op.
func (s *Service) DeleteHistoryEntry(ctx context.Context, taskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return false, err
	}
	kept := history[:0]
	removed := false
	for _, e := range history {
		if e.Task.ID == taskID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}
	if err := s.saveHistory(ctx, kept); err != nil {
		return false, err
	}
	s.log.Info("history entry deleted", zap.String("user", s.userID), zap.String("task", taskID))
	return true, nil
}

// ClearHistory removes every archived entry.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveHistory(ctx, nil); err != nil {
		return err
	}
	s.log.Info("history cleared", zap.String("user", s.userID))
	return nil
}
