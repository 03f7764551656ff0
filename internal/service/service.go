// Package service wires the persisted per-user documents to the pure
// progression functions in internal/game. Every mutating method follows the
// same shape: lock, roll over, load documents, transform, write back in full.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskbuddy/internal/game"
	"taskbuddy/internal/storage"
)

type Service struct {
	// mu serializes mutations: no two operations may observe the same
	// pre-mutation progress and both write divergent versions.
	mu     sync.Mutex
	docs   *storage.DocumentStore
	log    *zap.Logger
	userID string
}

func New(db *sql.DB, log *zap.Logger, userID string) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		docs:   storage.NewDocumentStore(db),
		log:    log,
		userID: userID,
	}
}

func (s *Service) UserID() string { return s.userID }

// loadProgress reads the progress document. Missing or corrupt documents are
// first-run defaults, not failures.
func (s *Service) loadProgress(ctx context.Context, now time.Time) (game.PlayerProgress, error) {
	raw, err := s.docs.Load(ctx, s.userID, storage.DocProgress)
	if err != nil {
		return game.PlayerProgress{}, err
	}
	if raw == nil {
		return game.NewPlayerProgress(now), nil
	}
	var p game.PlayerProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn("progress document corrupt, starting fresh",
			zap.String("user", s.userID), zap.Error(err))
		return game.NewPlayerProgress(now), nil
	}
	p.Normalize(now)
	return p, nil
}

func (s *Service) saveProgress(ctx context.Context, p game.PlayerProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.docs.Save(ctx, s.userID, storage.DocProgress, raw)
}

func (s *Service) loadTasks(ctx context.Context) ([]game.Task, error) {
	raw, err := s.docs.Load(ctx, s.userID, storage.DocTasks)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var tasks []game.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		s.log.Warn("task document corrupt, starting fresh",
			zap.String("user", s.userID), zap.Error(err))
		return nil, nil
	}
	return tasks, nil
}

func (s *Service) saveTasks(ctx context.Context, tasks []game.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.docs.Save(ctx, s.userID, storage.DocTasks, raw)
}

func (s *Service) loadHistory(ctx context.Context) ([]game.HistoryEntry, error) {
	raw, err := s.docs.Load(ctx, s.userID, storage.DocHistory)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var entries []game.HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("history document corrupt, starting fresh",
			zap.String("user", s.userID), zap.Error(err))
		return nil, nil
	}
	return entries, nil
}

func (s *Service) saveHistory(ctx context.Context, entries []game.HistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.docs.Save(ctx, s.userID, storage.DocHistory, raw)
}

// rolloverLocked applies streak/daily/weekly rollovers to p in place and
// reports whether anything changed. Callers hold s.mu.
func (s *Service) rolloverLocked(p *game.PlayerProgress, now time.Time) bool {
	before := p.LastLoginDate
	streakBefore := p.Streak
	weeklyBefore := p.LastWeeklyResetDate

	*p = game.Rollover(*p, now)

	changed := p.LastLoginDate != before || p.Streak != streakBefore || p.LastWeeklyResetDate != weeklyBefore
	if changed {
		s.log.Info("rollover applied",
			zap.String("user", s.userID),
			zap.String("day", p.LastLoginDate),
			zap.Int("streak", p.Streak))
	}
	return changed
}

// Rollover runs the session/timer tick. A no-op on most invocations.
func (s *Service) Rollover(ctx context.Context, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return false, err
	}
	if !s.rolloverLocked(&p, now) {
		return false, nil
	}
	return true, s.saveProgress(ctx, p)
}

// Progress returns the current progress record, rollovers applied.
func (s *Service) Progress(ctx context.Context, now time.Time) (game.PlayerProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return game.PlayerProgress{}, err
	}
	if s.rolloverLocked(&p, now) {
		if err := s.saveProgress(ctx, p); err != nil {
			return game.PlayerProgress{}, err
		}
	}
	return p, nil
}

// ClaimRewards moves all unlocked rewards to the claimed set.
func (s *Service) ClaimRewards(ctx context.Context, now time.Time) ([]game.RewardID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProgress(ctx, now)
	if err != nil {
		return nil, err
	}
	s.rolloverLocked(&p, now)

	p, claimed := game.ClaimRewards(p)
	if err := s.saveProgress(ctx, p); err != nil {
		return nil, err
	}
	if len(claimed) > 0 {
		s.log.Info("rewards claimed",
			zap.String("user", s.userID), zap.Int("count", len(claimed)))
	}
	return claimed, nil
}
