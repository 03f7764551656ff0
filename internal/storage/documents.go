package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Per-user document names. Each holds one JSON document that is read on
// mount and written back in full after every mutation.
const (
	DocProgress = "progress"
	DocTasks    = "tasks"
	DocHistory  = "history"
)

// DocumentStore persists one JSON document per (user, name) slot.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Load returns the raw document, or nil when the slot has never been written.
func (s *DocumentStore) Load(ctx context.Context, userID, name string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE user_id = ? AND name = ?`, userID, name)
	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("document load %s/%s: %w", userID, name, err)
	}
	return []byte(doc), nil
}

// Save writes the full document, replacing any previous value.
func (s *DocumentStore) Save(ctx context.Context, userID, name string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (user_id, name, doc, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, name) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, userID, name, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("document save %s/%s: %w", userID, name, err)
	}
	return nil
}

// Delete removes a document slot. Used by tests and account cleanup.
func (s *DocumentStore) Delete(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return fmt.Errorf("document delete %s/%s: %w", userID, name, err)
	}
	return nil
}
