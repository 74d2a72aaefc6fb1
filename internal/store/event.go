package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/prepdeck/prepdeck/ent"
)

// sequenceCounter hands out the global sequence number stamped on every
// event. Review, answer and generation events each live in their own
// ent-managed table, and per-table auto-increment IDs say nothing about
// ordering across tables. A single shared counter gives the log one total
// order: snapshots record the sequence they were taken at, and restore
// replays only events above it.
//
// ent has no atomic-counter primitive, so the increment is a raw
// UPDATE ... RETURNING against a one-row table. The mutex serializes
// callers inside the process; RETURNING keeps the increment atomic in
// the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence counter: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current sequence value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on top of ent plus the shared counter.
// The per-event-type methods live in review_event.go, answer_event.go,
// attempt_event.go and gen_event.go.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
