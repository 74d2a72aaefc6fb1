package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/snapshot"
)

type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := encodeSnapshotData(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot, or nil when none exists yet.
// Recency follows insert order, which is safe even when snapshots share a
// timestamp.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(row)
}

// Prune deletes all but the `keep` most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The keep-th newest snapshot marks the cutoff. It and everything
	// older goes.
	cutoff, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("find prune cutoff: %w", err)
	}
	if len(cutoff) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDLTE(cutoff[0].ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeSnapshotData round-trips through JSON into the map shape the ent
// JSON field stores.
func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshot(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("re-marshal snapshot payload: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot payload: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
