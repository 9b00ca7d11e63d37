package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smehra/lingo/ent"
	"github.com/smehra/lingo/ent/progresssnapshot"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *progressRepo) SaveSnapshot(ctx context.Context, snap *ProgressSnapshot) error {
	dataMap, err := progressDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal progress data: %w", err)
	}

	_, err = r.client.ProgressSnapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	return nil
}

func (r *progressRepo) LatestSnapshot(ctx context.Context) (*ProgressSnapshot, error) {
	s, err := r.client.ProgressSnapshot.Query().
		Order(ent.Desc(progresssnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToProgress(s)
}

func (r *progressRepo) PruneSnapshots(ctx context.Context, keep int) error {
	// Find the threshold: the timestamp of the Nth most recent snapshot.
	snapshots, err := r.client.ProgressSnapshot.Query().
		Order(ent.Desc(progresssnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.ProgressSnapshot.Delete().
		Where(progresssnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *progressRepo) AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetNewlyUnlocked(data.NewlyUnlocked)

	if data.ModuleID != "" {
		builder = builder.SetModuleID(data.ModuleID)
	}
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save completion event: %w", err)
	}
	return seqNum, nil
}

// progressDataToMap converts ProgressData to map[string]any for ent JSON storage.
func progressDataToMap(data ProgressData) (map[string]any, error) {
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

// entSnapshotToProgress converts an ent snapshot row back to a ProgressSnapshot.
func entSnapshotToProgress(s *ent.ProgressSnapshot) (*ProgressSnapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var data ProgressData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &ProgressSnapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
