package store

import (
	"context"
	"time"
)

// ProgressData is the persisted completion state. The engine itself never
// persists anything; the CLI writes a fresh snapshot after every successful
// mutation and loads the latest one at startup.
type ProgressData struct {
	Version      int      `json:"version"`
	CompletedIDs []string `json:"completed_ids"`
}

// ProgressSnapshot is a point-in-time capture of the completion set.
type ProgressSnapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ProgressData
}

// Completion event actions.
const (
	ActionComplete = "complete"
	ActionReload   = "reload"
	ActionReset    = "reset"
)

// CompletionEventData captures one mutation of the completion set.
type CompletionEventData struct {
	Action        string // ActionComplete, ActionReload, or ActionReset
	ModuleID      string // empty for reload/reset
	NewlyUnlocked int
	SessionID     string
}

// ProgressRepo manages persisted learner progress.
type ProgressRepo interface {
	// SaveSnapshot stores a new progress snapshot.
	SaveSnapshot(ctx context.Context, snap *ProgressSnapshot) error

	// LatestSnapshot returns the most recent snapshot, or nil if none exist.
	LatestSnapshot(ctx context.Context) (*ProgressSnapshot, error)

	// PruneSnapshots deletes all but the N most recent snapshots.
	PruneSnapshots(ctx context.Context, keep int) error

	// AppendCompletion records a completion-set mutation event and returns
	// the sequence number it was assigned, so a snapshot taken right after
	// can record how far the event log had advanced.
	AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error)
}
