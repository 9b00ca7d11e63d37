package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func openTestRepo(t *testing.T) (*Store, ProgressRepo) {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.ProgressRepo()
	require.NoError(t, err, "open progress repo")
	return s, repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.Nil(t, snap, "expected nil snapshot when none exist")

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.SaveSnapshot(ctx, &ProgressSnapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      ProgressData{Version: 1, CompletedIDs: []string{"greetings", "numbers-1-20"}},
	})
	require.NoError(t, err)

	snap, err = repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(42), snap.Sequence)
	assert.Equal(t, 1, snap.Data.Version)
	assert.Equal(t, []string{"greetings", "numbers-1-20"}, snap.Data.CompletedIDs)
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.SaveSnapshot(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProgressData{Version: i + 1},
		})
		require.NoError(t, err, "save %d", i)
	}

	snap, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.Sequence)
	assert.Equal(t, 3, snap.Data.Version)
}

func TestSnapshotPrune(t *testing.T) {
	s, repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.SaveSnapshot(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProgressData{Version: 1},
		})
		require.NoError(t, err, "save %d", i)
	}

	require.NoError(t, repo.PruneSnapshots(ctx, 5))

	count, err := s.Client().ProgressSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	snap, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), snap.Sequence, "latest must survive the prune")
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s, repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.SaveSnapshot(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProgressData{Version: 1},
		})
		require.NoError(t, err, "save %d", i)
	}

	require.NoError(t, repo.PruneSnapshots(ctx, 5))

	count, err := s.Client().ProgressSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "prune with keep > count is a no-op")
}

func TestAppendCompletion(t *testing.T) {
	s, repo := openTestRepo(t)
	ctx := context.Background()

	seq1, err := repo.AppendCompletion(ctx, CompletionEventData{
		Action:        ActionComplete,
		ModuleID:      "greetings",
		NewlyUnlocked: 2,
		SessionID:     "session-1",
	})
	require.NoError(t, err)

	seq2, err := repo.AppendCompletion(ctx, CompletionEventData{
		Action:    ActionReset,
		SessionID: "session-1",
	})
	require.NoError(t, err)
	assert.Greater(t, seq2, seq1, "sequences must increase")

	events, err := s.Client().CompletionEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ActionComplete, events[0].Action)
	assert.Equal(t, "greetings", events[0].ModuleID)
	assert.Equal(t, 2, events[0].NewlyUnlocked)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err, "next %d", i)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_snapshots", "completion_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}
