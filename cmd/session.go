package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/smehra/lingo/internal/catalog"
	"github.com/smehra/lingo/internal/progression"
	"github.com/smehra/lingo/internal/store"
	"github.com/spf13/cobra"
)

// snapshotKeep bounds how many progress snapshots survive a prune.
const snapshotKeep = 20

// session bundles the open store, the loaded catalog, and an engine
// initialized from the latest persisted snapshot. Every command opens one,
// runs its queries or mutation, and closes it.
type session struct {
	store  *store.Store
	repo   store.ProgressRepo
	engine *progression.Engine
	id     string // stamped on audit events from this invocation
}

// openSession wires the full stack for one command invocation.
func openSession(cmd *cobra.Command) (*session, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repo, err := st.ProgressRepo()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("open progress repo: %w", err)
	}

	cat, err := resolveCatalog(cmd)
	if err != nil {
		st.Close()
		return nil, err
	}

	var completed []string
	snap, err := repo.LatestSnapshot(cmd.Context())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress snapshot: %w", err)
	}
	if snap != nil {
		completed = snap.Data.CompletedIDs
	}

	eng := progression.NewEngine()
	if err := eng.Initialize(cat, completed); err != nil {
		st.Close()
		return nil, fmt.Errorf("initialize engine: %w", err)
	}

	return &session{
		store:  st,
		repo:   repo,
		engine: eng,
		id:     uuid.New().String(),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// persist writes the engine's current completion set as a new snapshot tied
// to the given event sequence, then prunes old snapshots.
func (s *session) persist(ctx context.Context, seq int64) error {
	ids, err := s.engine.CompletedModules()
	if err != nil {
		return err
	}
	err = s.repo.SaveSnapshot(ctx, &store.ProgressSnapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      store.ProgressData{Version: 1, CompletedIDs: ids},
	})
	if err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	return s.repo.PruneSnapshots(ctx, snapshotKeep)
}

// resolveCatalog loads module definitions using --modules flag (highest
// priority), then LINGO_MODULES env var, then the built-in starter
// curriculum. Structural problems in a loaded file are warnings, not errors:
// the engine defends against them at query time.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("modules")
	if path == "" {
		path = os.Getenv("LINGO_MODULES")
	}
	if path == "" {
		return catalog.Starter(), nil
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load modules from %s: %w", path, err)
	}
	if err := catalog.Validate(cat.Modules()); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	return cat, nil
}
