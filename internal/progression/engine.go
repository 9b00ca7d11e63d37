package progression

import (
	"errors"
	"sort"

	"github.com/smehra/lingo/internal/catalog"
)

// Engine tracks a learner's progression through a module catalog: which
// modules are unlocked, which are completed, and what to attempt next.
//
// Unlocked/locked status, paths, and statistics are never stored — they are
// derived from (catalog, completion set) on every call, so they can never
// drift out of sync with the completions that determine them.
//
// An Engine has a single logical owner and does no internal locking; callers
// in concurrent environments must serialize Initialize, CompleteModule,
// SetCompletedModules, and Reset themselves.
type Engine struct {
	cat       *catalog.Catalog
	completed map[string]bool
}

// NewEngine returns an uninitialized engine. Every operation fails with
// ErrNotInitialized until Initialize is called.
func NewEngine() *Engine {
	return &Engine{}
}

// Initialize loads a catalog snapshot and a previously persisted set of
// completed module IDs. Reloading module definitions means calling
// Initialize again; the catalog is immutable for the session.
func (e *Engine) Initialize(cat *catalog.Catalog, completedIDs []string) error {
	if cat == nil {
		return errors.New("initialize: nil catalog")
	}
	e.cat = cat
	e.completed = make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		e.completed[id] = true
	}
	return nil
}

// ready reports whether Initialize has been called.
func (e *Engine) ready() error {
	if e.cat == nil {
		return ErrNotInitialized
	}
	return nil
}

// CompleteModule marks a module as completed and returns the modules whose
// status flipped from locked to unlocked as a consequence. Completing an
// already-completed module is a no-op returning nil, so duplicate UI events
// and retries are harmless.
func (e *Engine) CompleteModule(id string) ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if !e.cat.Has(id) {
		return nil, &UnknownModuleError{ID: id}
	}
	if e.completed[id] {
		return nil, nil
	}

	lockedBefore := e.lockedSet()
	e.completed[id] = true

	var unlocked []catalog.Module
	for _, m := range e.cat.Modules() {
		if lockedBefore[m.ID] && e.unlocked(m) {
			unlocked = append(unlocked, m)
		}
	}
	return unlocked, nil
}

// Reset empties the completion set. The catalog is untouched.
func (e *Engine) Reset() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.completed = make(map[string]bool)
	return nil
}

// SetCompletedModules replaces the completion set wholesale with the given
// IDs. This is a raw replace, not a union: the caller passes the full
// authoritative set, typically after reloading persisted progress.
func (e *Engine) SetCompletedModules(ids []string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.completed = make(map[string]bool, len(ids))
	for _, id := range ids {
		e.completed[id] = true
	}
	return nil
}

// CompletedModules returns the IDs in the completion set, sorted ascending.
// The set may contain IDs absent from the current catalog (persisted
// progress can outlive a module definition); they are preserved verbatim.
func (e *Engine) CompletedModules() ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(e.completed))
	for id := range e.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// IsCompleted reports whether the given module has been completed.
func (e *Engine) IsCompleted(id string) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	if !e.cat.Has(id) {
		return false, &UnknownModuleError{ID: id}
	}
	return e.completed[id], nil
}

// Catalog returns the catalog loaded at Initialize, or nil before that.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// ModulePrerequisites returns the direct prerequisites of a module that
// exist in the catalog, in declaration order, first occurrence only.
func (e *Engine) ModulePrerequisites(id string) ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	m, ok := e.cat.Get(id)
	if !ok {
		return nil, &UnknownModuleError{ID: id}
	}

	seen := make(map[string]bool, len(m.Prerequisites))
	result := make([]catalog.Module, 0, len(m.Prerequisites))
	for _, prereqID := range m.Prerequisites {
		if seen[prereqID] {
			continue
		}
		seen[prereqID] = true
		if p, ok := e.cat.Get(prereqID); ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// MissingPrerequisites returns the prerequisite IDs of a module that are not
// yet satisfied, in declaration order. Dangling references are included:
// they can never be satisfied and the caller should see what is blocking
// the module.
func (e *Engine) MissingPrerequisites(id string) ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	m, ok := e.cat.Get(id)
	if !ok {
		return nil, &UnknownModuleError{ID: id}
	}

	seen := make(map[string]bool, len(m.Prerequisites))
	var missing []string
	for _, prereqID := range m.Prerequisites {
		if seen[prereqID] {
			continue
		}
		seen[prereqID] = true
		if !e.cat.Has(prereqID) || !e.completed[prereqID] {
			missing = append(missing, prereqID)
		}
	}
	return missing, nil
}
