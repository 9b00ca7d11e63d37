package progression

import "github.com/smehra/lingo/internal/catalog"

// unlocked reports whether every prerequisite of m is satisfied. A module
// with no prerequisites is always unlocked. A prerequisite ID that does not
// exist in the catalog is permanently unsatisfied: a bad authored reference
// must never silently unlock a module.
func (e *Engine) unlocked(m catalog.Module) bool {
	for _, prereqID := range m.Prerequisites {
		if !e.cat.Has(prereqID) {
			return false
		}
		if !e.completed[prereqID] {
			return false
		}
	}
	return true
}

// lockedSet returns the IDs of all currently locked modules.
func (e *Engine) lockedSet() map[string]bool {
	locked := make(map[string]bool)
	for _, m := range e.cat.Modules() {
		if !e.unlocked(m) {
			locked[m.ID] = true
		}
	}
	return locked
}

// IsUnlocked reports whether all prerequisites of the given module are in
// the completion set. Unknown IDs are an error, never a silent false.
func (e *Engine) IsUnlocked(id string) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	m, ok := e.cat.Get(id)
	if !ok {
		return false, &UnknownModuleError{ID: id}
	}
	return e.unlocked(m), nil
}

// UnlockedModules returns all modules whose prerequisites are satisfied,
// in catalog order.
func (e *Engine) UnlockedModules() ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	var result []catalog.Module
	for _, m := range e.cat.Modules() {
		if e.unlocked(m) {
			result = append(result, m)
		}
	}
	return result, nil
}

// LockedModules returns all modules with at least one unsatisfied
// prerequisite, in catalog order.
func (e *Engine) LockedModules() ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	var result []catalog.Module
	for _, m := range e.cat.Modules() {
		if !e.unlocked(m) {
			result = append(result, m)
		}
	}
	return result, nil
}

// NextAvailableModules returns the modules that are unlocked but not yet
// completed, in catalog order.
func (e *Engine) NextAvailableModules() ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	var result []catalog.Module
	for _, m := range e.cat.Modules() {
		if !e.completed[m.ID] && e.unlocked(m) {
			result = append(result, m)
		}
	}
	return result, nil
}
