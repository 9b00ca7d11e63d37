package progression

import "github.com/smehra/lingo/internal/catalog"

// ProgressionPath returns the chain of prerequisites leading up to and
// including the given module, prerequisites first. Depth-first over the
// prerequisite graph; the visited set doubles as cycle guard and dedup, so
// the result is finite and duplicate-free even on cyclic or partially
// invalid input. A module shared by two branches appears once, at its
// first-encountered position. Dangling prerequisite references are skipped;
// only an unknown root ID is an error.
func (e *Engine) ProgressionPath(id string) ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	root, ok := e.cat.Get(id)
	if !ok {
		return nil, &UnknownModuleError{ID: id}
	}

	visited := make(map[string]bool)
	var path []catalog.Module

	var walk func(m catalog.Module)
	walk = func(m catalog.Module) {
		if visited[m.ID] {
			return
		}
		visited[m.ID] = true
		for _, prereqID := range m.Prerequisites {
			if p, ok := e.cat.Get(prereqID); ok {
				walk(p)
			}
		}
		path = append(path, m)
	}
	walk(root)

	return path, nil
}
