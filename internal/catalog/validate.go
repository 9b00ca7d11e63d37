package catalog

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a module set and returns a combined
// error describing all problems found, or nil if the set is clean.
//
// These checks are advisory: the progression engine tolerates dangling
// prerequisites and cycles at query time, but authoring tools should treat
// any finding here as a content bug.
func Validate(modules []Module) error {
	var errs []string

	idSet := make(map[string]bool, len(modules))

	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, "module with empty ID")
			continue
		}
		if idSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		idSet[m.ID] = true

		if m.Unit <= 0 {
			errs = append(errs, fmt.Sprintf("module %q: unit must be > 0, got %d", m.ID, m.Unit))
		}
	}

	// Dangling prerequisite references.
	for _, m := range modules {
		for _, prereqID := range m.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("module %q references nonexistent prerequisite %q", m.ID, prereqID))
			}
		}
	}

	// Cycle detection via Kahn's algorithm: any module never reaching
	// in-degree zero sits on (or behind) a cycle.
	inDegree := make(map[string]int, len(modules))
	adjList := make(map[string][]string)
	for _, m := range modules {
		inDegree[m.ID] = len(m.Prerequisites)
		for _, prereqID := range m.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], m.ID)
		}
	}

	var queue []string
	for _, m := range modules {
		if inDegree[m.ID] == 0 {
			queue = append(queue, m.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(modules) {
		var cycleNodes []string
		for _, m := range modules {
			if inDegree[m.ID] > 0 {
				cycleNodes = append(cycleNodes, m.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving modules: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one entry point.
	hasRoot := false
	for _, m := range modules {
		if len(m.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(modules) > 0 && !hasRoot {
		errs = append(errs, "no root modules found (at least one module must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("module catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
