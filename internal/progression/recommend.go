package progression

import (
	"sort"

	"github.com/smehra/lingo/internal/catalog"
)

// NextRecommendedModule picks the single best module to attempt next from
// the unlocked, not-yet-completed pool, or nil when the pool is empty.
//
// Ordering: earlier units first, then fewer prerequisites (modules at the
// frontier of the graph beat ones sitting on deep chains). The sort is
// stable, so exact ties fall back to catalog order and the result is
// deterministic for a given catalog and completion set.
func (e *Engine) NextRecommendedModule() (*catalog.Module, error) {
	pool, err := e.NextAvailableModules()
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Unit != pool[j].Unit {
			return pool[i].Unit < pool[j].Unit
		}
		return len(pool[i].Prerequisites) < len(pool[j].Prerequisites)
	})

	return &pool[0], nil
}
