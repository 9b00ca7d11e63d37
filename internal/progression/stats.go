package progression

import (
	"math"

	"github.com/smehra/lingo/internal/catalog"
)

// UnitStats reports completion figures for a single unit. AllCompleted is
// true only when the unit is non-empty and fully completed; an empty unit
// is never "all completed".
type UnitStats struct {
	Unit         int
	Total        int
	Completed    int
	Percentage   int
	AllCompleted bool
}

// Stats reports global completion figures plus a per-unit breakdown,
// ascending by unit number.
type Stats struct {
	TotalModules         int
	CompletedModules     int
	UnlockedModules      int
	LockedModules        int
	CompletionPercentage int
	Units                []UnitStats
}

// percentage returns round(completed/total*100), and 0 for an empty total.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ProgressionStats derives global and per-unit statistics from the current
// catalog and completion set. Nothing is memoized: the figures are always
// consistent with the latest mutation.
func (e *Engine) ProgressionStats() (Stats, error) {
	if err := e.ready(); err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalModules: e.cat.Len()}
	for _, m := range e.cat.Modules() {
		if e.completed[m.ID] {
			stats.CompletedModules++
		}
		if e.unlocked(m) {
			stats.UnlockedModules++
		} else {
			stats.LockedModules++
		}
	}
	stats.CompletionPercentage = percentage(stats.CompletedModules, stats.TotalModules)

	for _, unit := range e.cat.Units() {
		us, _ := e.UnitCompletionStatus(unit)
		stats.Units = append(stats.Units, us)
	}
	return stats, nil
}

// UnitCompletionStatus derives completion figures for one unit. Units are
// grouping keys, not caller-supplied IDs, so an unknown unit yields zeros
// rather than an error.
func (e *Engine) UnitCompletionStatus(unit int) (UnitStats, error) {
	if err := e.ready(); err != nil {
		return UnitStats{}, err
	}

	us := UnitStats{Unit: unit}
	for _, m := range e.cat.ByUnit(unit) {
		us.Total++
		if e.completed[m.ID] {
			us.Completed++
		}
	}
	us.Percentage = percentage(us.Completed, us.Total)
	us.AllCompleted = us.Total > 0 && us.Completed == us.Total
	return us, nil
}

// ModulesByUnit returns all modules in the given unit, in catalog order.
func (e *Engine) ModulesByUnit(unit int) ([]catalog.Module, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.cat.ByUnit(unit), nil
}
