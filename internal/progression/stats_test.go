package progression

import (
	"testing"

	"github.com/smehra/lingo/internal/catalog"
)

func TestProgressionStats_Counts(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	stats, err := e.ProgressionStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalModules != 3 {
		t.Errorf("total = %d, want 3", stats.TotalModules)
	}
	if stats.CompletedModules != 1 {
		t.Errorf("completed = %d, want 1", stats.CompletedModules)
	}
	if stats.UnlockedModules != 2 {
		t.Errorf("unlocked = %d, want 2", stats.UnlockedModules)
	}
	if stats.LockedModules != 1 {
		t.Errorf("locked = %d, want 1", stats.LockedModules)
	}
	if stats.UnlockedModules+stats.LockedModules != stats.TotalModules {
		t.Error("unlocked + locked should equal total")
	}
	// round(1/3*100) = 33
	if stats.CompletionPercentage != 33 {
		t.Errorf("percentage = %d, want 33", stats.CompletionPercentage)
	}
}

func TestProgressionStats_PercentageRoundsHalfUp(t *testing.T) {
	// 2 of 3 completed: round(66.67) = 67.
	e := newTestEngine(t, chainModules(), []string{"a1", "a2"})

	stats, _ := e.ProgressionStats()
	if stats.CompletionPercentage != 67 {
		t.Errorf("percentage = %d, want 67", stats.CompletionPercentage)
	}
}

func TestProgressionStats_EmptyCatalog(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	stats, err := e.ProgressionStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CompletionPercentage != 0 {
		t.Errorf("percentage = %d for empty catalog, want 0", stats.CompletionPercentage)
	}
	if len(stats.Units) != 0 {
		t.Errorf("units = %v for empty catalog, want none", stats.Units)
	}
}

func TestProgressionStats_UnitsAscending(t *testing.T) {
	modules := []catalog.Module{
		{ID: "c1", Unit: 3},
		{ID: "a1", Unit: 1},
		{ID: "b1", Unit: 2},
	}
	e := newTestEngine(t, modules, nil)

	stats, _ := e.ProgressionStats()
	if len(stats.Units) != 3 {
		t.Fatalf("got %d unit entries, want 3", len(stats.Units))
	}
	for i := 1; i < len(stats.Units); i++ {
		if stats.Units[i].Unit < stats.Units[i-1].Unit {
			t.Errorf("unit %d appears after unit %d", stats.Units[i].Unit, stats.Units[i-1].Unit)
		}
	}
}

func TestUnitCompletionStatus(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	us, err := e.UnitCompletionStatus(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := UnitStats{Unit: 1, Total: 2, Completed: 1, Percentage: 50, AllCompleted: false}
	if us != want {
		t.Errorf("unit 1 = %+v, want %+v", us, want)
	}
}

func TestUnitCompletionStatus_AllCompleted(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1", "a2"})

	us, _ := e.UnitCompletionStatus(1)
	if !us.AllCompleted {
		t.Error("unit 1 should be all-completed")
	}
	if us.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", us.Percentage)
	}
}

func TestUnitCompletionStatus_EmptyUnitNeverAllCompleted(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	us, err := e.UnitCompletionStatus(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if us.AllCompleted {
		t.Error("an empty unit must never be all-completed")
	}
	if us.Total != 0 || us.Completed != 0 || us.Percentage != 0 {
		t.Errorf("empty unit = %+v, want zeros", us)
	}
}

func TestModulesByUnit(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	modules, err := e.ModulesByUnit(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Errorf("unit 1 has %d modules, want 2", len(modules))
	}

	modules, _ = e.ModulesByUnit(9)
	if len(modules) != 0 {
		t.Errorf("unknown unit has %d modules, want 0", len(modules))
	}
}
