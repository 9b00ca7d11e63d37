package progression

import (
	"errors"
	"reflect"
	"testing"

	"github.com/smehra/lingo/internal/catalog"
)

// newTestEngine builds an initialized engine over the given modules.
func newTestEngine(t *testing.T, modules []catalog.Module, completed []string) *Engine {
	t.Helper()
	cat, err := catalog.New(modules)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	e := NewEngine()
	if err := e.Initialize(cat, completed); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return e
}

// chainModules is a three-module chain: a1 -> a2 -> b1.
func chainModules() []catalog.Module {
	return []catalog.Module{
		{ID: "a1", Unit: 1},
		{ID: "a2", Unit: 1, Prerequisites: []string{"a1"}},
		{ID: "b1", Unit: 2, Prerequisites: []string{"a2"}},
	}
}

func moduleIDs(modules []catalog.Module) []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

func TestEngine_NotInitialized(t *testing.T) {
	e := NewEngine()

	if _, err := e.IsUnlocked("a1"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("IsUnlocked: got %v, want ErrNotInitialized", err)
	}
	if _, err := e.UnlockedModules(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("UnlockedModules: got %v, want ErrNotInitialized", err)
	}
	if _, err := e.CompleteModule("a1"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("CompleteModule: got %v, want ErrNotInitialized", err)
	}
	if _, err := e.ProgressionStats(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ProgressionStats: got %v, want ErrNotInitialized", err)
	}
	if _, err := e.ProgressionPath("a1"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ProgressionPath: got %v, want ErrNotInitialized", err)
	}
	if err := e.Reset(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Reset: got %v, want ErrNotInitialized", err)
	}
}

func TestInitialize_NilCatalog(t *testing.T) {
	e := NewEngine()
	if err := e.Initialize(nil, nil); err == nil {
		t.Fatal("expected error for nil catalog, got nil")
	}
}

func TestCompleteModule_ReturnsNewlyUnlocked(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	unlocked, err := e.CompleteModule("a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(unlocked); !reflect.DeepEqual(got, []string{"a2"}) {
		t.Errorf("newly unlocked = %v, want [a2]", got)
	}

	unlocked, err = e.CompleteModule("a2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(unlocked); !reflect.DeepEqual(got, []string{"b1"}) {
		t.Errorf("newly unlocked = %v, want [b1]", got)
	}

	// Completing the last module unlocks nothing.
	unlocked, err = e.CompleteModule("b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("newly unlocked = %v, want empty", moduleIDs(unlocked))
	}
}

func TestCompleteModule_Idempotent(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	if _, err := e.CompleteModule("a1"); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	statsBefore, _ := e.ProgressionStats()

	unlocked, err := e.CompleteModule("a1")
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("repeat complete returned %v, want empty", moduleIDs(unlocked))
	}

	statsAfter, _ := e.ProgressionStats()
	if !reflect.DeepEqual(statsBefore, statsAfter) {
		t.Errorf("stats changed across no-op complete: %+v vs %+v", statsBefore, statsAfter)
	}
}

func TestCompleteModule_UnknownID(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	_, err := e.CompleteModule("bogus")
	if err == nil {
		t.Fatal("expected error for unknown module, got nil")
	}
	if !IsUnknownModule(err) {
		t.Errorf("got %T, want *UnknownModuleError", err)
	}
}

func TestCompleteModule_MultipleUnlocks(t *testing.T) {
	// Both x and y hang off a single root.
	modules := []catalog.Module{
		{ID: "root", Unit: 1},
		{ID: "x", Unit: 1, Prerequisites: []string{"root"}},
		{ID: "y", Unit: 1, Prerequisites: []string{"root"}},
	}
	e := newTestEngine(t, modules, nil)

	unlocked, err := e.CompleteModule("root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(unlocked); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("newly unlocked = %v, want [x y] in catalog order", got)
	}
}

func TestReset_EmptiesCompletionSet(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1", "a2"})

	if err := e.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	ids, err := e.CompletedModules()
	if err != nil {
		t.Fatalf("completed modules: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("completed after reset = %v, want empty", ids)
	}

	// Catalog untouched.
	if e.Catalog().Len() != 3 {
		t.Errorf("catalog len = %d after reset, want 3", e.Catalog().Len())
	}
}

func TestSetCompletedModules_RawReplace(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	if err := e.SetCompletedModules([]string{"a2"}); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	ids, _ := e.CompletedModules()
	if !reflect.DeepEqual(ids, []string{"a2"}) {
		t.Errorf("completed = %v, want [a2] (replace, not union)", ids)
	}
}

func TestCompletedModules_PreservesUnknownIDs(t *testing.T) {
	// Persisted progress can reference modules removed from the catalog.
	e := newTestEngine(t, chainModules(), []string{"a1", "retired-module"})

	ids, err := e.CompletedModules()
	if err != nil {
		t.Fatalf("completed modules: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"a1", "retired-module"}) {
		t.Errorf("completed = %v, want [a1 retired-module]", ids)
	}
}

func TestModulePrerequisites(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1},
		// Duplicate and dangling references are tolerated.
		{ID: "c", Unit: 2, Prerequisites: []string{"a", "ghost", "b", "a"}},
	}
	e := newTestEngine(t, modules, nil)

	prereqs, err := e.ModulePrerequisites("c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(prereqs); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("prerequisites = %v, want [a b]", got)
	}

	if _, err := e.ModulePrerequisites("nope"); !IsUnknownModule(err) {
		t.Errorf("got %v, want UnknownModuleError", err)
	}
}

func TestMissingPrerequisites(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1},
		{ID: "c", Unit: 2, Prerequisites: []string{"a", "ghost", "b"}},
	}
	e := newTestEngine(t, modules, []string{"a"})

	missing, err := e.MissingPrerequisites("c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Dangling "ghost" is permanently unsatisfied and must be reported.
	if !reflect.DeepEqual(missing, []string{"ghost", "b"}) {
		t.Errorf("missing = %v, want [ghost b]", missing)
	}

	if _, err := e.MissingPrerequisites("nope"); !IsUnknownModule(err) {
		t.Errorf("got %v, want UnknownModuleError", err)
	}
}

// TestScenario replays the end-to-end scenario: a fresh three-module chain,
// then one completion, checking every derived view along the way.
func TestScenario(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	unlocked, _ := e.UnlockedModules()
	if got := moduleIDs(unlocked); !reflect.DeepEqual(got, []string{"a1"}) {
		t.Errorf("unlocked = %v, want [a1]", got)
	}
	locked, _ := e.LockedModules()
	if got := moduleIDs(locked); !reflect.DeepEqual(got, []string{"a2", "b1"}) {
		t.Errorf("locked = %v, want [a2 b1]", got)
	}
	stats, _ := e.ProgressionStats()
	if stats.CompletionPercentage != 0 {
		t.Errorf("completion percentage = %d, want 0", stats.CompletionPercentage)
	}

	newly, err := e.CompleteModule("a1")
	if err != nil {
		t.Fatalf("complete a1: %v", err)
	}
	if got := moduleIDs(newly); !reflect.DeepEqual(got, []string{"a2"}) {
		t.Errorf("newly unlocked = %v, want [a2]", got)
	}

	unlocked, _ = e.UnlockedModules()
	if got := moduleIDs(unlocked); !reflect.DeepEqual(got, []string{"a1", "a2"}) {
		t.Errorf("unlocked = %v, want [a1 a2]", got)
	}

	us, _ := e.UnitCompletionStatus(1)
	want := UnitStats{Unit: 1, Total: 2, Completed: 1, Percentage: 50, AllCompleted: false}
	if us != want {
		t.Errorf("unit 1 status = %+v, want %+v", us, want)
	}
}
