package progression

import (
	"testing"

	"github.com/smehra/lingo/internal/catalog"
)

func TestIsUnlocked_NoPrerequisites(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	// A module with no prerequisites is unlocked regardless of completions.
	ok, err := e.IsUnlocked("a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("a1 should be unlocked with empty completion set")
	}

	if err := e.SetCompletedModules([]string{"b1"}); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	ok, _ = e.IsUnlocked("a1")
	if !ok {
		t.Error("a1 should stay unlocked whatever the completion set")
	}
}

func TestIsUnlocked_AllPrerequisitesRequired(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1},
		{ID: "c", Unit: 2, Prerequisites: []string{"a", "b"}},
	}
	e := newTestEngine(t, modules, []string{"a"})

	ok, err := e.IsUnlocked("c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("c should be locked with only one of two prerequisites completed")
	}

	e.SetCompletedModules([]string{"a", "b"})
	ok, _ = e.IsUnlocked("c")
	if !ok {
		t.Error("c should be unlocked with both prerequisites completed")
	}
}

func TestIsUnlocked_UnknownID(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	_, err := e.IsUnlocked("bogus")
	if err == nil {
		t.Fatal("expected error for unknown module, got nil")
	}
	if !IsUnknownModule(err) {
		t.Errorf("got %T, want *UnknownModuleError", err)
	}
}

func TestIsUnlocked_DanglingPrerequisiteNeverSatisfied(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1, Prerequisites: []string{"ghost"}},
	}
	// Even a completion record for the dangling ID must not unlock it.
	e := newTestEngine(t, modules, []string{"ghost"})

	ok, err := e.IsUnlocked("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("module with a dangling prerequisite must stay locked")
	}
}

func TestPartition_CoversCatalog(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	unlocked, _ := e.UnlockedModules()
	locked, _ := e.LockedModules()
	if len(unlocked)+len(locked) != e.Catalog().Len() {
		t.Errorf("unlocked(%d) + locked(%d) != total(%d)",
			len(unlocked), len(locked), e.Catalog().Len())
	}
}

func TestNextAvailableModules_ExcludesCompleted(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	avail, err := e.NextAvailableModules()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(avail); len(got) != 1 || got[0] != "a2" {
		t.Errorf("next available = %v, want [a2]", got)
	}
}

func TestUnlockedSet_Monotonic(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	seen := map[string]bool{}
	order := []string{"a1", "a2", "b1"}
	for _, id := range order {
		unlocked, _ := e.UnlockedModules()
		for _, m := range unlocked {
			seen[m.ID] = true
		}
		if _, err := e.CompleteModule(id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
		// Everything unlocked before must still be unlocked.
		after, _ := e.UnlockedModules()
		afterSet := map[string]bool{}
		for _, m := range after {
			afterSet[m.ID] = true
		}
		for prev := range seen {
			if !afterSet[prev] {
				t.Errorf("module %s re-locked after completing %s", prev, id)
			}
		}
	}
}
