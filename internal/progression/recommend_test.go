package progression

import (
	"testing"

	"github.com/smehra/lingo/internal/catalog"
)

func TestNextRecommendedModule_EmptyPool(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1", "a2", "b1"})

	m, err := e.NextRecommendedModule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("got %q, want nil when everything is completed", m.ID)
	}
}

func TestNextRecommendedModule_EarlierUnitWins(t *testing.T) {
	modules := []catalog.Module{
		{ID: "later", Unit: 2},
		{ID: "earlier", Unit: 1},
	}
	e := newTestEngine(t, modules, nil)

	m, err := e.NextRecommendedModule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.ID != "earlier" {
		t.Errorf("got %v, want earlier (lower unit)", m)
	}
}

func TestNextRecommendedModule_FewerPrerequisitesWins(t *testing.T) {
	// Same unit, both unlocked: deep (2 prereqs, satisfied) vs shallow (0).
	modules := []catalog.Module{
		{ID: "p1", Unit: 1},
		{ID: "p2", Unit: 1},
		{ID: "deep", Unit: 2, Prerequisites: []string{"p1", "p2"}},
		{ID: "shallow", Unit: 2},
	}
	e := newTestEngine(t, modules, []string{"p1", "p2"})

	m, err := e.NextRecommendedModule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.ID != "shallow" {
		t.Errorf("got %v, want shallow (fewer prerequisites)", m)
	}
}

func TestNextRecommendedModule_TieFallsBackToCatalogOrder(t *testing.T) {
	modules := []catalog.Module{
		{ID: "first", Unit: 1},
		{ID: "second", Unit: 1},
	}
	e := newTestEngine(t, modules, nil)

	m, err := e.NextRecommendedModule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.ID != "first" {
		t.Errorf("got %v, want first (catalog order on exact tie)", m)
	}
}

func TestNextRecommendedModule_SkipsLockedAndCompleted(t *testing.T) {
	e := newTestEngine(t, chainModules(), []string{"a1"})

	m, err := e.NextRecommendedModule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a1 is completed, b1 is locked; only a2 is in the pool.
	if m == nil || m.ID != "a2" {
		t.Errorf("got %v, want a2", m)
	}
}
