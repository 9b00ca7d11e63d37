package progression

import (
	"reflect"
	"testing"

	"github.com/smehra/lingo/internal/catalog"
)

func TestProgressionPath_Chain(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	path, err := e.ProgressionPath("b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"a1", "a2", "b1"}) {
		t.Errorf("path = %v, want [a1 a2 b1]", got)
	}
}

func TestProgressionPath_SingleModule(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	path, err := e.ProgressionPath("a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"a1"}) {
		t.Errorf("path = %v, want [a1]", got)
	}
}

func TestProgressionPath_SharedPrerequisiteAppearsOnce(t *testing.T) {
	// Diamond: d requires b and c, both of which require a.
	modules := []catalog.Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1, Prerequisites: []string{"a"}},
		{ID: "c", Unit: 1, Prerequisites: []string{"a"}},
		{ID: "d", Unit: 2, Prerequisites: []string{"b", "c"}},
	}
	e := newTestEngine(t, modules, nil)

	path, err := e.ProgressionPath("d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a appears once, at its first-encountered (leftmost) position.
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("path = %v, want [a b c d]", got)
	}
}

func TestProgressionPath_CycleTerminates(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1, Prerequisites: []string{"b"}},
		{ID: "b", Unit: 1, Prerequisites: []string{"a"}},
	}
	e := newTestEngine(t, modules, nil)

	path, err := e.ProgressionPath("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Finite and duplicate-free.
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("path = %v, want [b a]", got)
	}
}

func TestProgressionPath_SelfReference(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1, Prerequisites: []string{"a"}},
	}
	e := newTestEngine(t, modules, nil)

	path, err := e.ProgressionPath("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("path = %v, want [a]", got)
	}
}

func TestProgressionPath_DanglingPrerequisiteSkipped(t *testing.T) {
	modules := []catalog.Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1, Prerequisites: []string{"ghost", "a"}},
	}
	e := newTestEngine(t, modules, nil)

	path, err := e.ProgressionPath("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := moduleIDs(path); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("path = %v, want [a b]", got)
	}
}

func TestProgressionPath_UnknownRootIsError(t *testing.T) {
	e := newTestEngine(t, chainModules(), nil)

	_, err := e.ProgressionPath("ghost")
	if err == nil {
		t.Fatal("expected error for unknown root module, got nil")
	}
	if !IsUnknownModule(err) {
		t.Errorf("got %T, want *UnknownModuleError", err)
	}
}
