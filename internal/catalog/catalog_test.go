package catalog

import (
	"reflect"
	"testing"
)

func testModules() []Module {
	return []Module{
		{ID: "a1", Name: "Alpha", Unit: 1},
		{ID: "a2", Name: "Beta", Unit: 1, Prerequisites: []string{"a1"}},
		{ID: "b1", Name: "Gamma", Unit: 2, Prerequisites: []string{"a2"}},
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]Module{
		{ID: "a", Unit: 1},
		{ID: "a", Unit: 2},
	})
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("len = %d, want 0", c.Len())
	}
	if len(c.Units()) != 0 {
		t.Errorf("units = %v, want none", c.Units())
	}
}

func TestGet(t *testing.T) {
	c, err := New(testModules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := c.Get("a2")
	if !ok {
		t.Fatal("a2 should exist")
	}
	if m.Name != "Beta" {
		t.Errorf("name = %q, want Beta", m.Name)
	}

	if _, ok := c.Get("nope"); ok {
		t.Error("unknown ID should not be found")
	}
	if c.Has("nope") {
		t.Error("Has should be false for unknown ID")
	}
}

func TestModules_PreservesInputOrder(t *testing.T) {
	c, _ := New(testModules())

	var ids []string
	for _, m := range c.Modules() {
		ids = append(ids, m.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a1", "a2", "b1"}) {
		t.Errorf("order = %v, want input order", ids)
	}
}

func TestModules_ReturnsCopy(t *testing.T) {
	c, _ := New(testModules())

	a := c.Modules()
	a[0].Name = "MUTATED"
	b := c.Modules()
	if b[0].Name == "MUTATED" {
		t.Error("Modules did not return a defensive copy")
	}
}

func TestByUnit(t *testing.T) {
	c, _ := New(testModules())

	unit1 := c.ByUnit(1)
	if len(unit1) != 2 {
		t.Errorf("unit 1 has %d modules, want 2", len(unit1))
	}
	if len(c.ByUnit(9)) != 0 {
		t.Error("unknown unit should be empty")
	}
}

func TestUnits_Ascending(t *testing.T) {
	c, _ := New([]Module{
		{ID: "x", Unit: 3},
		{ID: "y", Unit: 1},
		{ID: "z", Unit: 2},
	})
	if got := c.Units(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("units = %v, want [1 2 3]", got)
	}
}
