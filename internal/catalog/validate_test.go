package catalog

import (
	"strings"
	"testing"
)

func TestValidate_StarterCurriculumPasses(t *testing.T) {
	if err := Validate(starterModules()); err != nil {
		t.Fatalf("starter curriculum validation failed: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	modules := []Module{
		{ID: "a", Unit: 1, Prerequisites: []string{"b"}},
		{ID: "b", Unit: 1, Prerequisites: []string{"a"}},
		{ID: "c", Unit: 1},
	}
	err := Validate(modules)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidate_DetectsDanglingPrereq(t *testing.T) {
	modules := []Module{
		{ID: "a", Unit: 1},
		{ID: "b", Unit: 1, Prerequisites: []string{"nonexistent"}},
	}
	err := Validate(modules)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateID(t *testing.T) {
	modules := []Module{
		{ID: "a", Unit: 1},
		{ID: "a", Unit: 1},
	}
	err := Validate(modules)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidate_RequiresAtLeastOneRoot(t *testing.T) {
	modules := []Module{
		{ID: "a", Unit: 1, Prerequisites: []string{"b"}},
		{ID: "b", Unit: 1, Prerequisites: []string{"a"}},
	}
	err := Validate(modules)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidate_RejectsNonPositiveUnit(t *testing.T) {
	modules := []Module{
		{ID: "a", Unit: 0},
	}
	err := Validate(modules)
	if err == nil {
		t.Fatal("expected error for unit 0, got nil")
	}
	if !strings.Contains(err.Error(), "unit") {
		t.Errorf("error should mention unit, got: %v", err)
	}
}

func TestValidate_RejectsEmptyID(t *testing.T) {
	modules := []Module{
		{ID: "", Unit: 1},
	}
	if err := Validate(modules); err == nil {
		t.Fatal("expected error for empty ID, got nil")
	}
}

func TestValidate_EmptySetIsClean(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Errorf("empty module set should validate, got: %v", err)
	}
}
