package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"modules": [
			{"id": "greetings", "name": "Greetings", "unit": 1},
			{"id": "numbers", "unit": 1, "prerequisites": ["greetings"]}
		]
	}`)
	modules, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(modules))
	}
	if modules[0].ID != "greetings" || modules[0].Unit != 1 {
		t.Errorf("first module = %+v", modules[0])
	}
	if len(modules[1].Prerequisites) != 1 || modules[1].Prerequisites[0] != "greetings" {
		t.Errorf("second module prerequisites = %v", modules[1].Prerequisites)
	}
}

func TestParse_ExtraKeysAreOpaquePayload(t *testing.T) {
	data := []byte(`{
		"modules": [
			{"id": "g", "unit": 1, "audio": "g.mp3", "illustration": "g.svg"}
		]
	}`)
	modules, err := Parse(data)
	if err != nil {
		t.Fatalf("display payload should be tolerated: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("got %d modules, want 1", len(modules))
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing modules key", `{}`},
		{"missing id", `{"modules": [{"unit": 1}]}`},
		{"empty id", `{"modules": [{"id": "", "unit": 1}]}`},
		{"missing unit", `{"modules": [{"id": "a"}]}`},
		{"zero unit", `{"modules": [{"id": "a", "unit": 0}]}`},
		{"unit not integer", `{"modules": [{"id": "a", "unit": "one"}]}`},
		{"prereq not string", `{"modules": [{"id": "a", "unit": 1, "prerequisites": [1]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("expected schema validation error for %s", tt.name)
			}
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	content := `{"modules": [{"id": "a", "unit": 1}, {"id": "b", "unit": 2, "prerequisites": ["a"]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("len = %d, want 2", cat.Len())
	}
	if !cat.Has("b") {
		t.Error("catalog should contain b")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_DuplicateIDRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	content := `{"modules": [{"id": "a", "unit": 1}, {"id": "a", "unit": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for duplicate IDs, got nil")
	}
}

func TestStarter(t *testing.T) {
	c := Starter()
	if c.Len() != 30 {
		t.Errorf("starter has %d modules, want 30", c.Len())
	}
	units := c.Units()
	if len(units) != 6 {
		t.Errorf("starter has %d units, want 6", len(units))
	}
}
