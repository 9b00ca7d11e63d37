package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// modulesSchema is the JSON Schema every module-definition document must
// satisfy before decoding. Unknown keys are allowed so authoring tools can
// attach display payload (audio refs, illustrations) the engine ignores.
const modulesSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["modules"],
	"properties": {
		"modules": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "unit"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string"},
					"description": {"type": "string"},
					"unit": {"type": "integer", "minimum": 1},
					"prerequisites": {
						"type": "array",
						"items": {"type": "string", "minLength": 1}
					}
				}
			}
		}
	}
}`

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// getCompiledSchema compiles the embedded module schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(modulesSchema))
		if err != nil {
			compileSchemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://modules.json"
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaErr
}

// moduleDocument is the top-level shape of a module-definition file.
type moduleDocument struct {
	Modules []Module `json:"modules"`
}

// Parse validates raw JSON against the module schema and decodes it into
// a module slice, preserving document order.
func Parse(data []byte) ([]Module, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile module schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("module definitions failed schema validation: %w", err)
	}

	var doc moduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode module definitions: %w", err)
	}
	return doc.Modules, nil
}

// Load reads, validates, and decodes a module-definition document into a
// catalog.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read module definitions: %w", err)
	}
	modules, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(modules)
}

// LoadFile loads a catalog from a module-definition file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open module definitions: %w", err)
	}
	defer f.Close()
	return Load(f)
}
