package loader

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// itemSchema describes the shape of one question record. Every field is
// optional and null counts as missing; only the types of present fields are
// checked. "answer" is left untyped: a non-integer answer falls back to the
// default instead of failing.
var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type": []any{"integer", "string", "null"},
		},
		"type": map[string]any{
			"type": []any{"string", "null"},
		},
		"question": map[string]any{
			"type": []any{"string", "null"},
		},
		"options": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
		"explanation": map[string]any{
			"type": []any{"string", "null"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// questionSchema returns the compiled item schema, compiling it on first use.
func questionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compileSchema("question-item", itemSchema)
	})
	return compiled, compileErr
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants plain decoded JSON values, so round-trip the
	// definition through encoding/json.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return s, nil
}
