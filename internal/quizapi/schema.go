package quizapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas per question type. The API is not under our control, so
// every 2xx body is checked before it touches session state.
var (
	choiceQuestionSchema = map[string]any{
		"type":     "object",
		"required": []any{"question", "answer", "options"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
			"topic":     map[string]any{"type": "string"},
			"paragraph": map[string]any{"type": "string"},
		},
	}

	structuredQuestionSchema = map[string]any{
		"type":     "object",
		"required": []any{"question"},
		"properties": map[string]any{
			"question":  map[string]any{"type": "string", "minLength": 1},
			"answer":    map[string]any{"type": "string"},
			"topic":     map[string]any{"type": "string"},
			"paragraph": map[string]any{"type": "string"},
		},
	}
)

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody validates a response body against the named schema.
func validateBody(endpoint, name string, def map[string]any, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformedResponse{Endpoint: endpoint, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return &ErrMalformedResponse{Endpoint: endpoint, Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrMalformedResponse{Endpoint: endpoint, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
