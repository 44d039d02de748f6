package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func mcqSchema() *Schema {
	return &Schema{
		Name: "test-mcq",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"question", "answer", "options"},
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_ValidPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Capital of France?",
		"answer": "B. Paris",
		"options": ["A. London", "B. Paris"]
	}`)
	if err := validateResponse(mcqSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"question": "q"}`)
	err := validateResponse(mcqSchema(), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(mcqSchema(), json.RawMessage(`{broken`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_CompiledSchemaIsCached(t *testing.T) {
	s := mcqSchema()
	raw := json.RawMessage(`{"question": "q", "answer": "a", "options": ["A. x"]}`)

	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("schema not cached after first use")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
