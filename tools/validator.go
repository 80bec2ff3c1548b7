package tools

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaValidator handles JSON schema validation for tool argument payloads.
type SchemaValidator struct {
	cache map[string]*gojsonschema.Schema
}

// NewSchemaValidator creates a new schema validator with an empty cache.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		cache: make(map[string]*gojsonschema.Schema),
	}
}

// ValidateArgs validates a JSON-encoded argument payload against the tool's
// input schema. Unknown tool names are rejected: a generated example must
// never invoke a tool the runtime does not ship.
func (sv *SchemaValidator) ValidateArgs(name string, args json.RawMessage) error {
	descriptor, ok := Lookup(name)
	if !ok {
		return &ValidationError{Tool: name, Detail: "unknown tool"}
	}

	schema, err := sv.getSchema(string(descriptor.InputSchema))
	if err != nil {
		return fmt.Errorf("invalid input schema for tool %s: %w", name, err)
	}

	argsLoader := gojsonschema.NewBytesLoader(args)
	result, err := schema.Validate(argsLoader)
	if err != nil {
		return fmt.Errorf("validation error for tool %s: %w", name, err)
	}

	if !result.Valid() {
		errors := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errors[i] = desc.String()
		}
		return &ValidationError{
			Tool:   name,
			Detail: fmt.Sprintf("argument validation failed: %v", errors),
		}
	}

	return nil
}

// getSchema retrieves or compiles a JSON schema.
func (sv *SchemaValidator) getSchema(schemaJSON string) (*gojsonschema.Schema, error) {
	if schema, exists := sv.cache[schemaJSON]; exists {
		return schema, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		return nil, err
	}

	sv.cache[schemaJSON] = schema
	return schema, nil
}
