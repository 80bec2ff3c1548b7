// Package tools describes the tools that synthesized conversations may
// invoke, and validates invocation argument payloads against per-tool
// JSON Schemas so that a structurally invalid call can never be written
// into a dataset.
package tools

import (
	"encoding/json"
	"fmt"
)

// Descriptor describes one invocable tool. InputSchema is a JSON Schema for
// the argument payload.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// builtins holds the descriptors for every tool the generators emit.
// Schemas are intentionally permissive about optional fields; they exist to
// reject typos in required fields and wrong argument types, not to encode
// full tool semantics.
var builtins = map[string]Descriptor{
	"bash": {
		Name:        "bash",
		Description: "Execute a shell command and return its output",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"command": {"type": "string"},
				"description": {"type": "string"},
				"run_in_background": {"type": "boolean"}
			},
			"required": ["command"]
		}`),
	},
	"read": {
		Name:        "read",
		Description: "Read a file from the filesystem",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"file_path": {"type": "string"},
				"limit": {"type": "integer"}
			},
			"required": ["file_path"]
		}`),
	},
	"write": {
		Name:        "write",
		Description: "Write content to a file, creating or overwriting it",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"file_path": {"type": "string"},
				"content": {"type": "string"}
			},
			"required": ["file_path", "content"]
		}`),
	},
	"edit": {
		Name:        "edit",
		Description: "Replace an exact string in a file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"file_path": {"type": "string"},
				"old_string": {"type": "string"},
				"new_string": {"type": "string"}
			},
			"required": ["file_path", "old_string", "new_string"]
		}`),
	},
	"grep": {
		Name:        "grep",
		Description: "Search file contents for a regular expression",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"pattern": {"type": "string"},
				"output_mode": {"type": "string"},
				"-n": {"type": "boolean"}
			},
			"required": ["pattern"]
		}`),
	},
	"glob": {
		Name:        "glob",
		Description: "Find files matching a glob pattern",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"pattern": {"type": "string"}
			},
			"required": ["pattern"]
		}`),
	},
	"webfetch": {
		Name:        "webfetch",
		Description: "Fetch a URL and answer a prompt about its content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"url": {"type": "string"},
				"prompt": {"type": "string"}
			},
			"required": ["url"]
		}`),
	},
	"mcp__powertools__goto_definition": {
		Name:        "mcp__powertools__goto_definition",
		Description: "Jump to the definition of the symbol at a location",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"location": {"type": "string"}
			},
			"required": ["location"]
		}`),
	},
	"mcp__powertools__find_references": {
		Name:        "mcp__powertools__find_references",
		Description: "Find all references to a symbol",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"symbol": {"type": "string"},
				"limit": {"type": "integer"}
			},
			"required": ["symbol"]
		}`),
	},
}

// Lookup returns the descriptor for a tool name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := builtins[name]
	return d, ok
}

// Names returns every registered tool name.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

// ValidationError reports an argument payload that failed schema validation.
type ValidationError struct {
	Tool   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tool %s: %s", e.Tool, e.Detail)
}
