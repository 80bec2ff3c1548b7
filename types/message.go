// Package types defines the canonical conversation record types shared by
// the generators, the assembler, and the format validator.
//
// The JSON shape matches the chat fine-tuning wire format consumed by the
// training job: one example per JSONL line, each example an ordered list of
// role-tagged messages, assistant messages optionally carrying tool calls.
package types

import (
	"encoding/json"
	"fmt"
)

// Message roles. Tool results use RoleTool with ToolCallID referencing the
// assistant tool call they answer.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single message in a conversation example.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// Tool invocations (assistant messages only).
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// Correlation id and tool name (tool result messages only).
	ToolCallID string `json:"tool_call_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// ToolCall is a request to invoke a named tool. Type is always "function".
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the tool name and its JSON-encoded argument payload.
// Arguments is text, not a nested object, mirroring how the model is
// expected to emit structured calls.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewToolCall builds a ToolCall with the argument map serialized to JSON.
// Argument maps are small and built from literals; a marshal failure here
// is a programming error.
func NewToolCall(id, name string, args map[string]any) (ToolCall, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return ToolCall{}, fmt.Errorf("encode arguments for tool %s: %w", name, err)
	}
	return ToolCall{
		ID:   id,
		Type: "function",
		Function: FunctionCall{
			Name:      name,
			Arguments: string(encoded),
		},
	}, nil
}

// Args decodes the argument payload back into a map. Used by validation and
// tests; generation code never round-trips through this.
func (tc ToolCall) Args() (map[string]any, error) {
	var args map[string]any
	if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
		return nil, fmt.Errorf("decode arguments for tool call %s: %w", tc.ID, err)
	}
	return args, nil
}
