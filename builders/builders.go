// Package builders constructs single conversation examples.
//
// Builders are pure: given identical parameters they produce identical
// output, so regenerated datasets are reproducible byte for byte. Invariant
// violations (duplicate correlation ids, unanswered invocations, argument
// payloads that fail the tool schema) are programming errors in the scenario
// tables and surface immediately from Build.
package builders

import (
	"encoding/json"
	"fmt"

	"github.com/synthia-dev/datasetforge/tools"
	"github.com/synthia-dev/datasetforge/types"
)

// InvariantViolation reports an example that violates the tool-invocation
// pairing rules at build time. It is always fatal to that example and never
// silently patched.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Detail
}

// argValidator is shared across all builders; the schema cache makes
// repeated validation of the same tool cheap.
var argValidator = tools.NewSchemaValidator()

// Call builds a tool call with the argument map serialized to JSON and
// validated against the tool's input schema.
func Call(id, name string, args map[string]any) (types.ToolCall, error) {
	tc, err := types.NewToolCall(id, name, args)
	if err != nil {
		return types.ToolCall{}, err
	}
	if err := argValidator.ValidateArgs(name, json.RawMessage(tc.Function.Arguments)); err != nil {
		return types.ToolCall{}, err
	}
	return tc, nil
}

// Conversation accumulates messages for one example. The first error sticks
// and is returned from Build; later calls on a failed builder are no-ops.
type Conversation struct {
	messages []types.Message
	issued   map[string]string
	seen     map[string]bool
	err      error
}

// NewConversation returns an empty conversation builder.
func NewConversation() *Conversation {
	return &Conversation{
		issued: make(map[string]string),
		seen:   make(map[string]bool),
	}
}

// System appends a system message.
func (c *Conversation) System(content string) *Conversation {
	return c.append(types.Message{Role: types.RoleSystem, Content: content})
}

// User appends a user message.
func (c *Conversation) User(content string) *Conversation {
	return c.append(types.Message{Role: types.RoleUser, Content: content})
}

// Assistant appends an assistant message with no tool calls.
func (c *Conversation) Assistant(content string) *Conversation {
	return c.append(types.Message{Role: types.RoleAssistant, Content: content})
}

// AssistantCall appends an assistant message carrying tool calls. Every call
// issued here must be answered by a ToolResult before Build.
func (c *Conversation) AssistantCall(content string, calls ...types.ToolCall) *Conversation {
	if c.err != nil {
		return c
	}
	for _, tc := range calls {
		if c.seen[tc.ID] {
			c.err = &InvariantViolation{Detail: fmt.Sprintf("duplicate tool call id %q", tc.ID)}
			return c
		}
		c.seen[tc.ID] = true
		c.issued[tc.ID] = tc.Function.Name
	}
	return c.append(types.Message{Role: types.RoleAssistant, Content: content, ToolCalls: calls})
}

// ToolResult appends the result message for a previously issued tool call.
func (c *Conversation) ToolResult(id, name, content string) *Conversation {
	if c.err != nil {
		return c
	}
	issuedName, ok := c.issued[id]
	if !ok {
		c.err = &InvariantViolation{Detail: fmt.Sprintf("tool result references unknown or answered call %q", id)}
		return c
	}
	if issuedName != name {
		c.err = &InvariantViolation{Detail: fmt.Sprintf("tool result for call %q names %q, call was issued to %q", id, name, issuedName)}
		return c
	}
	delete(c.issued, id)
	return c.append(types.Message{Role: types.RoleTool, Content: content, ToolCallID: id, Name: name})
}

func (c *Conversation) append(msg types.Message) *Conversation {
	if c.err != nil {
		return c
	}
	c.messages = append(c.messages, msg)
	return c
}

// Build finalizes the example under the given category. It fails if any
// builder step failed, any issued call is still unanswered, or the finished
// example does not verify.
func (c *Conversation) Build(category string) (types.Example, error) {
	if c.err != nil {
		return types.Example{}, c.err
	}
	if len(c.issued) > 0 {
		for id, name := range c.issued {
			return types.Example{}, &InvariantViolation{
				Detail: fmt.Sprintf("tool call %q (%s) has no tool result", id, name),
			}
		}
	}
	example := types.Example{Messages: c.messages, Category: category}
	if err := example.Verify(); err != nil {
		return types.Example{}, &InvariantViolation{Detail: err.Error()}
	}
	return example, nil
}

// SingleToolUse builds the common four-message shape: a user request, an
// assistant message issuing exactly one tool call, the tool result, and a
// closing assistant summary.
func SingleToolUse(category, userMsg, assistantMsg string, call types.ToolCall, result, closing string) (types.Example, error) {
	return NewConversation().
		User(userMsg).
		AssistantCall(assistantMsg, call).
		ToolResult(call.ID, call.Function.Name, result).
		Assistant(closing).
		Build(category)
}
