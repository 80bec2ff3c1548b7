package types

import "fmt"

// Example is one complete training record: an ordered message sequence.
// Examples are immutable once built; the serialized form contains only the
// messages, everything else is bookkeeping for the assembler.
type Example struct {
	Messages []Message `json:"messages"`

	// Category names the generator that produced this example. Used for
	// weighting and composition reporting, never persisted.
	Category string `json:"-"`

	// ID is a runtime-only identity assigned when the example enters the
	// assembler pool. Weight replicas get fresh ids, so split membership
	// can be checked for disjointness.
	ID string `json:"-"`

	// Origin records the generator index for rejection logging.
	Origin int `json:"-"`
}

// Verify checks the structural invariants every example must satisfy:
//   - the message list is non-empty
//   - the first message is a user or system message
//   - tool call ids are unique within the example
//   - every tool call is answered by exactly one tool result
//   - no tool result references an unknown or already-answered call
func (e Example) Verify() error {
	if len(e.Messages) == 0 {
		return fmt.Errorf("example has no messages")
	}
	if first := e.Messages[0].Role; first != RoleUser && first != RoleSystem {
		return fmt.Errorf("first message role is %q, want user or system", first)
	}

	// open tracks issued tool calls awaiting a result.
	open := make(map[string]string)
	seen := make(map[string]bool)

	for i, msg := range e.Messages {
		switch msg.Role {
		case RoleAssistant:
			for _, tc := range msg.ToolCalls {
				if seen[tc.ID] {
					return fmt.Errorf("message %d: duplicate tool call id %q", i, tc.ID)
				}
				seen[tc.ID] = true
				open[tc.ID] = tc.Function.Name
			}
		case RoleTool:
			if msg.ToolCallID == "" {
				return fmt.Errorf("message %d: tool result missing tool_call_id", i)
			}
			if _, ok := open[msg.ToolCallID]; !ok {
				return fmt.Errorf("message %d: tool result references unknown or answered call %q", i, msg.ToolCallID)
			}
			delete(open, msg.ToolCallID)
		case RoleUser, RoleSystem:
			if len(msg.ToolCalls) > 0 {
				return fmt.Errorf("message %d: %s message carries tool calls", i, msg.Role)
			}
		default:
			return fmt.Errorf("message %d: unknown role %q", i, msg.Role)
		}
	}

	if len(open) > 0 {
		for id, name := range open {
			return fmt.Errorf("tool call %q (%s) has no tool result", id, name)
		}
	}
	return nil
}

// ToolStats tallies tool invocations by name across one or more examples.
type ToolStats struct {
	TotalCalls int            `json:"total_calls"`
	ByTool     map[string]int `json:"by_tool"`
}

// Add walks the example's assistant messages and counts every tool call.
func (s *ToolStats) Add(e Example) {
	for _, msg := range e.Messages {
		if msg.Role != RoleAssistant {
			continue
		}
		for _, tc := range msg.ToolCalls {
			if s.ByTool == nil {
				s.ByTool = make(map[string]int)
			}
			s.ByTool[tc.Function.Name]++
			s.TotalCalls++
		}
	}
}
