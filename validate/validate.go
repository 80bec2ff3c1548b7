// Package validate is the structural gate run against a persisted JSONL
// split before it is handed to a training job. Violations are aggregated
// into a report, never thrown per record.
package validate

import (
	"fmt"

	"github.com/synthia-dev/datasetforge/dataset"
	"github.com/synthia-dev/datasetforge/types"
)

// ViolationType classifies a structural defect found in a record.
type ViolationType string

const (
	ParseError           ViolationType = "parse_error"
	EmptyMessages        ViolationType = "empty_messages"
	BadFirstRole         ViolationType = "bad_first_role"
	DuplicateToolCallID  ViolationType = "duplicate_tool_call_id"
	UnansweredToolCall   ViolationType = "unanswered_tool_call"
	DanglingToolResult   ViolationType = "dangling_tool_result"
	ToolCallsOnWrongRole ViolationType = "tool_calls_on_wrong_role"
	UnknownRole          ViolationType = "unknown_role"
	MissingToolCallID    ViolationType = "missing_tool_call_id"
)

// Violation is one defect found at a specific line of the split.
type Violation struct {
	Line   int           `json:"line"`
	Type   ViolationType `json:"type"`
	Detail string        `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("line %d: %s: %s", v.Line, v.Type, v.Detail)
}

// Report summarizes validation of one split.
type Report struct {
	Path         string                `json:"path"`
	TotalRecords int                   `json:"total_records"`
	Malformed    int                   `json:"malformed"`
	ByType       map[ViolationType]int `json:"by_type"`
	Violations   []Violation           `json:"violations"`
	Tools        types.ToolStats       `json:"tools"`
}

// OK reports whether every record passed.
func (r *Report) OK() bool {
	return r.Malformed == 0
}

// Validator checks persisted JSONL splits against the structural invariants
// of the conversation format.
type Validator struct {
	// FailFast stops at the first violation instead of scanning the whole
	// file.
	FailFast bool
}

// ValidateFile parses and checks every line of a JSONL split.
func (v *Validator) ValidateFile(path string) (*Report, error) {
	records, err := dataset.ReadJSONL(path)
	if err != nil {
		return nil, err
	}
	return v.validateRecords(path, records), nil
}

func (v *Validator) validateRecords(path string, records []dataset.Record) *Report {
	report := &Report{
		Path:   path,
		ByType: make(map[ViolationType]int),
	}

	for _, rec := range records {
		report.TotalRecords++

		if rec.Err != nil {
			v.record(report, Violation{
				Line:   rec.Line,
				Type:   ParseError,
				Detail: rec.Err.Error(),
			})
			if v.FailFast {
				return report
			}
			continue
		}

		violations := CheckExample(rec.Example)
		if len(violations) == 0 {
			report.Tools.Add(rec.Example)
			continue
		}
		for i := range violations {
			violations[i].Line = rec.Line
		}
		report.Malformed++
		for _, viol := range violations {
			report.ByType[viol.Type]++
			report.Violations = append(report.Violations, viol)
		}
		if v.FailFast {
			return report
		}
	}
	return report
}

func (v *Validator) record(report *Report, viol Violation) {
	report.Malformed++
	report.ByType[viol.Type]++
	report.Violations = append(report.Violations, viol)
}

// CheckExample runs the structural checks on one parsed example and returns
// every violation found. Line numbers are left zero for the caller to fill.
func CheckExample(e types.Example) []Violation {
	var out []Violation

	if len(e.Messages) == 0 {
		return []Violation{{Type: EmptyMessages, Detail: "example has no messages"}}
	}
	if first := e.Messages[0].Role; first != types.RoleUser && first != types.RoleSystem {
		out = append(out, Violation{
			Type:   BadFirstRole,
			Detail: fmt.Sprintf("first message role is %q, want user or system", first),
		})
	}

	open := make(map[string]string)
	seen := make(map[string]bool)

	for i, msg := range e.Messages {
		switch msg.Role {
		case types.RoleAssistant:
			for _, tc := range msg.ToolCalls {
				if seen[tc.ID] {
					out = append(out, Violation{
						Type:   DuplicateToolCallID,
						Detail: fmt.Sprintf("message %d: duplicate tool call id %q", i, tc.ID),
					})
					continue
				}
				seen[tc.ID] = true
				open[tc.ID] = tc.Function.Name
			}
		case types.RoleTool:
			if msg.ToolCallID == "" {
				out = append(out, Violation{
					Type:   MissingToolCallID,
					Detail: fmt.Sprintf("message %d: tool result missing tool_call_id", i),
				})
				continue
			}
			if _, ok := open[msg.ToolCallID]; !ok {
				out = append(out, Violation{
					Type:   DanglingToolResult,
					Detail: fmt.Sprintf("message %d: tool result references unknown or answered call %q", i, msg.ToolCallID),
				})
				continue
			}
			delete(open, msg.ToolCallID)
		case types.RoleUser, types.RoleSystem:
			if len(msg.ToolCalls) > 0 {
				out = append(out, Violation{
					Type:   ToolCallsOnWrongRole,
					Detail: fmt.Sprintf("message %d: %s message carries tool calls", i, msg.Role),
				})
			}
		default:
			out = append(out, Violation{
				Type:   UnknownRole,
				Detail: fmt.Sprintf("message %d: unknown role %q", i, msg.Role),
			})
		}
	}

	for id, name := range open {
		out = append(out, Violation{
			Type:   UnansweredToolCall,
			Detail: fmt.Sprintf("tool call %q (%s) has no tool result", id, name),
		})
	}
	return out
}
