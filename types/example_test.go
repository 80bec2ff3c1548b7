package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairedExample() Example {
	tc, _ := NewToolCall("call_1", "bash", map[string]any{"command": "pwd"})
	return Example{Messages: []Message{
		{Role: RoleUser, Content: "where am I?"},
		{Role: RoleAssistant, Content: "checking", ToolCalls: []ToolCall{tc}},
		{Role: RoleTool, Content: "/home/user", ToolCallID: "call_1", Name: "bash"},
		{Role: RoleAssistant, Content: "You're in /home/user."},
	}}
}

func TestVerify_ValidExample(t *testing.T) {
	require.NoError(t, pairedExample().Verify())
}

func TestVerify_EmptyMessages(t *testing.T) {
	err := Example{}.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no messages")
}

func TestVerify_FirstRoleMustBeUserOrSystem(t *testing.T) {
	ex := Example{Messages: []Message{
		{Role: RoleAssistant, Content: "hello"},
	}}
	require.Error(t, ex.Verify())

	ex = Example{Messages: []Message{
		{Role: RoleSystem, Content: "You are helpful."},
		{Role: RoleUser, Content: "hi"},
	}}
	require.NoError(t, ex.Verify())
}

func TestVerify_DuplicateToolCallID(t *testing.T) {
	tc, _ := NewToolCall("call_1", "bash", map[string]any{"command": "ls"})
	ex := Example{Messages: []Message{
		{Role: RoleUser, Content: "list twice"},
		{Role: RoleAssistant, Content: "ok", ToolCalls: []ToolCall{tc, tc}},
	}}
	err := ex.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tool call id")
}

func TestVerify_UnansweredCall(t *testing.T) {
	tc, _ := NewToolCall("call_1", "bash", map[string]any{"command": "ls"})
	ex := Example{Messages: []Message{
		{Role: RoleUser, Content: "list files"},
		{Role: RoleAssistant, Content: "listing", ToolCalls: []ToolCall{tc}},
		{Role: RoleAssistant, Content: "done"},
	}}
	err := ex.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tool result")
}

func TestVerify_DanglingResult(t *testing.T) {
	ex := Example{Messages: []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleTool, Content: "x", ToolCallID: "call_99", Name: "bash"},
	}}
	require.Error(t, ex.Verify())
}

func TestVerify_ToolCallsOnUserMessage(t *testing.T) {
	tc, _ := NewToolCall("call_1", "bash", map[string]any{"command": "ls"})
	ex := Example{Messages: []Message{
		{Role: RoleUser, Content: "hi", ToolCalls: []ToolCall{tc}},
	}}
	require.Error(t, ex.Verify())
}

func TestExample_SerializedFormOnlyHasMessages(t *testing.T) {
	ex := pairedExample()
	ex.Category = "bash"
	ex.ID = "runtime-id"
	ex.Origin = 3

	data, err := json.Marshal(ex)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 1)
	assert.Contains(t, parsed, "messages")
}

func TestToolCall_ArgumentsAreEncodedText(t *testing.T) {
	tc, err := NewToolCall("call_1", "grep", map[string]any{
		"pattern":     "TODO",
		"output_mode": "content",
	})
	require.NoError(t, err)

	data, err := json.Marshal(tc)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	fn := parsed["function"].(map[string]any)

	// arguments must be a JSON-encoded string, not a nested object
	raw, ok := fn["arguments"].(string)
	require.True(t, ok)

	var args map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &args))
	assert.Equal(t, "TODO", args["pattern"])
}

func TestToolStats_Add(t *testing.T) {
	var stats ToolStats
	stats.Add(pairedExample())
	stats.Add(pairedExample())

	assert.Equal(t, 2, stats.TotalCalls)
	assert.Equal(t, 2, stats.ByTool["bash"])
}
