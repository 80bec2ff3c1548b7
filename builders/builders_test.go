package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthia-dev/datasetforge/types"
)

func TestCall_ValidArguments(t *testing.T) {
	tc, err := Call("call_1", "bash", map[string]any{
		"command":     "ls -la",
		"description": "List files",
	})
	require.NoError(t, err)

	assert.Equal(t, "call_1", tc.ID)
	assert.Equal(t, "function", tc.Type)
	assert.Equal(t, "bash", tc.Function.Name)

	args, err := tc.Args()
	require.NoError(t, err)
	assert.Equal(t, "ls -la", args["command"])
}

func TestCall_SchemaRejectsMissingRequired(t *testing.T) {
	// bash requires "command"
	_, err := Call("call_1", "bash", map[string]any{
		"description": "No command given",
	})
	require.Error(t, err)
}

func TestCall_UnknownTool(t *testing.T) {
	_, err := Call("call_1", "teleport", map[string]any{"target": "prod"})
	require.Error(t, err)
}

func TestConversation_DuplicateCallIDFailsFast(t *testing.T) {
	first, err := Call("call_1", "bash", map[string]any{"command": "pwd"})
	require.NoError(t, err)
	second, err := Call("call_1", "bash", map[string]any{"command": "ls"})
	require.NoError(t, err)

	_, err = NewConversation().
		User("run both").
		AssistantCall("running", first).
		ToolResult("call_1", "bash", "/home").
		AssistantCall("running again", second).
		Build("test")
	require.Error(t, err)

	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	assert.Contains(t, iv.Detail, "duplicate tool call id")
}

func TestConversation_UnansweredCallFails(t *testing.T) {
	call, err := Call("call_1", "read", map[string]any{"file_path": "main.go"})
	require.NoError(t, err)

	_, err = NewConversation().
		User("read the file").
		AssistantCall("reading", call).
		Assistant("done").
		Build("test")
	require.Error(t, err)

	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	assert.Contains(t, iv.Detail, "no tool result")
}

func TestConversation_ResultForUnknownCallFails(t *testing.T) {
	_, err := NewConversation().
		User("hello").
		ToolResult("call_42", "bash", "output").
		Build("test")
	require.Error(t, err)
}

func TestConversation_ResultNameMustMatchCall(t *testing.T) {
	call, err := Call("call_1", "bash", map[string]any{"command": "pwd"})
	require.NoError(t, err)

	_, err = NewConversation().
		User("where am I").
		AssistantCall("checking", call).
		ToolResult("call_1", "read", "/home").
		Build("test")
	require.Error(t, err)
}

func TestConversation_ErrorSticks(t *testing.T) {
	c := NewConversation().
		User("hello").
		ToolResult("call_9", "bash", "boom")
	c.Assistant("this should be ignored")

	_, err := c.Build("test")
	require.Error(t, err)
}

func TestConversation_MustStartWithUserOrSystem(t *testing.T) {
	_, err := NewConversation().
		Assistant("hello, how can I help?").
		Build("test")
	require.Error(t, err)

	ex, err := NewConversation().
		System("You are a coding assistant.").
		User("hi").
		Assistant("hello").
		Build("test")
	require.NoError(t, err)
	assert.Equal(t, types.RoleSystem, ex.Messages[0].Role)
}

func TestSingleToolUse_Shape(t *testing.T) {
	call, err := Call("call_1", "bash", map[string]any{
		"command":     "git status",
		"description": "Check git status",
	})
	require.NoError(t, err)

	ex, err := SingleToolUse("git",
		"What's the state of my repo?",
		"I'll check the git status.",
		call,
		"On branch main\nnothing to commit",
		"Your working tree is clean on branch main.",
	)
	require.NoError(t, err)
	require.Len(t, ex.Messages, 4)

	assert.Equal(t, types.RoleUser, ex.Messages[0].Role)
	assert.Equal(t, types.RoleAssistant, ex.Messages[1].Role)
	require.Len(t, ex.Messages[1].ToolCalls, 1)
	assert.Equal(t, types.RoleTool, ex.Messages[2].Role)
	assert.Equal(t, "call_1", ex.Messages[2].ToolCallID)
	assert.Equal(t, types.RoleAssistant, ex.Messages[3].Role)
	assert.Empty(t, ex.Messages[3].ToolCalls)
	assert.NoError(t, ex.Verify())
}

func TestConversation_Deterministic(t *testing.T) {
	build := func() (types.Example, error) {
		call, err := Call("call_1", "glob", map[string]any{"pattern": "**/*.go"})
		if err != nil {
			return types.Example{}, err
		}
		return SingleToolUse("search", "find go files", "searching", call, "main.go", "Found main.go.")
	}

	a, err := build()
	require.NoError(t, err)
	b, err := build()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
