package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/dataset"
	"github.com/synthia-dev/datasetforge/types"
)

func writeSplit(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "split.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestValidateFile_CleanSplit(t *testing.T) {
	call, err := builders.Call("call_1", "bash", map[string]any{"command": "git status"})
	require.NoError(t, err)
	ex, err := builders.SingleToolUse("git", "status?", "checking", call,
		"On branch main\nnothing to commit", "Working tree is clean.")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "train.jsonl")
	require.NoError(t, dataset.WriteJSONL(path, []types.Example{ex}))

	v := &Validator{}
	report, err := v.ValidateFile(path)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, 1, report.TotalRecords)
	assert.Zero(t, report.Malformed)
	assert.Equal(t, 1, report.Tools.ByTool["bash"])
}

func TestValidateFile_DanglingToolResultContinues(t *testing.T) {
	path := writeSplit(t, `{"messages": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]}
{"messages": [{"role": "tool", "tool_call_id": "call_99", "content": "x"}]}
{"messages": [{"role": "user", "content": "bye"}, {"role": "assistant", "content": "later"}]}
`)

	v := &Validator{}
	report, err := v.ValidateFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalRecords)
	assert.Equal(t, 1, report.Malformed)
	assert.Equal(t, 1, report.ByType[BadFirstRole])
	assert.Equal(t, 1, report.ByType[DanglingToolResult])

	var sawDangling bool
	for _, viol := range report.Violations {
		if viol.Type == DanglingToolResult {
			sawDangling = true
			assert.Equal(t, 2, viol.Line)
		}
	}
	assert.True(t, sawDangling)
}

func TestValidateFile_ParseErrorContinues(t *testing.T) {
	path := writeSplit(t, `not json
{"messages": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]}
`)

	v := &Validator{}
	report, err := v.ValidateFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRecords)
	assert.Equal(t, 1, report.Malformed)
	assert.Equal(t, 1, report.ByType[ParseError])
	require.Len(t, report.Violations, 1)
	assert.Equal(t, 1, report.Violations[0].Line)
}

func TestValidateFile_FailFast(t *testing.T) {
	path := writeSplit(t, `not json
also not json
`)

	v := &Validator{FailFast: true}
	report, err := v.ValidateFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Malformed)
	assert.Len(t, report.Violations, 1)
}

func TestCheckExample_EmptyMessages(t *testing.T) {
	violations := CheckExample(types.Example{})
	require.Len(t, violations, 1)
	assert.Equal(t, EmptyMessages, violations[0].Type)
}

func TestCheckExample_UnansweredToolCall(t *testing.T) {
	tc, _ := types.NewToolCall("call_1", "read", map[string]any{"file_path": "x"})
	ex := types.Example{Messages: []types.Message{
		{Role: types.RoleUser, Content: "read x"},
		{Role: types.RoleAssistant, Content: "reading", ToolCalls: []types.ToolCall{tc}},
	}}
	violations := CheckExample(ex)
	require.Len(t, violations, 1)
	assert.Equal(t, UnansweredToolCall, violations[0].Type)
}

func TestCheckExample_DuplicateCallID(t *testing.T) {
	tc, _ := types.NewToolCall("call_1", "bash", map[string]any{"command": "ls"})
	ex := types.Example{Messages: []types.Message{
		{Role: types.RoleUser, Content: "go"},
		{Role: types.RoleAssistant, Content: "ok", ToolCalls: []types.ToolCall{tc, tc}},
		{Role: types.RoleTool, Content: "r", ToolCallID: "call_1", Name: "bash"},
	}}
	violations := CheckExample(ex)
	var found bool
	for _, viol := range violations {
		if viol.Type == DuplicateToolCallID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckExample_BuilderRoundTrip(t *testing.T) {
	call, err := builders.Call("call_1", "glob", map[string]any{"pattern": "**/*.md"})
	require.NoError(t, err)
	ex, err := builders.SingleToolUse("search", "find docs", "searching", call,
		"README.md", "Found README.md.")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rt.jsonl")
	require.NoError(t, dataset.WriteJSONL(path, []types.Example{ex}))
	records, err := dataset.ReadJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NoError(t, records[0].Err)

	assert.Empty(t, CheckExample(records[0].Example))
}
