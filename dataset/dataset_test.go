package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthia-dev/datasetforge/types"
)

func sampleExamples(t *testing.T) []types.Example {
	t.Helper()
	tc, err := types.NewToolCall("call_1", "bash", map[string]any{"command": "git status"})
	require.NoError(t, err)
	return []types.Example{
		{
			Category: "git",
			Messages: []types.Message{
				{Role: types.RoleUser, Content: "check repo state"},
				{Role: types.RoleAssistant, Content: "checking", ToolCalls: []types.ToolCall{tc}},
				{Role: types.RoleTool, Content: "On branch main", ToolCallID: "call_1", Name: "bash"},
				{Role: types.RoleAssistant, Content: "Clean working tree."},
			},
		},
		{
			Category: "skills",
			Messages: []types.Message{
				{Role: types.RoleUser, Content: "how do I test this?"},
				{Role: types.RoleAssistant, Content: "Write the failing test first."},
			},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "train.jsonl")
	examples := sampleExamples(t)

	require.NoError(t, WriteJSONL(path, examples))

	records, err := ReadJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for i, rec := range records {
		require.NoError(t, rec.Err)
		assert.Equal(t, i+1, rec.Line)
		assert.Equal(t, examples[i].Messages, rec.Example.Messages)
	}
}

func TestWriteJSONL_OneObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.jsonl")
	require.NoError(t, WriteJSONL(path, sampleExamples(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, `{"messages":`))
	}
}

func TestWriteJSONL_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jsonl")
	b := filepath.Join(dir, "b.jsonl")

	examples := sampleExamples(t)
	require.NoError(t, WriteJSONL(a, examples))
	require.NoError(t, WriteJSONL(b, examples))

	dataA, err := os.ReadFile(a)
	require.NoError(t, err)
	dataB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, dataA, dataB)
}

func TestReadJSONL_ParseErrorsDoNotAbort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := `{"messages": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]}
not json at all
{"messages": [{"role": "user", "content": "bye"}, {"role": "assistant", "content": "later"}]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := ReadJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.NoError(t, records[0].Err)
	assert.Error(t, records[1].Err)
	assert.Equal(t, 2, records[1].Line)
	assert.NoError(t, records[2].Err)
}

func TestReadJSONL_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.jsonl")
	content := "{\"messages\": [{\"role\": \"user\", \"content\": \"hi\"}]}\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadExamples_FailsOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{broken\n"), 0o644))

	_, err := ReadExamples(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1:")
}
