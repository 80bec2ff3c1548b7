package scenarios

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthia-dev/datasetforge/types"
)

func TestDefaults_AllGeneratorsProduceWellFormedExamples(t *testing.T) {
	registry := Defaults()
	for _, name := range registry.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			gen, err := registry.Get(name)
			require.NoError(t, err)

			examples, err := gen.Build()
			require.NoError(t, err)
			require.NotEmpty(t, examples)

			for i, ex := range examples {
				assert.NoError(t, ex.Verify(), "example %d", i)
			}
		})
	}
}

func TestDefaults_Deterministic(t *testing.T) {
	registry := Defaults()
	for _, name := range registry.Names() {
		gen, err := registry.Get(name)
		require.NoError(t, err)

		a, err := gen.Build()
		require.NoError(t, err)
		b, err := gen.Build()
		require.NoError(t, err)
		assert.Equal(t, a, b, "generator %s", name)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	names := Defaults().Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestRegistry_UnknownGenerator(t *testing.T) {
	_, err := Defaults().Get("nonexistent")
	require.Error(t, err)
}

func TestDefaultWeights_AllPositive(t *testing.T) {
	registry := Defaults()
	for category, mult := range DefaultWeights() {
		assert.Positive(t, mult)
		_, err := registry.Get(category)
		assert.NoError(t, err, "weighted category %q has no generator", category)
	}
}

func TestCommandExample_GitStatusShape(t *testing.T) {
	ex, err := CommandExample("git status", "Check git status", "On branch main\nnothing to commit")
	require.NoError(t, err)
	require.Len(t, ex.Messages, 4)

	assert.Equal(t, types.RoleUser, ex.Messages[0].Role)

	second := ex.Messages[1]
	assert.Equal(t, types.RoleAssistant, second.Role)
	require.Len(t, second.ToolCalls, 1)
	call := second.ToolCalls[0]
	assert.Equal(t, "bash", call.Function.Name)

	args, err := call.Args()
	require.NoError(t, err)
	assert.Equal(t, "git status", args["command"])

	third := ex.Messages[2]
	assert.Equal(t, types.RoleTool, third.Role)
	assert.Equal(t, call.ID, third.ToolCallID)
	assert.Contains(t, third.Content, "On branch main\nnothing to commit")

	closing := ex.Messages[3]
	assert.Equal(t, types.RoleAssistant, closing.Role)
	assert.NotEmpty(t, closing.Content)
	assert.Empty(t, closing.ToolCalls)

	assert.NoError(t, ex.Verify())
}

func TestBashExamples_ExpandsCommandTable(t *testing.T) {
	examples, err := BashExamples()
	require.NoError(t, err)
	assert.Len(t, examples, 9+len(bashCommands))

	for _, ex := range examples {
		assert.Equal(t, "bash", ex.Category)
	}
}

func TestSkillExamples_ToolFree(t *testing.T) {
	examples, err := SkillExamples()
	require.NoError(t, err)

	for _, ex := range examples {
		assert.Equal(t, "skills", ex.Category)
		for _, msg := range ex.Messages {
			assert.Empty(t, msg.ToolCalls)
		}
	}
}

func TestRecoveryExamples_FailThenSucceed(t *testing.T) {
	examples, err := RecoveryExamples()
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	// every recovery conversation issues at least two tool calls: the
	// failing attempt and the corrected one
	for i, ex := range examples {
		calls := 0
		for _, msg := range ex.Messages {
			calls += len(msg.ToolCalls)
		}
		assert.GreaterOrEqual(t, calls, 2, "example %d", i)
	}
}

func TestWorkflowExamples_MultiCallChains(t *testing.T) {
	examples, err := WorkflowExamples()
	require.NoError(t, err)

	for i, ex := range examples {
		calls := 0
		for _, msg := range ex.Messages {
			calls += len(msg.ToolCalls)
		}
		assert.GreaterOrEqual(t, calls, 3, "example %d", i)
	}
}

func TestCategoriesMatchGeneratorNames(t *testing.T) {
	registry := Defaults()
	for _, name := range registry.Names() {
		gen, err := registry.Get(name)
		require.NoError(t, err)
		examples, err := gen.Build()
		require.NoError(t, err)
		for _, ex := range examples {
			assert.Equal(t, name, ex.Category)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "install npm dependencies", lowerFirst("Install npm dependencies"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "already lower", lowerFirst("already lower"))
}

func TestNoExampleMentionsPlaceholders(t *testing.T) {
	registry := Defaults()
	for _, name := range registry.Names() {
		gen, err := registry.Get(name)
		require.NoError(t, err)
		examples, err := gen.Build()
		require.NoError(t, err)
		for i, ex := range examples {
			for _, msg := range ex.Messages {
				assert.False(t, strings.Contains(msg.Content, "TODO("), "generator %s example %d", name, i)
			}
		}
	}
}
