package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthia-dev/datasetforge/scenarios"
	"github.com/synthia-dev/datasetforge/types"
)

func makeExamples(category string, n int) []types.Example {
	out := make([]types.Example, n)
	for i := range out {
		tc, _ := types.NewToolCall("call_1", "bash", map[string]any{"command": "pwd"})
		out[i] = types.Example{
			Category: category,
			ID:       category + string(rune('a'+i)),
			Messages: []types.Message{
				{Role: types.RoleUser, Content: "q"},
				{Role: types.RoleAssistant, Content: "a", ToolCalls: []types.ToolCall{tc}},
				{Role: types.RoleTool, Content: "r", ToolCallID: "call_1", Name: "bash"},
				{Role: types.RoleAssistant, Content: "done"},
			},
		}
	}
	return out
}

func TestApplyWeights_Multipliers(t *testing.T) {
	pool := append(makeExamples("bash", 5), makeExamples("read", 2)...)

	weighted, err := ApplyWeights(pool, map[string]int{"bash": 3})
	require.NoError(t, err)

	counts := CategoryCounts(weighted)
	assert.Equal(t, 15, counts["bash"])
	assert.Equal(t, 2, counts["read"])
}

func TestApplyWeights_NonPositiveMultiplier(t *testing.T) {
	pool := makeExamples("bash", 1)

	_, err := ApplyWeights(pool, map[string]int{"bash": 0})
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = ApplyWeights(pool, map[string]int{"bash": -2})
	require.Error(t, err)
}

func TestApplyWeights_ReplicasGetFreshIDs(t *testing.T) {
	pool := makeExamples("bash", 1)
	weighted, err := ApplyWeights(pool, map[string]int{"bash": 3})
	require.NoError(t, err)
	require.Len(t, weighted, 3)

	ids := map[string]bool{}
	for _, ex := range weighted {
		ids[ex.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestShuffle_Deterministic(t *testing.T) {
	pool := append(makeExamples("bash", 10), makeExamples("read", 10)...)

	a := Shuffle(pool, 42)
	b := Shuffle(pool, 42)
	assert.Equal(t, a, b)

	c := Shuffle(pool, 7)
	assert.NotEqual(t, a, c)
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	pool := makeExamples("bash", 10)
	first := pool[0].ID
	_ = Shuffle(pool, 42)
	assert.Equal(t, first, pool[0].ID)
}

func TestCap(t *testing.T) {
	pool := makeExamples("bash", 10)

	capped := Cap(pool, 4)
	assert.Len(t, capped, 4)

	// cap at or above length returns the input unchanged
	assert.Len(t, Cap(pool, 10), 10)
	assert.Len(t, Cap(pool, 100), 10)

	// idempotence
	assert.Equal(t, Cap(capped, 4), Cap(Cap(pool, 4), 4))
}

func TestSplitTrainValidation_Conservation(t *testing.T) {
	pool := makeExamples("bash", 7)

	train, valid, err := SplitTrainValidation(pool, 0.9)
	require.NoError(t, err)

	// floor(0.9 * 7) = 6
	assert.Len(t, train, 6)
	assert.Len(t, valid, 1)
	assert.Equal(t, len(pool), len(train)+len(valid))

	// disjoint by identity
	seen := map[string]bool{}
	for _, ex := range train {
		seen[ex.ID] = true
	}
	for _, ex := range valid {
		assert.False(t, seen[ex.ID], "example %s appears in both splits", ex.ID)
	}
}

func TestSplitTrainValidation_FractionBounds(t *testing.T) {
	pool := makeExamples("bash", 5)

	for _, fraction := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := SplitTrainValidation(pool, fraction)
		require.Error(t, err, "fraction %g", fraction)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	}
}

func TestPool_DefaultsAreWellFormed(t *testing.T) {
	pool, rejects, err := Pool(scenarios.Defaults(), false)
	require.NoError(t, err)
	assert.Empty(t, rejects)
	assert.NotEmpty(t, pool)

	for _, ex := range pool {
		assert.NoError(t, ex.Verify())
		assert.NotEmpty(t, ex.Category)
		assert.NotEmpty(t, ex.ID)
	}
}

func TestPool_StableOrder(t *testing.T) {
	stripIDs := func(pool []types.Example) []types.Example {
		out := make([]types.Example, len(pool))
		copy(out, pool)
		for i := range out {
			out[i].ID = ""
		}
		return out
	}

	a, _, err := Pool(scenarios.Defaults(), false)
	require.NoError(t, err)
	b, _, err := Pool(scenarios.Defaults(), false)
	require.NoError(t, err)
	assert.Equal(t, stripIDs(a), stripIDs(b))
}

func TestComposition(t *testing.T) {
	pool := makeExamples("bash", 3)
	stats := Composition(pool)
	assert.Equal(t, 3, stats.TotalCalls)
	assert.Equal(t, 3, stats.ByTool["bash"])
}

func TestEndToEnd_Determinism(t *testing.T) {
	run := func() ([]types.Example, []types.Example) {
		pool, _, err := Pool(scenarios.Defaults(), true)
		require.NoError(t, err)
		weighted, err := ApplyWeights(pool, scenarios.DefaultWeights())
		require.NoError(t, err)
		shuffled := Shuffle(weighted, 42)
		capped := Cap(shuffled, 250)
		train, valid, err := SplitTrainValidation(capped, 0.9)
		require.NoError(t, err)
		return train, valid
	}

	stripIDs := func(pool []types.Example) []types.Example {
		out := make([]types.Example, len(pool))
		copy(out, pool)
		for i := range out {
			out[i].ID = ""
		}
		return out
	}

	train1, valid1 := run()
	train2, valid2 := run()
	assert.Equal(t, stripIDs(train1), stripIDs(train2))
	assert.Equal(t, stripIDs(valid1), stripIDs(valid2))
}
