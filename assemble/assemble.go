// Package assemble combines scenario generator output into dataset splits.
//
// Every stage takes an input slice and returns a new one; no stage mutates
// its input. The order of operations in a run is pool, applyWeights,
// shuffle, cap, split.
package assemble

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/synthia-dev/datasetforge/logger"
	"github.com/synthia-dev/datasetforge/scenarios"
	"github.com/synthia-dev/datasetforge/types"
)

// ConfigurationError reports an invalid assembly parameter. It is raised
// before any output file is written, so a run never leaves a partial
// dataset behind.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Detail
}

// Rejection records a malformed example dropped during pooling.
type Rejection struct {
	Generator string
	Index     int
	Err       error
}

// Pool runs every registered generator in sorted name order and concatenates
// the verified output. Malformed examples are rejected and logged with their
// generator and index; in strict mode the first violation aborts the run.
// Each pooled example is stamped with a fresh identity.
func Pool(registry *scenarios.Registry, strict bool) ([]types.Example, []Rejection, error) {
	var pool []types.Example
	var rejects []Rejection

	for _, name := range registry.Names() {
		gen, err := registry.Get(name)
		if err != nil {
			return nil, nil, err
		}
		examples, err := gen.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("generator %q: %w", name, err)
		}
		logger.GeneratorRun(name, len(examples))

		for i, ex := range examples {
			if verr := ex.Verify(); verr != nil {
				if strict {
					return nil, nil, fmt.Errorf("generator %q example %d: %w", name, i, verr)
				}
				logger.ExampleRejected(name, i, verr)
				rejects = append(rejects, Rejection{Generator: name, Index: i, Err: verr})
				continue
			}
			ex.Category = name
			ex.Origin = i
			ex.ID = uuid.NewString()
			pool = append(pool, ex)
		}
	}
	return pool, rejects, nil
}

// ApplyWeights replicates each category's examples by its integer
// multiplier. Categories absent from weights default to 1. Non-positive
// multipliers are a ConfigurationError. Replicas get fresh identities so
// split disjointness stays checkable.
func ApplyWeights(pool []types.Example, weights map[string]int) ([]types.Example, error) {
	for category, mult := range weights {
		if mult <= 0 {
			return nil, &ConfigurationError{
				Detail: fmt.Sprintf("weight for category %q must be a positive integer, got %d", category, mult),
			}
		}
	}

	var out []types.Example
	for _, ex := range pool {
		mult, ok := weights[ex.Category]
		if !ok {
			mult = 1
		}
		for i := 0; i < mult; i++ {
			replica := ex
			if i > 0 {
				replica.ID = uuid.NewString()
			}
			out = append(out, replica)
		}
	}
	return out, nil
}

// Shuffle returns a deterministic pseudo-random permutation of the input.
// The same seed and the same input order always produce the same output
// order.
func Shuffle(pool []types.Example, seed int64) []types.Example {
	out := make([]types.Example, len(pool))
	copy(out, pool)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Cap truncates to the first maxCount elements. A maxCount at or above the
// input length returns the input unchanged.
func Cap(pool []types.Example, maxCount int) []types.Example {
	if maxCount < 0 {
		return pool
	}
	if maxCount >= len(pool) {
		return pool
	}
	return pool[:maxCount]
}

// SplitTrainValidation cuts the sequence at floor(trainFraction * length).
// The prefix becomes the training split, the suffix validation. The fraction
// must lie strictly between 0 and 1.
func SplitTrainValidation(pool []types.Example, trainFraction float64) (train, valid []types.Example, err error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, &ConfigurationError{
			Detail: fmt.Sprintf("train fraction must be in (0,1), got %g", trainFraction),
		}
	}
	cut := int(math.Floor(trainFraction * float64(len(pool))))
	return pool[:cut], pool[cut:], nil
}

// Composition tallies tool invocations by name across the sequence.
// Reporting only, the dataset content is unaffected.
func Composition(pool []types.Example) types.ToolStats {
	var stats types.ToolStats
	for _, ex := range pool {
		stats.Add(ex)
	}
	return stats
}

// CategoryCounts reports how many examples each category contributes.
func CategoryCounts(pool []types.Example) map[string]int {
	counts := make(map[string]int)
	for _, ex := range pool {
		counts[ex.Category]++
	}
	return counts
}

// SortedCategories returns the categories present in counts in sorted order,
// for stable report output.
func SortedCategories(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
