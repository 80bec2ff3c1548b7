// Package scenarios expands hand-written base scenarios into concrete
// conversation examples.
//
// Generators are intentionally simple substitution over literal tables, not
// a templating engine: the diversity of the corpus lives in the data, not in
// control flow. Every generator preserves the tool-invocation pairing
// invariant through the builders package.
package scenarios

import (
	"fmt"
	"sort"

	"github.com/synthia-dev/datasetforge/types"
)

// Generator produces the full set of examples for one scenario category.
// Build must be deterministic: identical output on every call.
type Generator struct {
	Name  string
	Build func() ([]types.Example, error)
}

// Registry manages named generators in a stable order.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds a generator, keyed by its Name. Replaces any previous
// generator with the same name.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name] = g
}

// Get returns the generator with the given name.
func (r *Registry) Get(name string) (Generator, error) {
	g, ok := r.generators[name]
	if !ok {
		return Generator{}, fmt.Errorf("unknown generator: %q", name)
	}
	return g, nil
}

// Names returns the sorted list of registered generator names. Pooling
// iterates this order, so downstream weighting and shuffling are
// deterministic for a fixed seed.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns a registry with every built-in generator registered.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(Generator{Name: "bash", Build: BashExamples})
	r.Register(Generator{Name: "read", Build: ReadExamples})
	r.Register(Generator{Name: "search", Build: SearchExamples})
	r.Register(Generator{Name: "editing", Build: EditingExamples})
	r.Register(Generator{Name: "git", Build: GitExamples})
	r.Register(Generator{Name: "powertools", Build: PowertoolsExamples})
	r.Register(Generator{Name: "webfetch", Build: WebfetchExamples})
	r.Register(Generator{Name: "workshop", Build: WorkshopExamples})
	r.Register(Generator{Name: "workflows", Build: WorkflowExamples})
	r.Register(Generator{Name: "recovery", Build: RecoveryExamples})
	r.Register(Generator{Name: "webapp", Build: WebAppExamples})
	r.Register(Generator{Name: "skills", Build: SkillExamples})
	return r
}

// DefaultWeights is the replication multiplier per category used when the
// manifest does not override it. Categories absent here default to 1.
func DefaultWeights() map[string]int {
	return map[string]int{
		"bash":       4,
		"read":       3,
		"search":     3,
		"editing":    3,
		"git":        2,
		"powertools": 2,
		"webfetch":   2,
		"workshop":   2,
		"workflows":  4,
	}
}
