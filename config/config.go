// Package config loads dataset manifests: YAML files in K8s-style manifest
// format describing which generators to run and how to assemble their output
// into splits.
package config

import (
	"path/filepath"
)

// DatasetManifest is the top-level K8s-style manifest wrapper.
type DatasetManifest struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata identifies the manifest.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Spec is the assembly configuration.
type Spec struct {
	// Generators restricts the run to the named scenario categories.
	// Empty means all registered generators.
	Generators []string `yaml:"generators,omitempty"`

	// Weights maps category name to a positive integer replication
	// multiplier. Categories absent here default to 1. Nil means the
	// built-in default weighting.
	Weights map[string]int `yaml:"weights,omitempty"`

	// Seed drives the deterministic shuffle.
	Seed *int64 `yaml:"seed,omitempty"`

	// TrainFraction is the prefix share of the shuffled pool that becomes
	// the training split. Must be in (0,1).
	TrainFraction *float64 `yaml:"trainFraction,omitempty"`

	// MaxExamples caps the pool after shuffling. Zero or absent means no
	// cap.
	MaxExamples int `yaml:"maxExamples,omitempty"`

	// Strict aborts pooling on the first malformed example instead of
	// rejecting and continuing.
	Strict bool `yaml:"strict,omitempty"`

	// DisallowedPatterns overrides the default content-quality substring
	// list.
	DisallowedPatterns []string `yaml:"disallowedPatterns,omitempty"`

	Output Output `yaml:"output,omitempty"`

	// ConfigDir is the base for resolving relative output paths. Set from
	// the manifest file location at load time, not from YAML.
	ConfigDir string `yaml:"-"`
}

// Output names the written split files.
type Output struct {
	Dir   string `yaml:"dir,omitempty"`
	Train string `yaml:"train,omitempty"`
	Valid string `yaml:"valid,omitempty"`
}

// Assembly defaults used when the manifest leaves a field unset.
const (
	DefaultSeed          int64   = 42
	DefaultTrainFraction float64 = 0.9
	DefaultMaxExamples           = 250
	DefaultOutputDir             = "data"
	DefaultTrainFile             = "train.jsonl"
	DefaultValidFile             = "valid.jsonl"
)

// EffectiveSeed returns the manifest seed or the default.
func (s *Spec) EffectiveSeed() int64 {
	if s.Seed != nil {
		return *s.Seed
	}
	return DefaultSeed
}

// EffectiveTrainFraction returns the manifest fraction or the default.
func (s *Spec) EffectiveTrainFraction() float64 {
	if s.TrainFraction != nil {
		return *s.TrainFraction
	}
	return DefaultTrainFraction
}

// TrainPath resolves the training split path against the manifest location.
func (s *Spec) TrainPath() string {
	return s.resolveOutput(s.Output.Train, DefaultTrainFile)
}

// ValidPath resolves the validation split path against the manifest
// location.
func (s *Spec) ValidPath() string {
	return s.resolveOutput(s.Output.Valid, DefaultValidFile)
}

func (s *Spec) resolveOutput(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	dir := s.Output.Dir
	if dir == "" {
		dir = DefaultOutputDir
	}
	if filepath.IsAbs(name) {
		return name
	}
	if !filepath.IsAbs(dir) && s.ConfigDir != "" {
		dir = filepath.Join(s.ConfigDir, dir)
	}
	return filepath.Join(dir, name)
}
