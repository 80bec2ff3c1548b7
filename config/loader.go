package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadManifest loads and validates a dataset manifest from a YAML file in
// K8s-style manifest format.
func LoadManifest(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	spec, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	spec.ConfigDir = filepath.Dir(filename)
	return spec, nil
}

// ParseManifest parses manifest bytes and validates the K8s envelope fields
// and the assembly parameters.
func ParseManifest(data []byte) (*Spec, error) {
	var manifest DatasetManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if manifest.APIVersion == "" {
		return nil, fmt.Errorf("missing required field: apiVersion")
	}
	if manifest.Kind != "Dataset" {
		return nil, fmt.Errorf("invalid kind: expected 'Dataset', got '%s'", manifest.Kind)
	}
	if manifest.Metadata.Name == "" {
		return nil, fmt.Errorf("missing required field: metadata.name")
	}

	spec := &manifest.Spec
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks the assembly parameters that would otherwise surface as
// ConfigurationErrors mid-run.
func (s *Spec) Validate() error {
	for category, mult := range s.Weights {
		if mult <= 0 {
			return fmt.Errorf("weight for %q must be a positive integer, got %d", category, mult)
		}
	}
	if s.TrainFraction != nil {
		if f := *s.TrainFraction; f <= 0 || f >= 1 {
			return fmt.Errorf("trainFraction must be in (0,1), got %g", f)
		}
	}
	if s.MaxExamples < 0 {
		return fmt.Errorf("maxExamples must be non-negative, got %d", s.MaxExamples)
	}
	return nil
}
