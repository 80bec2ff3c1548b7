package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `apiVersion: datasetforge.dev/v1alpha1
kind: Dataset
metadata:
  name: coding-assistant
  description: Tool-use corpus for the coding assistant
spec:
  generators:
    - bash
    - read
  weights:
    bash: 4
    read: 3
  seed: 42
  trainFraction: 0.9
  maxExamples: 250
  strict: true
  output:
    dir: data
    train: train.jsonl
    valid: valid.jsonl
`

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	spec, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"bash", "read"}, spec.Generators)
	assert.Equal(t, 4, spec.Weights["bash"])
	assert.Equal(t, int64(42), spec.EffectiveSeed())
	assert.Equal(t, 0.9, spec.EffectiveTrainFraction())
	assert.Equal(t, 250, spec.MaxExamples)
	assert.True(t, spec.Strict)

	// output paths resolve relative to the manifest location
	assert.Equal(t, filepath.Join(dir, "data", "train.jsonl"), spec.TrainPath())
	assert.Equal(t, filepath.Join(dir, "data", "valid.jsonl"), spec.ValidPath())
}

func TestParseManifest_RequiresEnvelope(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "missing apiVersion",
			manifest: "kind: Dataset\nmetadata:\n  name: x\n",
			wantErr:  "apiVersion",
		},
		{
			name:     "wrong kind",
			manifest: "apiVersion: v1\nkind: Arena\nmetadata:\n  name: x\n",
			wantErr:  "kind",
		},
		{
			name:     "missing name",
			manifest: "apiVersion: v1\nkind: Dataset\nmetadata: {}\n",
			wantErr:  "metadata.name",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.manifest))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseManifest_InvalidSpec(t *testing.T) {
	base := "apiVersion: v1\nkind: Dataset\nmetadata:\n  name: x\nspec:\n"

	_, err := ParseManifest([]byte(base + "  weights:\n    bash: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")

	_, err = ParseManifest([]byte(base + "  trainFraction: 1.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trainFraction")

	_, err = ParseManifest([]byte(base + "  maxExamples: -1\n"))
	require.Error(t, err)
}

func TestSpec_Defaults(t *testing.T) {
	spec := &Spec{}
	assert.Equal(t, DefaultSeed, spec.EffectiveSeed())
	assert.Equal(t, DefaultTrainFraction, spec.EffectiveTrainFraction())
	assert.Equal(t, filepath.Join("data", "train.jsonl"), spec.TrainPath())
	assert.Equal(t, filepath.Join("data", "valid.jsonl"), spec.ValidPath())
}

func TestSpec_AbsoluteOutputPaths(t *testing.T) {
	spec := &Spec{
		ConfigDir: "/manifests",
		Output:    Output{Dir: "/var/data", Train: "t.jsonl"},
	}
	assert.Equal(t, "/var/data/t.jsonl", spec.TrainPath())

	spec = &Spec{Output: Output{Train: "/abs/train.jsonl"}}
	assert.Equal(t, "/abs/train.jsonl", spec.TrainPath())
}
