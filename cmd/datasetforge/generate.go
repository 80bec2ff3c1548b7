package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/synthia-dev/datasetforge/assemble"
	"github.com/synthia-dev/datasetforge/config"
	"github.com/synthia-dev/datasetforge/dataset"
	"github.com/synthia-dev/datasetforge/logger"
	"github.com/synthia-dev/datasetforge/quality"
	"github.com/synthia-dev/datasetforge/scenarios"
	"github.com/synthia-dev/datasetforge/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate train/validation splits from the scenario generators",
	Long: `Runs every configured scenario generator, pools and verifies the output,
applies category weights, shuffles with a fixed seed, caps the pool, splits
into train/validation, and writes one JSONL file per split.

A run that hits a configuration error exits before writing any output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("config", "c", "", "Dataset manifest path (YAML)")
	generateCmd.Flags().StringP("out", "o", "", "Output directory override")
	generateCmd.Flags().Int64P("seed", "s", config.DefaultSeed, "Shuffle seed")
	generateCmd.Flags().Float64("train-fraction", config.DefaultTrainFraction, "Training split fraction, in (0,1)")
	generateCmd.Flags().Int("max-examples", config.DefaultMaxExamples, "Cap on total examples after shuffling (0 = no cap)")
	generateCmd.Flags().Bool("strict", false, "Abort on the first malformed example instead of rejecting it")
	generateCmd.Flags().BoolP("verbose", "v", false, "Enable verbose debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("out_dir", generateCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("train_fraction", generateCmd.Flags().Lookup("train-fraction"))
	_ = viper.BindPFlag("max_examples", generateCmd.Flags().Lookup("max-examples"))
	_ = viper.BindPFlag("strict", generateCmd.Flags().Lookup("strict"))
}

func runGenerate(cmd *cobra.Command) error {
	spec, err := loadSpec(cmd)
	if err != nil {
		return err
	}

	registry, err := selectGenerators(spec)
	if err != nil {
		return err
	}

	pool, rejects, err := assemble.Pool(registry, spec.Strict)
	if err != nil {
		return err
	}
	if len(rejects) > 0 {
		fmt.Printf("Rejected %d malformed example(s); see log for details\n", len(rejects))
	}

	weights := spec.Weights
	if weights == nil {
		weights = scenarios.DefaultWeights()
	}
	weighted, err := assemble.ApplyWeights(pool, weights)
	if err != nil {
		return err
	}

	shuffled := assemble.Shuffle(weighted, spec.EffectiveSeed())
	if spec.MaxExamples > 0 {
		shuffled = assemble.Cap(shuffled, spec.MaxExamples)
	}

	reportQuality(spec, shuffled)

	train, valid, err := assemble.SplitTrainValidation(shuffled, spec.EffectiveTrainFraction())
	if err != nil {
		return err
	}

	trainPath, validPath := spec.TrainPath(), spec.ValidPath()
	if err := dataset.WriteJSONL(trainPath, train); err != nil {
		return err
	}
	logger.SplitWritten(dataset.SplitTrain, trainPath, len(train))
	if err := dataset.WriteJSONL(validPath, valid); err != nil {
		return err
	}
	logger.SplitWritten(dataset.SplitValidation, validPath, len(valid))

	printSummary(shuffled, train, valid)
	return nil
}

// loadSpec builds the effective assembly spec from the manifest file if one
// is given, then applies flag overrides.
func loadSpec(cmd *cobra.Command) (*config.Spec, error) {
	var spec *config.Spec

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	fromManifest := configFile != ""
	if fromManifest {
		viper.SetConfigFile(configFile)
		if readErr := viper.ReadInConfig(); readErr != nil {
			logger.Warn("could not read config file", "path", configFile, "error", readErr)
		}
		spec, err = config.LoadManifest(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		spec = &config.Spec{}
	}

	if cmd.Flags().Changed("seed") || spec.Seed == nil {
		seed := viper.GetInt64("seed")
		spec.Seed = &seed
	}
	if cmd.Flags().Changed("train-fraction") || spec.TrainFraction == nil {
		fraction := viper.GetFloat64("train_fraction")
		spec.TrainFraction = &fraction
	}
	if cmd.Flags().Changed("max-examples") || !fromManifest {
		spec.MaxExamples = viper.GetInt("max_examples")
	}
	if cmd.Flags().Changed("strict") {
		spec.Strict = viper.GetBool("strict")
	}
	if out := viper.GetString("out_dir"); out != "" && cmd.Flags().Changed("out") {
		spec.Output.Dir = out
		spec.ConfigDir = ""
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// selectGenerators restricts the default registry to the manifest's
// generator list, when one is given.
func selectGenerators(spec *config.Spec) (*scenarios.Registry, error) {
	defaults := scenarios.Defaults()
	if len(spec.Generators) == 0 {
		return defaults, nil
	}
	selected := scenarios.NewRegistry()
	for _, name := range spec.Generators {
		gen, err := defaults.Get(name)
		if err != nil {
			return nil, err
		}
		selected.Register(gen)
	}
	return selected, nil
}

// reportQuality runs the content heuristics over the final pool and logs any
// findings. Findings never block the run.
func reportQuality(spec *config.Spec, pool []types.Example) {
	validators := []quality.Validator{
		quality.NewDisallowedPatternsValidator(spec.DisallowedPatterns),
		quality.NewRoleBalanceValidator(),
	}
	for idx, findings := range quality.Run(validators, pool) {
		for _, f := range findings {
			logger.Warn("quality finding",
				"example", idx,
				"category", pool[idx].Category,
				"validator", f.Validator,
				"detail", f.Detail,
			)
		}
	}
}

func printSummary(pool, train, valid []types.Example) {
	fmt.Printf("\nDataset: %d examples (%d train, %d validation)\n", len(pool), len(train), len(valid))

	counts := assemble.CategoryCounts(pool)
	fmt.Println("\nComposition by category:")
	for _, name := range assemble.SortedCategories(counts) {
		fmt.Printf("  %-12s %d\n", name, counts[name])
	}

	stats := assemble.Composition(pool)
	fmt.Printf("\nTool invocations: %d total\n", stats.TotalCalls)
	for _, name := range sortedKeys(stats.ByTool) {
		fmt.Printf("  %-40s %d\n", name, stats.ByTool[name])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
