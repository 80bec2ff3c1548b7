package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthia-dev/datasetforge/assemble"
	"github.com/synthia-dev/datasetforge/config"
	"github.com/synthia-dev/datasetforge/dataset"
	"github.com/synthia-dev/datasetforge/logger"
	"github.com/synthia-dev/datasetforge/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file> [file...]",
	Short: "Merge JSONL datasets and re-split into train/validation",
	Long: `Concatenates the given JSONL files in argument order, reshuffles the pool
with the given seed, and writes fresh train/validation splits. Inputs are
expected to be already-validated splits; a parse error aborts the merge.

Examples:
  datasetforge merge data/train.jsonl extra/flask.jsonl -o merged`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

var (
	mergeOut      string
	mergeSeed     int64
	mergeFraction float64
)

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", config.DefaultOutputDir, "Output directory")
	mergeCmd.Flags().Int64VarP(&mergeSeed, "seed", "s", config.DefaultSeed, "Shuffle seed")
	mergeCmd.Flags().Float64Var(&mergeFraction, "train-fraction", config.DefaultTrainFraction, "Training split fraction, in (0,1)")
	mergeCmd.Flags().BoolP("verbose", "v", false, "Enable verbose debug logging")
}

func runMerge(cmd *cobra.Command, args []string) error {
	var pool []types.Example
	for _, path := range args {
		examples, err := dataset.ReadExamples(path)
		if err != nil {
			return err
		}
		logger.Info("merged input", "path", path, "examples", len(examples))
		pool = append(pool, examples...)
	}

	shuffled := assemble.Shuffle(pool, mergeSeed)
	train, valid, err := assemble.SplitTrainValidation(shuffled, mergeFraction)
	if err != nil {
		return err
	}

	spec := &config.Spec{Output: config.Output{Dir: mergeOut}}
	trainPath, validPath := spec.TrainPath(), spec.ValidPath()
	if err := dataset.WriteJSONL(trainPath, train); err != nil {
		return err
	}
	logger.SplitWritten(dataset.SplitTrain, trainPath, len(train))
	if err := dataset.WriteJSONL(validPath, valid); err != nil {
		return err
	}
	logger.SplitWritten(dataset.SplitValidation, validPath, len(valid))

	fmt.Printf("Merged %d file(s): %d examples (%d train, %d validation)\n",
		len(args), len(shuffled), len(train), len(valid))
	return nil
}
