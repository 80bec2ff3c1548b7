package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthia-dev/datasetforge/dataset"
	"github.com/synthia-dev/datasetforge/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file> [file...]",
	Short: "Report composition statistics for existing JSONL datasets",
	Long: `Reads the given JSONL files and prints record counts, message totals, and
the tool invocation tally. Reporting only; the files are not modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolP("verbose", "v", false, "Enable verbose debug logging")
}

func runStats(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		examples, err := dataset.ReadExamples(path)
		if err != nil {
			return err
		}

		messages := 0
		var stats types.ToolStats
		for _, ex := range examples {
			messages += len(ex.Messages)
			stats.Add(ex)
		}

		fmt.Printf("%s: %d examples, %d messages, %d tool invocations\n",
			path, len(examples), messages, stats.TotalCalls)
		for _, name := range sortedKeys(stats.ByTool) {
			fmt.Printf("  %-40s %d\n", name, stats.ByTool[name])
		}
	}
	return nil
}
