package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/synthia-dev/datasetforge/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file> [file...]",
	Short: "Validate persisted JSONL splits against the chat-format invariants",
	Long: `Checks each line of the given JSONL files: parseability, non-empty message
list, first-message role, tool call id uniqueness, and tool call/result
pairing. Prints a per-file report with violation counts and the aggregate
tool invocation tally.

Exits non-zero if any record is malformed. This is the gate run before a
dataset is handed to a training job.

Examples:
  datasetforge validate data/train.jsonl
  datasetforge validate data/train.jsonl data/valid.jsonl --fail-fast`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidateSplits,
}

var validateFailFast bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateFailFast, "fail-fast", false, "Stop at the first violation")
	validateCmd.Flags().BoolP("verbose", "v", false, "Enable verbose debug logging")
}

func runValidateSplits(cmd *cobra.Command, args []string) error {
	v := &validate.Validator{FailFast: validateFailFast}
	malformed := 0

	for _, path := range args {
		report, err := v.ValidateFile(path)
		if err != nil {
			return err
		}
		printReport(report)
		malformed += report.Malformed
	}

	if malformed > 0 {
		fmt.Fprintf(os.Stderr, "\nvalidation failed: %d malformed record(s)\n", malformed)
		os.Exit(1)
	}
	return nil
}

func printReport(r *validate.Report) {
	fmt.Printf("%s: %d records, %d malformed\n", r.Path, r.TotalRecords, r.Malformed)

	if len(r.ByType) > 0 {
		types := make([]string, 0, len(r.ByType))
		for t := range r.ByType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-24s %d\n", t, r.ByType[validate.ViolationType(t)])
		}
		for _, viol := range r.Violations {
			fmt.Printf("  %s\n", viol)
		}
	}

	if r.Tools.TotalCalls > 0 {
		fmt.Printf("  tool invocations: %d\n", r.Tools.TotalCalls)
		for _, name := range sortedKeys(r.Tools.ByTool) {
			fmt.Printf("    %-40s %d\n", name, r.Tools.ByTool[name])
		}
	}
}
