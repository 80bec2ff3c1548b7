package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synthia-dev/datasetforge/logger"
)

var rootCmd = &cobra.Command{
	Use:           "datasetforge",
	Short:         "Datasetforge - Synthesize and validate fine-tuning datasets",
	Version:       GetVersion(),
	SilenceUsage:  true,  // Don't print usage on error
	SilenceErrors: false, // Do print errors
	Long: `Datasetforge synthesizes conversational tool-use training examples,
assembles them into weighted, shuffled train/validation splits, and validates
the persisted JSONL against the chat-format structural invariants.

The generated files are consumed downstream by a supervised fine-tuning job;
this tool only ever produces and checks the JSONL contract.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Runs before all subcommands
		if cmd.Flags().Changed("verbose") {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error getting verbose flag: %v\n", err)
				return
			}
			logger.SetVerbose(verbose)
		}
	},
}

// setupVersion configures the version display
func setupVersion() {
	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")
}

func Execute() {
	setupVersion()
	err := rootCmd.Execute()
	if err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func main() {
	Execute()
}
