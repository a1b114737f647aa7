package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/agent-story/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	archivePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agent-story",
	Short: "Rebuild readable execution stories from raw agent transcripts",
	Long: `A CLI tool that turns raw agent terminal transcripts into readable
execution stories.

Agent frameworks log their runs to the terminal wrapped in ANSI color
codes, box-drawing frames, and arbitrary line wrapping. agent-story
strips the decoration, stitches wrapped lifecycle markers back
together, segments the text into events, and folds them into a nested
narrative of which agent ran which tools with what input and output.

Quick Start:
  agent-story parse system.log            # Write agent_execution_tree.txt
  agent-story events system.log           # Dump the segmented events
  agent-story parse system.log --archive  # Also archive the run
  agent-story list                        # Browse archived runs`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&archivePath, "db", "", "Custom run archive location (defaults to ~/.agent-story/runs.db)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
