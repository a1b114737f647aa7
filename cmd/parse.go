package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/agent-story/internal"
	"github.com/iksnae/agent-story/internal/export"
	"github.com/spf13/cobra"
)

var (
	parseOutput  string
	parseFormat  string
	parseMarkers string
	parseArchive bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <transcript>",
	Short: "Parse a transcript into an execution story",
	Long: `Parse a raw agent terminal transcript and write the reconstructed
execution story.

The default output is an indented plain-text tree
(agent_execution_tree.txt); JSON, JSONL, YAML, and Markdown are
available via --format. A custom marker catalog can be supplied as a
YAML file with "markers" and optional "exclude" lists.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcriptPath := args[0]

		pipeline, err := buildPipeline(parseMarkers)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(transcriptPath)
		if err != nil {
			return &internal.TranscriptError{Path: transcriptPath, Op: "read", Err: err}
		}

		story, stats := pipeline.Run(string(raw))
		internal.LogInfo("Parsed %d event(s) into %d agent record(s)", stats.Events, len(story.Agents))
		if stats.Dropped > 0 {
			internal.LogWarn("Dropped %d orphan tool event(s); the transcript may be incomplete", stats.Dropped)
		}

		exporter, err := export.NewExporter(parseFormat)
		if err != nil {
			return err
		}

		out, err := os.Create(parseOutput)
		if err != nil {
			return &internal.TranscriptError{Path: parseOutput, Op: "write", Err: err}
		}
		defer out.Close()

		if err := exporter.Export(story, out); err != nil {
			return &internal.ExportError{Format: parseFormat, Path: parseOutput, Err: err}
		}
		fmt.Printf("Wrote %s\n", parseOutput)

		if parseArchive {
			archive, err := openArchive()
			if err != nil {
				return err
			}
			defer archive.Close()

			id, err := archive.SaveRun(transcriptPath, story, stats)
			if err != nil {
				return err
			}
			internal.LogInfo("Archived run %d", id)
		}

		return nil
	},
}

// buildPipeline creates a pipeline from an optional catalog file.
func buildPipeline(markersPath string) (*internal.Pipeline, error) {
	if markersPath == "" {
		return internal.NewPipeline(), nil
	}

	catalog, exclude, err := internal.LoadCatalogFile(markersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load marker catalog: %w", err)
	}
	return &internal.Pipeline{Catalog: catalog, Exclusions: exclude}, nil
}

// openArchive opens the run archive at the configured path.
func openArchive() (*internal.Archive, error) {
	path := archivePath
	if path == "" {
		var err error
		path, err = internal.DefaultArchivePath()
		if err != nil {
			return nil, err
		}
	}
	return internal.OpenArchive(path)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "agent_execution_tree.txt", "Output file path")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree", "Output format (tree, json, jsonl, yaml, md)")
	parseCmd.Flags().StringVar(&parseMarkers, "markers", "", "YAML file with a custom marker catalog")
	parseCmd.Flags().BoolVar(&parseArchive, "archive", false, "Archive the parsed run for later listing")
}
