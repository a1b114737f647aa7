package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/iksnae/agent-story/internal"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <transcript>",
	Short: "Show parsing diagnostics for a transcript",
	Long: `Run the pipeline over a transcript and report token and event counts,
per-marker totals, and the number of orphan tool events that were
dropped because no agent or step was open.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcriptPath := args[0]

		raw, err := os.ReadFile(transcriptPath)
		if err != nil {
			return &internal.TranscriptError{Path: transcriptPath, Op: "read", Err: err}
		}

		pipeline := internal.NewPipeline()
		events, _ := pipeline.RawEvents(string(raw))
		story, stats := pipeline.Run(string(raw))

		byMarker := make(map[string]int)
		for _, ev := range events {
			byMarker[ev.Marker]++
		}

		fmt.Printf("Transcript: %s\n", transcriptPath)
		fmt.Printf("Tokens:     %d\n", stats.Tokens)
		fmt.Printf("Events:     %d (%d excluded)\n", stats.Events, stats.Excluded)
		fmt.Printf("Agents:     %d\n", len(story.Agents))
		fmt.Printf("Dropped:    %d orphan tool event(s)\n", stats.Dropped)
		fmt.Println()

		markers := make([]string, 0, len(byMarker))
		for marker := range byMarker {
			markers = append(markers, marker)
		}
		sort.Strings(markers)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, "MARKER\tCOUNT")
		for _, marker := range markers {
			_, _ = fmt.Fprintf(w, "%s\t%d\n", marker, byMarker[marker])
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
