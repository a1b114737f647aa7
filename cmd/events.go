package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/agent-story/internal"
	"github.com/spf13/cobra"
)

var (
	eventsAll bool
	eventsOut string
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events <transcript>",
	Short: "Dump the segmented event stream",
	Long: `Segment a transcript into its raw lifecycle events and print them as
numbered blocks, without folding them into a story. Useful for
debugging the marker catalog against a new transcript.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcriptPath := args[0]

		raw, err := os.ReadFile(transcriptPath)
		if err != nil {
			return &internal.TranscriptError{Path: transcriptPath, Op: "read", Err: err}
		}

		pipeline := internal.NewPipeline()

		var events []internal.Event
		if eventsAll {
			events, _ = pipeline.RawEvents(string(raw))
		} else {
			events, _ = pipeline.Events(string(raw))
		}

		text := internal.RenderBlocks(internal.EventValues(events))

		if eventsOut != "" {
			path, err := internal.WriteTreeFile(eventsOut, text)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		}

		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().BoolVar(&eventsAll, "all", false, "Include events excluded by the default filter")
	eventsCmd.Flags().StringVarP(&eventsOut, "out", "o", "", "Write to a file instead of stdout")
}
