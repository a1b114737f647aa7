package cmd

import (
	"fmt"
	"strconv"

	"github.com/iksnae/agent-story/internal"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Display an archived run's story",
	Long:  `Render the story tree of a run previously archived with parse --archive.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}

		archive, err := openArchive()
		if err != nil {
			return fmt.Errorf("failed to open run archive: %w", err)
		}
		defer archive.Close()

		run, err := archive.GetRun(id)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Run %d — %s", run.ID, run.Source)))
		fmt.Println()
		fmt.Print(internal.RenderBlocks(internal.StoryValues(run.Story)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
