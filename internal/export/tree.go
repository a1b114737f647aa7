package export

import (
	"io"

	"github.com/iksnae/agent-story/internal"
)

// TreeExporter renders the story as an indented plain-text tree, one
// numbered block per agent activation.
type TreeExporter struct{}

// Export writes the tree rendering of a story
func (e *TreeExporter) Export(story *internal.Story, w io.Writer) error {
	text := internal.RenderBlocks(internal.StoryValues(story))
	_, err := io.WriteString(w, text)
	return err
}

// Extension returns the file extension for this format
func (e *TreeExporter) Extension() string {
	return "txt"
}
