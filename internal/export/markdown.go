package export

import (
	"fmt"
	"io"

	"github.com/iksnae/agent-story/internal"
)

// MarkdownExporter exports stories in Markdown format
type MarkdownExporter struct{}

// Export exports a story to Markdown format
func (e *MarkdownExporter) Export(story *internal.Story, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Agent Execution Story\n\n")
	_, _ = fmt.Fprintf(w, "**Agents:** %d\n\n", len(story.Agents))

	for i, agent := range story.Agents {
		name := agent.Name
		if name == "" {
			name = "Unnamed"
		}
		_, _ = fmt.Fprintf(w, "## %d. %s\n\n", i+1, name)

		for _, step := range agent.Steps {
			_, _ = fmt.Fprintf(w, "- **Tool:** %s\n", step.Tool)
			if step.Input != "" {
				_, _ = fmt.Fprintf(w, "  - Input: %s\n", step.Input)
			}
			if step.Output != "" {
				_, _ = fmt.Fprintf(w, "  - Output: %s\n", step.Output)
			}
		}
		if len(agent.Steps) > 0 {
			_, _ = fmt.Fprintf(w, "\n")
		}

		if agent.FinalAnswer != "" {
			_, _ = fmt.Fprintf(w, "**Final answer:**\n\n%s\n\n", agent.FinalAnswer)
		}

		if i < len(story.Agents)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
