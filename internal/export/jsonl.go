package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/agent-story/internal"
)

// JSONLExporter exports stories in JSONL format (one agent per line)
type JSONLExporter struct{}

// Export exports a story to JSONL format
func (e *JSONLExporter) Export(story *internal.Story, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, agent := range story.Agents {
		if err := enc.Encode(agent); err != nil {
			return fmt.Errorf("failed to encode agent record: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
