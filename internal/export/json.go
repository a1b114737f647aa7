package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/agent-story/internal"
)

// JSONExporter exports stories in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a story to JSON format
func (e *JSONExporter) Export(story *internal.Story, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(story)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
