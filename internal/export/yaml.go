package export

import (
	"io"

	"github.com/iksnae/agent-story/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports stories in YAML format
type YAMLExporter struct{}

// Export exports a story to YAML format
func (e *YAMLExporter) Export(story *internal.Story, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(story)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
