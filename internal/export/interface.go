package export

import (
	"fmt"
	"io"

	"github.com/iksnae/agent-story/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(story *internal.Story, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "tree", "txt":
		return &TreeExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: tree, json, jsonl, yaml, md)", format)
	}
}
