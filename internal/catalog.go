package internal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered list of canonical marker phrases. Order is the
// matching priority when phrases of different lengths could both match
// at the same position.
type Catalog []string

// DefaultCatalog lists the lifecycle markers emitted by the agent
// framework's console logger. The pipeline treats them as opaque text.
func DefaultCatalog() Catalog {
	return Catalog{
		"Agent Started",
		"Executing Task",
		"Task Completed",
		"Task:",
		"Agent Final Answer",
		"User Input",
		"Using Tool:",
		"Tool Input",
		"Tool Output",
		"Tool Description:",
	}
}

// DefaultExclusions lists markers whose events carry no narrative value
// and are removed after segmentation.
func DefaultExclusions() []string {
	return []string{"Task:", "Tool Description:"}
}

// Set returns the catalog as a set for membership testing.
func (c Catalog) Set() map[string]bool {
	set := make(map[string]bool, len(c))
	for _, phrase := range c {
		set[phrase] = true
	}
	return set
}

// tokenized returns each phrase split into lowercase word tokens, in
// catalog order.
func (c Catalog) tokenized() [][]string {
	out := make([][]string, len(c))
	for i, phrase := range c {
		out[i] = strings.Fields(strings.ToLower(phrase))
	}
	return out
}

// CatalogFile is the YAML shape of an external marker catalog.
type CatalogFile struct {
	Markers []string `yaml:"markers"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// LoadCatalogFile reads a marker catalog from a YAML file. Missing
// exclude list falls back to the default exclusions.
func LoadCatalogFile(path string) (Catalog, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &TranscriptError{Path: path, Op: "read", Err: err}
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(file.Markers) == 0 {
		return nil, nil, fmt.Errorf("catalog file %s defines no markers", path)
	}

	exclude := file.Exclude
	if exclude == nil {
		exclude = DefaultExclusions()
	}

	return Catalog(file.Markers), exclude, nil
}
