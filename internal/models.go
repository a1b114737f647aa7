package internal

// Event is a single lifecycle event recovered from a transcript: the
// marker that opened it and the free text that followed.
type Event struct {
	Marker  string `json:"marker" yaml:"marker"`
	Content string `json:"content" yaml:"content"`
}

// Step represents one tool invocation inside an agent activation.
type Step struct {
	Tool   string `json:"tool" yaml:"tool"`
	Input  string `json:"input,omitempty" yaml:"input,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Agent represents one agent activation: the steps it ran and its
// final answer, if one was observed before the next activation.
type Agent struct {
	Name        string `json:"agent" yaml:"agent"`
	Steps       []Step `json:"steps" yaml:"steps"`
	FinalAnswer string `json:"final_answer,omitempty" yaml:"final_answer,omitempty"`
}

// Story is the reconstructed narrative: agent activations in the
// order they appeared in the transcript.
type Story struct {
	Agents []Agent `json:"agents" yaml:"agents"`
}

// Stats carries diagnostic counters from a pipeline run. Dropped
// counts tool-lifecycle events that arrived with no open agent or
// step; the transcript is lossy so this is not an error, but it is
// worth surfacing.
type Stats struct {
	Tokens   int `json:"tokens" yaml:"tokens"`
	Events   int `json:"events" yaml:"events"`
	Excluded int `json:"excluded" yaml:"excluded"`
	Dropped  int `json:"dropped" yaml:"dropped"`
}
