package internal

import "strings"

// Marker keys the story builder dispatches on. These must match the
// catalog phrases verbatim; UsingToolPrefix is a prefix match because
// the catalog entry carries a trailing colon.
const (
	markerAgentStarted = "Agent Started"
	markerFinalAnswer  = "Agent Final Answer"
	markerToolInput    = "Tool Input"
	markerToolOutput   = "Tool Output"
	usingToolPrefix    = "Using Tool"
)

// StoryBuilder folds an ordered event stream into agent activations.
// One agent record is open at a time; tool events mutate the most
// recently opened step of the open agent.
type StoryBuilder struct {
	story   Story
	agent   *Agent
	step    *Step
	dropped int
}

// NewStoryBuilder creates an empty builder.
func NewStoryBuilder() *StoryBuilder {
	return &StoryBuilder{}
}

// Add consumes one event. Markers outside the narrative schema are
// ignored. Tool events with no open agent or step are dropped and
// counted; the transcript is reconstructed from lossy text, so this is
// logged rather than raised.
func (b *StoryBuilder) Add(ev Event) {
	switch {
	case ev.Marker == markerAgentStarted:
		b.closeAgent()
		name := strings.TrimSpace(strings.TrimPrefix(ev.Content, "Agent:"))
		b.agent = &Agent{Name: name, Steps: []Step{}}
		b.step = nil

	case strings.HasPrefix(ev.Marker, usingToolPrefix):
		if b.agent == nil {
			b.drop(ev)
			return
		}
		b.agent.Steps = append(b.agent.Steps, Step{Tool: strings.TrimSpace(ev.Content)})
		b.step = &b.agent.Steps[len(b.agent.Steps)-1]

	case ev.Marker == markerToolInput:
		if b.step == nil {
			b.drop(ev)
			return
		}
		b.step.Input = ev.Content

	case ev.Marker == markerToolOutput:
		if b.step == nil {
			b.drop(ev)
			return
		}
		b.step.Output = ev.Content

	case ev.Marker == markerFinalAnswer:
		if b.agent == nil {
			b.drop(ev)
			return
		}
		b.agent.FinalAnswer = ev.Content
	}
}

// Build closes the open agent record and returns the story with the
// count of dropped orphan events.
func (b *StoryBuilder) Build() (*Story, int) {
	b.closeAgent()
	return &b.story, b.dropped
}

func (b *StoryBuilder) closeAgent() {
	if b.agent != nil {
		b.story.Agents = append(b.story.Agents, *b.agent)
		b.agent = nil
		b.step = nil
	}
}

func (b *StoryBuilder) drop(ev Event) {
	b.dropped++
	LogDebug("Dropped orphan event %q with no open agent/step", ev.Marker)
}

// BuildStory folds an event list into a story in one call.
func BuildStory(events []Event) (*Story, int) {
	b := NewStoryBuilder()
	for _, ev := range events {
		b.Add(ev)
	}
	return b.Build()
}
