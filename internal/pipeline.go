package internal

// Pipeline composes the transcript stages: sanitize, re-glue wrapped
// markers, segment into events, filter, and fold into a story. All
// state is local to each call, so one Pipeline value may serve
// concurrent runs over different inputs.
type Pipeline struct {
	Catalog    Catalog
	Exclusions []string
}

// NewPipeline creates a pipeline with the default marker catalog and
// exclusion set.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Catalog:    DefaultCatalog(),
		Exclusions: DefaultExclusions(),
	}
}

// Events sanitizes and segments a raw transcript into its filtered
// event list.
func (p *Pipeline) Events(raw string) ([]Event, Stats) {
	tokens := Sanitize(raw)
	lines := NormalizeMarkers(tokens, p.Catalog)
	events := SegmentLines(lines, p.Catalog)
	filtered := FilterEvents(events, p.Exclusions)

	stats := Stats{
		Tokens:   len(tokens),
		Events:   len(filtered),
		Excluded: len(events) - len(filtered),
	}
	return filtered, stats
}

// RawEvents is Events without the exclusion filter, for inspection.
func (p *Pipeline) RawEvents(raw string) ([]Event, Stats) {
	tokens := Sanitize(raw)
	lines := NormalizeMarkers(tokens, p.Catalog)
	events := SegmentLines(lines, p.Catalog)

	return events, Stats{Tokens: len(tokens), Events: len(events)}
}

// Run executes the full pipeline and returns the reconstructed story.
func (p *Pipeline) Run(raw string) (*Story, Stats) {
	events, stats := p.Events(raw)
	story, dropped := BuildStory(events)
	stats.Dropped = dropped
	return story, stats
}
