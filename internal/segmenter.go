package internal

import "strings"

// Segmenter walks a normalized line stream and groups free text under
// the most recent marker line. It is an explicit state machine: the
// current marker and content buffer are fields, not shared state, so
// separate instances can run concurrently on different inputs.
type Segmenter struct {
	markers map[string]bool
	current string
	buffer  []string
}

// NewSegmenter creates a segmenter for the given catalog.
func NewSegmenter(catalog Catalog) *Segmenter {
	return &Segmenter{markers: catalog.Set()}
}

// Feed consumes one line. If the line opens a new event, the event
// closed by it is returned. Blank lines neither flush nor buffer.
// Content arriving before the first marker has nothing to attach to
// and is dropped.
func (s *Segmenter) Feed(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, false
	}

	if s.markers[line] {
		ev, ok := s.Flush()
		s.current = line
		return ev, ok
	}

	if s.current != "" {
		s.buffer = append(s.buffer, line)
	}
	return Event{}, false
}

// Flush closes the in-progress event, if any. Call once after the last
// line to emit the final event.
func (s *Segmenter) Flush() (Event, bool) {
	if s.current == "" {
		s.buffer = nil
		return Event{}, false
	}

	ev := Event{
		Marker:  s.current,
		Content: strings.TrimSpace(strings.Join(s.buffer, " ")),
	}
	s.buffer = nil
	return ev, true
}

// SegmentLines runs a full line stream through a fresh segmenter and
// returns the ordered events.
func SegmentLines(lines []string, catalog Catalog) []Event {
	seg := NewSegmenter(catalog)

	var events []Event
	for _, line := range lines {
		if ev, ok := seg.Feed(line); ok {
			events = append(events, ev)
		}
	}
	if ev, ok := seg.Flush(); ok {
		events = append(events, ev)
	}

	return events
}
