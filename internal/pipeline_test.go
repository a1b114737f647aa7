package internal

import (
	"reflect"
	"sync"
	"testing"
)

// decorated fixture: the transcript as a console logger would emit it,
// with color codes, a frame, and "Using Tool:" wrapped mid-phrase.
const decoratedTranscript = "\x1b[36m╭───────────────╮\x1b[0m\n" +
	"│ Agent Started │\n" +
	"│ Agent: Finder │\n" +
	"│ Using\n" +
	"│ Tool:\n" +
	"│ WebSearch │\n" +
	"│ Tool Input │\n" +
	"│ \x1b[1mgolang parsers\x1b[0m │\n" +
	"│ Tool Output │\n" +
	"│ three results │\n" +
	"│ Agent Final Answer │\n" +
	"│ done │\n" +
	"╰───────────────╯\n"

func TestPipeline_Run(t *testing.T) {
	story, stats := NewPipeline().Run(decoratedTranscript)

	want := Story{Agents: []Agent{{
		Name: "Finder",
		Steps: []Step{{
			Tool:   "WebSearch",
			Input:  "golang parsers",
			Output: "three results",
		}},
		FinalAnswer: "done",
	}}}

	if !reflect.DeepEqual(*story, want) {
		t.Errorf("Run() = %+v, want %+v", *story, want)
	}
	if stats.Dropped != 0 {
		t.Errorf("stats.Dropped = %d, want 0", stats.Dropped)
	}
	if stats.Events != 5 {
		t.Errorf("stats.Events = %d, want 5", stats.Events)
	}
}

func TestPipeline_Events_Exclusions(t *testing.T) {
	raw := "Task: do the thing\nAgent Started\nFinder\nTool Description: searches\nTool Output\nok"

	events, stats := NewPipeline().Events(raw)

	for _, ev := range events {
		if ev.Marker == "Task:" || ev.Marker == "Tool Description:" {
			t.Errorf("excluded marker %q survived the filter", ev.Marker)
		}
	}
	if stats.Excluded == 0 {
		t.Error("stats.Excluded = 0, want > 0")
	}
}

func TestPipeline_RawEvents_KeepsExclusions(t *testing.T) {
	raw := "Agent Started\nFinder\nTask: do the thing"

	events, _ := NewPipeline().RawEvents(raw)

	found := false
	for _, ev := range events {
		if ev.Marker == "Task:" {
			found = true
		}
	}
	if !found {
		t.Error("RawEvents() filtered out Task: marker")
	}
}

func TestPipeline_NoMarkers(t *testing.T) {
	story, stats := NewPipeline().Run("nothing interesting here at all")

	if len(story.Agents) != 0 {
		t.Errorf("got %d agents, want 0", len(story.Agents))
	}
	if stats.Events != 0 {
		t.Errorf("stats.Events = %d, want 0", stats.Events)
	}
}

func TestPipeline_ConcurrentRuns(t *testing.T) {
	// One Pipeline value must be safe across concurrent runs since all
	// segmentation state is per-call.
	p := NewPipeline()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			story, _ := p.Run(decoratedTranscript)
			if len(story.Agents) != 1 || story.Agents[0].Name != "Finder" {
				t.Errorf("concurrent Run() = %+v", story)
			}
		}()
	}
	wg.Wait()
}
