package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRender_Mapping(t *testing.T) {
	v := MappingValue(
		Entry{Key: "a", Val: ScalarValue("1")},
		Entry{Key: "b", Val: MappingValue(
			Entry{Key: "c", Val: ScalarValue("2")},
		)},
	)

	got := Render(v, 0)
	want := "a: 1\nb:\n  c: 2\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Sequence(t *testing.T) {
	v := SequenceValue(
		ScalarValue("one"),
		MappingValue(Entry{Key: "k", Val: ScalarValue("v")}),
	)

	got := Render(v, 0)
	want := "- one\n- \n  k: v\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_StructuredStringLeafExpanded(t *testing.T) {
	// A string leaf holding serialized JSON must be rendered as its
	// nested structure, not as a raw string.
	v := MappingValue(
		Entry{Key: "input", Val: ScalarValue(`{"query": "golang", "limit": 3}`)},
	)

	got := Render(v, 0)
	want := "input:\n  query: golang\n  limit: 3\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_PlainStringLeafKept(t *testing.T) {
	v := MappingValue(Entry{Key: "output", Val: ScalarValue("no results found")})

	got := Render(v, 0)
	want := "output: no results found\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTryParseStructured(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		parsed bool
	}{
		{name: "json object", in: `{"a": 1}`, parsed: true},
		{name: "json array", in: `[1, 2]`, parsed: true},
		{name: "object with surrounding space", in: `  {"a": 1}  `, parsed: true},
		{name: "plain text", in: "hello world", parsed: false},
		{name: "broken json", in: `{"a": `, parsed: false},
		{name: "trailing garbage", in: `{"a": 1} and more`, parsed: false},
		{name: "bare number stays scalar", in: "42", parsed: false},
		{name: "empty string", in: "", parsed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := TryParseStructured(tt.in)
			if ok != tt.parsed {
				t.Errorf("TryParseStructured(%q) ok = %v, want %v", tt.in, ok, tt.parsed)
			}
		})
	}
}

func TestTryParseStructured_PreservesKeyOrder(t *testing.T) {
	v, ok := TryParseStructured(`{"z": 1, "a": 2, "m": 3}`)
	if !ok {
		t.Fatal("TryParseStructured() failed")
	}

	got := Render(v, 0)
	want := "z: 1\na: 2\nm: 3\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderBlocks(t *testing.T) {
	events := []Event{
		{Marker: "Agent Started", Content: "Finder"},
		{Marker: "Tool Output", Content: "done"},
	}

	got := RenderBlocks(EventValues(events))
	want := "Event 0\n  Agent Started: Finder\n\nEvent 1\n  Tool Output: done\n\n"
	if got != want {
		t.Errorf("RenderBlocks() = %q, want %q", got, want)
	}
}

func TestStoryValues(t *testing.T) {
	story := &Story{Agents: []Agent{{
		Name:        "Finder",
		Steps:       []Step{{Tool: "Search", Input: "q", Output: "r"}},
		FinalAnswer: "done",
	}}}

	got := RenderBlocks(StoryValues(story))
	want := "Event 0\n" +
		"  agent: Finder\n" +
		"  steps:\n" +
		"    - \n" +
		"      tool: Search\n" +
		"      input: q\n" +
		"      output: r\n" +
		"  final_answer: done\n" +
		"\n"
	if got != want {
		t.Errorf("RenderBlocks() = %q, want %q", got, want)
	}
}

func TestStoryValues_AbsentFieldsOmitted(t *testing.T) {
	story := &Story{Agents: []Agent{{Name: "Idle", Steps: []Step{}}}}

	got := RenderBlocks(StoryValues(story))
	want := "Event 0\n  agent: Idle\n  steps:\n\n"
	if got != want {
		t.Errorf("RenderBlocks() = %q, want %q", got, want)
	}
}

func TestWriteTreeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent_execution_tree.txt")

	// Pre-existing content must be fully replaced.
	if err := os.WriteFile(path, []byte("old old old old"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := WriteTreeFile(path, "new\n")
	if err != nil {
		t.Fatalf("WriteTreeFile() error: %v", err)
	}
	if got != path {
		t.Errorf("WriteTreeFile() returned %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("file content = %q, want %q", data, "new\n")
	}
}

func TestWriteTreeFile_UnwritableDir(t *testing.T) {
	_, err := WriteTreeFile(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")
	if err == nil {
		t.Error("WriteTreeFile() to missing directory succeeded, want error")
	}
}
