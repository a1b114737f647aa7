package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Value is a tree-renderable node: a scalar, an ordered sequence, or a
// mapping with insertion-ordered keys. The renderer dispatches on this
// closed set of variants instead of probing runtime types.
type Value struct {
	kind    valueKind
	scalar  string
	seq     []Value
	entries []Entry
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key string
	Val Value
}

type valueKind int

const (
	kindScalar valueKind = iota
	kindSequence
	kindMapping
)

// ScalarValue wraps a scalar in its rendered form.
func ScalarValue(text string) Value {
	return Value{kind: kindScalar, scalar: text}
}

// SequenceValue builds an ordered sequence node.
func SequenceValue(items ...Value) Value {
	return Value{kind: kindSequence, seq: items}
}

// MappingValue builds a mapping node preserving entry order.
func MappingValue(entries ...Entry) Value {
	return Value{kind: kindMapping, entries: entries}
}

// IsNested reports whether the value is a mapping or sequence.
func (v Value) IsNested() bool {
	return v.kind != kindScalar
}

// TryParseStructured attempts to reinterpret a string as structured
// data. It accepts JSON objects and arrays, preserving object key
// order; anything else stays a plain scalar. Evaluated once per leaf.
func TryParseStructured(text string) (Value, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return Value{}, false
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, false
	}
	// Trailing garbage means the leaf was not a structured literal.
	if dec.More() {
		return Value{}, false
	}

	return v, true
}

// decodeValue builds a Value from the decoder's token stream. Using
// the token stream rather than Unmarshal keeps object keys in their
// original order.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var entries []Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				entries = append(entries, Entry{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil { // closing }
				return Value{}, err
			}
			return MappingValue(entries...), nil
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // closing ]
				return Value{}, err
			}
			return SequenceValue(items...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return ScalarValue(t), nil
	case json.Number:
		return ScalarValue(t.String()), nil
	case bool:
		return ScalarValue(fmt.Sprintf("%v", t)), nil
	case nil:
		return ScalarValue("null"), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// reinterpret expands scalar leaves that hold serialized structured
// data; nested values pass through unchanged.
func reinterpret(v Value) Value {
	if v.kind != kindScalar {
		return v
	}
	if parsed, ok := TryParseStructured(v.scalar); ok {
		return parsed
	}
	return v
}

// Render emits the value as an indented tree, two spaces per level.
func Render(v Value, indent int) string {
	space := strings.Repeat("  ", indent)
	var sb strings.Builder

	switch v.kind {
	case kindMapping:
		for _, entry := range v.entries {
			val := reinterpret(entry.Val)
			if val.IsNested() {
				sb.WriteString(fmt.Sprintf("%s%s:\n", space, entry.Key))
				sb.WriteString(Render(val, indent+1))
			} else {
				sb.WriteString(fmt.Sprintf("%s%s: %s\n", space, entry.Key, val.scalar))
			}
		}

	case kindSequence:
		for _, item := range v.seq {
			item = reinterpret(item)
			sb.WriteString(space + "- ")
			if item.IsNested() {
				sb.WriteString("\n")
				sb.WriteString(Render(item, indent+1))
			} else {
				sb.WriteString(item.scalar + "\n")
			}
		}

	default:
		sb.WriteString(fmt.Sprintf("%s%s\n", space, v.scalar))
	}

	return sb.String()
}

// RenderBlocks frames a flat list of independent records: each element
// is numbered "Event {i}", rendered one level deep, and followed by a
// blank separator line.
func RenderBlocks(items []Value) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("Event %d\n", i))
		sb.WriteString(Render(item, 1))
		sb.WriteString("\n")
	}
	return sb.String()
}

// EventValue converts an event to its renderable mapping.
func EventValue(ev Event) Value {
	return MappingValue(Entry{Key: ev.Marker, Val: ScalarValue(ev.Content)})
}

// EventValues converts an event list for block rendering.
func EventValues(events []Event) []Value {
	out := make([]Value, len(events))
	for i, ev := range events {
		out[i] = EventValue(ev)
	}
	return out
}

// AgentValue converts an agent record to its renderable mapping.
// Absent input/output/final answer fields are omitted.
func AgentValue(a Agent) Value {
	steps := make([]Value, len(a.Steps))
	for i, step := range a.Steps {
		entries := []Entry{{Key: "tool", Val: ScalarValue(step.Tool)}}
		if step.Input != "" {
			entries = append(entries, Entry{Key: "input", Val: ScalarValue(step.Input)})
		}
		if step.Output != "" {
			entries = append(entries, Entry{Key: "output", Val: ScalarValue(step.Output)})
		}
		steps[i] = MappingValue(entries...)
	}

	entries := []Entry{
		{Key: "agent", Val: ScalarValue(a.Name)},
		{Key: "steps", Val: SequenceValue(steps...)},
	}
	if a.FinalAnswer != "" {
		entries = append(entries, Entry{Key: "final_answer", Val: ScalarValue(a.FinalAnswer)})
	}
	return MappingValue(entries...)
}

// StoryValues converts a story's agent records for block rendering.
func StoryValues(story *Story) []Value {
	out := make([]Value, len(story.Agents))
	for i, agent := range story.Agents {
		out[i] = AgentValue(agent)
	}
	return out
}

// WriteTreeFile writes the rendered tree to path, replacing any
// existing content, and returns the path written.
func WriteTreeFile(path, text string) (string, error) {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", &TranscriptError{Path: path, Op: "write", Err: err}
	}
	return path, nil
}
