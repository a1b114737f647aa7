package internal

import (
	"reflect"
	"testing"
)

func TestFilterEvents(t *testing.T) {
	events := []Event{
		{Marker: "Agent Started", Content: "Finder"},
		{Marker: "Task:", Content: "find things"},
		{Marker: "Using Tool:", Content: "Search"},
		{Marker: "Tool Description:", Content: "searches the web"},
		{Marker: "Tool Output", Content: "results"},
	}

	tests := []struct {
		name    string
		exclude []string
		want    []Event
	}{
		{
			name:    "default exclusions removed, order preserved",
			exclude: DefaultExclusions(),
			want: []Event{
				{Marker: "Agent Started", Content: "Finder"},
				{Marker: "Using Tool:", Content: "Search"},
				{Marker: "Tool Output", Content: "results"},
			},
		},
		{
			name:    "empty exclusion set keeps everything",
			exclude: nil,
			want:    events,
		},
		{
			name:    "exclusion not present is a no-op",
			exclude: []string{"Nope"},
			want:    events,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEvents(events, tt.exclude)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterEvents() = %v, want %v", got, tt.want)
			}
		})
	}
}
