package internal

// FilterEvents removes events whose marker is in the exclusion list,
// preserving the relative order of the rest.
func FilterEvents(events []Event, exclude []string) []Event {
	if len(exclude) == 0 {
		return events
	}

	excluded := make(map[string]bool, len(exclude))
	for _, marker := range exclude {
		excluded[marker] = true
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if !excluded[ev.Marker] {
			out = append(out, ev)
		}
	}
	return out
}
