package testutil

import "strings"

// DecoratedTranscript builds a transcript fixture the way an agent
// framework's console logger would emit it: ANSI color around the
// lines, a box-drawing frame, and hard wrapping at the given width.
// Width <= 0 disables wrapping.
func DecoratedTranscript(lines []string, width int) string {
	var sb strings.Builder
	sb.WriteString("╭──────────────╮\n")

	for _, line := range lines {
		for _, wrapped := range hardWrap(line, width) {
			sb.WriteString("│ \x1b[1;36m")
			sb.WriteString(wrapped)
			sb.WriteString("\x1b[0m\n")
		}
	}

	sb.WriteString("╰──────────────╯\n")
	return sb.String()
}

// hardWrap splits a line into chunks of at most width characters on
// word boundaries, mimicking terminal wrapping of framed output.
func hardWrap(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			out = append(out, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(out, current)
}
