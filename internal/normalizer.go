package internal

import "strings"

// NormalizeMarkers rebuilds marker phrases that line wrapping split
// across the token stream. It scans left to right; at each position it
// tries every catalog phrase in order and, on a case-insensitive match
// of the phrase's tokens, emits the canonical phrase as one line and
// skips past the matched window. First match wins, so catalog order is
// the tie-break between overlapping candidates. Unmatched tokens pass
// through one per line.
func NormalizeMarkers(tokens []string, catalog Catalog) []string {
	phrases := catalog.tokenized()

	out := make([]string, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		matched := false

		for pi, phrase := range phrases {
			n := len(phrase)
			if i+n > len(tokens) {
				continue
			}

			if windowMatches(tokens[i:i+n], phrase) {
				out = append(out, catalog[pi])
				i += n
				matched = true
				break
			}
		}

		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}

	return out
}

func windowMatches(window, phrase []string) bool {
	for j := range phrase {
		if strings.ToLower(strings.TrimSpace(window[j])) != phrase[j] {
			return false
		}
	}
	return true
}
