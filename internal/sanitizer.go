package internal

import (
	"regexp"
	"strings"
)

// ansiEscape matches ANSI escape sequences: ESC followed by a single
// C1-range byte, or a CSI sequence (ESC [ + parameter bytes +
// intermediate bytes + final byte). Incomplete sequences at end of
// input do not match and are left as literal text.
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// decorationGlyphs are the box-drawing characters agent frameworks use
// to frame their terminal output. They carry no content.
var decorationGlyphs = []string{"─", "│", "╭", "╮", "╰", "╯", "├", "•", "└"}

// StripANSI removes ANSI escape sequences from text. Applying it to
// already-clean text is a no-op.
func StripANSI(text string) string {
	return ansiEscape.ReplaceAllString(text, "")
}

// Tokenize removes decoration glyphs and splits the text on whitespace
// into a flat token stream. Line boundaries are deliberately discarded:
// a marker phrase wrapped across display lines becomes adjacent tokens,
// which the normalizer can re-glue.
func Tokenize(text string) []string {
	for _, g := range decorationGlyphs {
		text = strings.ReplaceAll(text, g, "")
	}
	return strings.Fields(text)
}

// Sanitize strips escapes and decoration and returns the token stream.
func Sanitize(raw string) []string {
	return Tokenize(StripANSI(raw))
}
