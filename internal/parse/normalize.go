// Package parse implements the layered heuristic field-extraction engine:
// text normalization, contact extraction, link classification, skills
// matching, and section-based experience/education extraction. Every
// extractor here is a total function over arbitrary string input; absence
// of a match is an empty value, never an error.
package parse

import (
	"strings"
	"unicode"
)

// Normalize collapses runs of whitespace to single spaces within lines
// while preserving line breaks, restores literal "\n" sequences to real
// newlines, and drops control characters. Line-oriented heuristics split
// the returned string on newlines; flat-text heuristics use it directly,
// so both views always derive from the same cleaning pass.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = collapseLine(line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// Lines returns the line-split view of normalized text.
func Lines(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, "\n")
}

// collapseLine squeezes internal whitespace and strips non-printable runes.
func collapseLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	space := false
	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			space = sb.Len() > 0
		case unicode.IsControl(r):
			// drop
		default:
			if space {
				sb.WriteByte(' ')
				space = false
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
