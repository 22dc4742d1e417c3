package parse

import (
	"regexp"
	"strings"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; the first pattern family producing
// any match wins and later families are not consulted.
var phonePatterns = []*regexp.Regexp{
	// US-style grouped triplet, optional country code and punctuation.
	regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
	// International variable-group.
	regexp.MustCompile(`\+?([0-9]{1,3})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})`),
	// Bare 10-digit run.
	regexp.MustCompile(`([0-9]{10})`),
}

var longDigitRunRe = regexp.MustCompile(`\d{3,}`)

// ExtractEmail returns the first well-formed email address in the text,
// or empty string.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the digits of the first phone number matched by
// the ordered pattern families, captured groups concatenated with no
// separators.
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return strings.Join(m[1:], "")
	}
	return ""
}

// ExtractName runs the name cascade: the document author from metadata
// when it looks like a person, otherwise the first qualifying line near
// the top of the document. Returns empty string when nothing qualifies.
func ExtractName(lines []string, meta types.DocMetadata) string {
	if name := authorName(meta.Author); name != "" {
		return name
	}

	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// authorName accepts a metadata author only when it resembles a person:
// at least two words, under 50 characters, and no organization indicator.
func authorName(author string) string {
	author = strings.TrimSpace(author)
	if author == "" || len(author) >= 50 || len(strings.Fields(author)) < 2 {
		return ""
	}
	lower := strings.ToLower(author)
	for _, org := range orgIndicators {
		if strings.Contains(lower, org) {
			return ""
		}
	}
	return author
}

func looksLikeName(line string) bool {
	if line == "" || len(line) >= 50 {
		return false
	}
	words := len(strings.Fields(line))
	if words < 2 || words > 5 {
		return false
	}
	if longDigitRunRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, noise := range nameNoiseKeywords {
		if strings.Contains(lower, noise) {
			return false
		}
	}
	// Section headers tend to be all-caps or end with a colon.
	if line == strings.ToUpper(line) || strings.HasSuffix(line, ":") {
		return false
	}
	return true
}
