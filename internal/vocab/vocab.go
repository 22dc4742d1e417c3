// Package vocab loads the reference vocabulary of known skill terms.
// A Vocabulary is built once at process start and is immutable afterward,
// so concurrent parses may share it without synchronization.
package vocab

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrLoadFailed wraps startup-time failures to read the skills reference file.
var ErrLoadFailed = fmt.Errorf("vocabulary load failed")

// stopwords are vocabulary entries too common to be meaningful matches.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
}

// defaultSkills is the built-in fallback vocabulary used when the
// external reference file cannot be read.
var defaultSkills = []string{
	"python", "javascript", "java", "react", "node.js", "html", "css",
	"sql", "mongodb", "postgresql", "aws", "docker", "kubernetes",
	"git", "linux", "windows", "machine learning", "data analysis",
	"django", "flask", "typescript", "angular", "vue.js", "express",
}

// Vocabulary is a read-only set of skill terms with precompiled
// word-boundary matchers.
type Vocabulary struct {
	entries  []string
	patterns []*regexp.Regexp
}

// New builds a Vocabulary from raw entries. Entries are trimmed,
// unquoted, and dropped when shorter than two characters or purely
// numeric; duplicates are collapsed case-insensitively keeping the first
// form seen. Entries are sorted so matching output is deterministic.
func New(raw []string) *Vocabulary {
	seen := make(map[string]struct{}, len(raw))
	entries := make([]string, 0, len(raw))

	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		entry = strings.Trim(entry, `"'`)
		if len(entry) <= 1 || isNumeric(entry) {
			continue
		}
		key := strings.ToLower(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i]), strings.ToLower(entries[j])
		if li != lj {
			return li < lj
		}
		return entries[i] < entries[j]
	})

	patterns := make([]*regexp.Regexp, len(entries))
	for i, entry := range entries {
		lower := strings.ToLower(entry)
		if len(lower) <= 2 {
			continue
		}
		if _, stop := stopwords[lower]; stop {
			continue
		}
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(lower) + `\b`)
	}

	return &Vocabulary{entries: entries, patterns: patterns}
}

// Load reads a newline- or comma-delimited skills file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	raw := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return New(raw), nil
}

// Default returns the built-in fallback vocabulary.
func Default() *Vocabulary {
	return New(defaultSkills)
}

// LoadOrDefault loads the reference file, falling back to the built-in
// vocabulary with a logged warning when the file cannot be read. Matching
// stays available in degraded form rather than failing process startup.
func LoadOrDefault(path string) *Vocabulary {
	if path == "" {
		log.Warn().Msg("no vocabulary path configured, using built-in skills")
		return Default()
	}
	v, err := Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("vocabulary load failed, using built-in skills")
		return Default()
	}
	log.Info().Int("entries", v.Len()).Str("path", path).Msg("loaded skill vocabulary")
	return v
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int { return len(v.entries) }

// Entries returns the canonical entry list in deterministic order.
// Callers must not modify the returned slice.
func (v *Vocabulary) Entries() []string { return v.entries }

// Match returns the canonical entries whose lower-cased form occurs in
// textLower on word boundaries, in the vocabulary's deterministic order.
// textLower must already be lower-cased.
func (v *Vocabulary) Match(textLower string) []string {
	var found []string
	for i, re := range v.patterns {
		if re == nil {
			continue
		}
		if re.MatchString(textLower) {
			found = append(found, v.entries[i])
		}
	}
	return found
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
