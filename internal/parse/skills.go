package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kmatsuda/resume-extractor/internal/vocab"
)

var sectionHeaderRe = regexp.MustCompile(`\b(technical\s+skills?|skills?|technologies?|programming\s+languages?)\b`)

// MatchSkills matches the vocabulary against the normalized text,
// expands known aliases, deduplicates variants, and ranks well-known
// technology terms ahead of long-tail matches. Output order and
// membership are deterministic for identical inputs.
func MatchSkills(text string, v *vocab.Vocabulary) []string {
	if text == "" || v == nil || v.Len() == 0 {
		return []string{}
	}

	textLower := strings.ToLower(text)
	// Section headers like "Technical Skills" would otherwise match
	// vocabulary entries of the same name.
	textLower = sectionHeaderRe.ReplaceAllString(textLower, " ")

	found := v.Match(textLower)

	// Alias pass: shorthand in the text pulls in the canonical vocabulary
	// entry. Aliases whose canonical term is not in the vocabulary are
	// ignored rather than inventing entries the caller never supplied.
	canonicalForm := make(map[string]string, v.Len())
	for _, entry := range v.Entries() {
		canonicalForm[strings.ToLower(entry)] = entry
	}
	aliasHits := make([]string, 0, len(skillAliases))
	for canonical, aliases := range skillAliases {
		entry, known := canonicalForm[canonical]
		if !known {
			continue
		}
		for _, alias := range aliases {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
			if re.MatchString(textLower) {
				aliasHits = append(aliasHits, entry)
				break
			}
		}
	}
	sort.Strings(aliasHits)
	found = append(found, aliasHits...)

	deduped := dedupeVariants(found)
	return rankSkills(deduped)
}

// dedupeVariants keeps the first representative per folded form, where
// folding removes case, spaces, and dots. "Node.js" and "NodeJS" collapse
// to one entry.
func dedupeVariants(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	kept := make([]string, 0, len(skills))

	fold := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, ".", "")
		return s
	}

	for _, skill := range skills {
		key := fold(skill)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, skill)
	}
	return kept
}

// rankSkills puts priority-keyword matches first, keeps ties in
// lexicographic order, and truncates to the output cap.
func rankSkills(skills []string) []string {
	priority := make([]string, 0, len(skills))
	other := make([]string, 0, len(skills))

	for _, skill := range skills {
		if isPrioritySkill(skill) {
			priority = append(priority, skill)
		} else {
			other = append(other, skill)
		}
	}

	less := func(s []string) func(i, j int) bool {
		return func(i, j int) bool {
			li, lj := strings.ToLower(s[i]), strings.ToLower(s[j])
			if li != lj {
				return li < lj
			}
			return s[i] < s[j]
		}
	}
	sort.SliceStable(priority, less(priority))
	sort.SliceStable(other, less(other))

	ranked := append(priority, other...)
	if len(ranked) > maxSkills {
		ranked = ranked[:maxSkills]
	}
	return ranked
}

func isPrioritySkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, keyword := range priorityKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
