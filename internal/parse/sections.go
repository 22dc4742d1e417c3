package parse

import (
	"regexp"
	"strings"
)

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// SectionInfo aggregates the section-scan results for one document.
// All slices respect the per-field output caps.
type SectionInfo struct {
	Companies       []string
	Designations    []string
	ExperienceLines []string
	Institutions    []string
	Degrees         []string
	TotalYears      int
}

// ScanSections walks the normalized lines once, tracking whether the
// cursor is inside an experience section. Experience content lines are
// only collected inside the section; company and designation candidates
// are collected everywhere, since resumes frequently list employers
// outside a formally headed section. Education lines are collected
// everywhere as well, with institution keywords taking precedence over
// degree keywords when a line matches both.
func ScanSections(lines []string) SectionInfo {
	info := SectionInfo{
		Companies:       []string{},
		Designations:    []string{},
		ExperienceLines: []string{},
		Institutions:    []string{},
		Degrees:         []string{},
	}

	inExperience := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if containsAny(lower, sectionStartKeywords) {
			inExperience = true
			continue
		}
		if containsAny(lower, sectionEndKeywords) {
			inExperience = false
			continue
		}

		if len(info.Companies) < maxCompanies && containsAny(lower, companyIndicators) {
			info.Companies = append(info.Companies, line)
		}
		if len(info.Designations) < maxDesignations && containsAny(lower, jobTitleKeywords) {
			info.Designations = append(info.Designations, line)
		}

		if inExperience && len(line) > 10 && len(info.ExperienceLines) < maxExperienceLines {
			info.ExperienceLines = append(info.ExperienceLines, line)
		}

		switch {
		case containsAny(lower, institutionKeywords):
			if len(info.Institutions) < maxEducation {
				info.Institutions = append(info.Institutions, line)
			}
		case containsAny(lower, degreeKeywords):
			if len(info.Degrees) < maxEducation {
				info.Degrees = append(info.Degrees, line)
			}
		}
	}

	info.TotalYears = totalExperienceYears(lines)
	return info
}

// totalExperienceYears estimates tenure as the span between the earliest
// and latest distinct four-digit years mentioned anywhere in the text.
// Fewer than two distinct years yields zero; the span is capped to keep a
// stray historical date from producing an absurd figure.
func totalExperienceYears(lines []string) int {
	distinct := make(map[string]struct{})
	min, max := 0, 0
	for _, line := range lines {
		for _, y := range yearRe.FindAllString(line, -1) {
			if _, ok := distinct[y]; ok {
				continue
			}
			distinct[y] = struct{}{}
			n := yearValue(y)
			if min == 0 || n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
	}
	if len(distinct) < 2 {
		return 0
	}
	span := max - min
	if span > maxExperienceYears {
		return maxExperienceYears
	}
	return span
}

func yearValue(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
