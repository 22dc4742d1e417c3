package parse

import (
	"github.com/rs/zerolog/log"

	"github.com/kmatsuda/resume-extractor/internal/extract"
	"github.com/kmatsuda/resume-extractor/internal/types"
	"github.com/kmatsuda/resume-extractor/internal/vocab"
)

// Parser runs the full heuristic pipeline over extracted document text.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	vocab     *vocab.Vocabulary
	extractor *extract.Extractor
}

// NewParser builds a Parser around the given vocabulary.
func NewParser(v *vocab.Vocabulary) *Parser {
	return &Parser{
		vocab:     v,
		extractor: extract.NewExtractor(),
	}
}

// VocabularySize returns the number of skill terms the parser matches
// against.
func (p *Parser) VocabularySize() int {
	if p.vocab == nil {
		return 0
	}
	return p.vocab.Len()
}

// ParseDocument extracts text from raw document bytes and parses it.
// Extraction errors pass through unchanged so callers can distinguish
// unsupported formats from empty or unreadable documents.
func (p *Parser) ParseDocument(data []byte, format extract.Format) (*types.StructuredResume, error) {
	result, err := p.extractor.Extract(data, format)
	if err != nil {
		return nil, err
	}
	return p.Parse(result.Text, result.Hyperlinks, result.Metadata), nil
}

// Parse runs every field heuristic over the text and assembles the
// structured record. Parse is total: arbitrary input yields a valid
// record with empty fields where nothing matched, never an error. Given
// identical inputs the output is identical.
func (p *Parser) Parse(text string, hyperlinks []types.Hyperlink, meta types.DocMetadata) *types.StructuredResume {
	resume := types.NewStructuredResume()

	normalized := Normalize(text)
	if normalized == "" {
		return resume
	}
	lines := Lines(normalized)

	resume.PersonalInfo.Name = ExtractName(lines, meta)
	resume.PersonalInfo.Email = ExtractEmail(normalized)
	resume.PersonalInfo.Phone = ExtractPhone(normalized)

	urls := UnionURLs(ExtractURLs(normalized), hyperlinks)
	classified := ClassifyLinks(urls)
	resume.PersonalInfo.LinkedIn = classified.LinkedIn
	resume.PersonalInfo.GitHub = classified.GitHub
	resume.PersonalInfo.Twitter = classified.Twitter
	resume.PersonalInfo.Website = classified.Website

	resume.Skills.Technical = MatchSkills(normalized, p.vocab)

	sections := ScanSections(lines)
	resume.Experience = assembleExperience(sections)
	resume.Education = assembleEducation(sections)
	resume.TotalExperienceYears = sections.TotalYears

	if hyperlinks != nil {
		resume.Hyperlinks = hyperlinks
	}

	log.Debug().
		Int("skills", len(resume.Skills.Technical)).
		Int("experience", len(resume.Experience)).
		Int("education", len(resume.Education)).
		Int("hyperlinks", len(resume.Hyperlinks)).
		Msg("parsed resume text")

	return resume
}

// assembleExperience pairs each collected experience line with company
// and designation candidates by index. Candidate lists are usually
// shorter than the line list, so trailing entries carry only the raw
// line.
func assembleExperience(s SectionInfo) []types.ExperienceEntry {
	n := len(s.ExperienceLines)
	if n == 0 && (len(s.Companies) > 0 || len(s.Designations) > 0) {
		// No formally headed section; fall back to the longer
		// candidate list so employers found elsewhere still surface.
		n = len(s.Companies)
		if len(s.Designations) > n {
			n = len(s.Designations)
		}
	}

	entries := make([]types.ExperienceEntry, 0, n)
	for i := 0; i < n; i++ {
		var e types.ExperienceEntry
		if i < len(s.ExperienceLines) {
			e.RawLine = s.ExperienceLines[i]
		}
		if i < len(s.Companies) {
			e.Company = s.Companies[i]
		}
		if i < len(s.Designations) {
			e.Title = s.Designations[i]
		}
		entries = append(entries, e)
	}
	return entries
}

// assembleEducation pairs institutions with degrees by index.
func assembleEducation(s SectionInfo) []types.EducationEntry {
	n := len(s.Institutions)
	if len(s.Degrees) > n {
		n = len(s.Degrees)
	}
	if n > maxEducation {
		n = maxEducation
	}

	entries := make([]types.EducationEntry, 0, n)
	for i := 0; i < n; i++ {
		var e types.EducationEntry
		if i < len(s.Institutions) {
			e.Institution = s.Institutions[i]
		}
		if i < len(s.Degrees) {
			e.Degree = s.Degrees[i]
		}
		entries = append(entries, e)
	}
	return entries
}
