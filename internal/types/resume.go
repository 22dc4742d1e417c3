// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Hyperlink is a URL recovered from a document-level link annotation,
// as opposed to a URL appearing in the body text.
type Hyperlink struct {
	URL string `json:"url"`
	// Page is 1-based and only populated for PDF sources.
	Page    int    `json:"page,omitempty"`
	Context string `json:"context"`
}

// DocMetadata holds document properties recovered during extraction.
// Absent values are empty strings.
type DocMetadata struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Creator  string `json:"creator"`
	Producer string `json:"producer"`
}

// ExtractionResult is the immutable output of document extraction:
// plain text plus whatever link annotations and metadata the source format carries.
type ExtractionResult struct {
	Text       string      `json:"text"`
	Hyperlinks []Hyperlink `json:"hyperlinks"`
	Metadata   DocMetadata `json:"metadata"`
}

// ClassifiedLinks holds at most one URL per profile category.
// A URL claimed by one category is never reused by another.
type ClassifiedLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// PersonalInfo holds contact fields and classified profile links.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// Skills groups matched skill terms. Only Technical is populated by the
// heuristic pipeline; the other buckets exist for response-shape
// compatibility with downstream profile builders.
type Skills struct {
	Technical  []string `json:"technical"`
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

// ExperienceEntry is a coarse work-experience record. Company and Title
// are keyword-matched candidates; RawLine is the source line.
type ExperienceEntry struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	RawLine string `json:"rawLine"`
}

// EducationEntry is a coarse education record.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
}

// StructuredResume is the normalized record produced by one parse call.
// Every field defaults to an empty value, never null, so consumers need
// no presence checks.
type StructuredResume struct {
	PersonalInfo         PersonalInfo      `json:"personalInfo"`
	Skills               Skills            `json:"skills"`
	Experience           []ExperienceEntry `json:"experience"`
	Education            []EducationEntry  `json:"education"`
	TotalExperienceYears int               `json:"totalExperienceYears"`
	Hyperlinks           []Hyperlink       `json:"hyperlinks"`
}

// NewStructuredResume returns a resume with all slice fields initialized
// so JSON output contains empty arrays instead of null.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Skills: Skills{
			Technical:  []string{},
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
		},
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Hyperlinks: []Hyperlink{},
	}
}
