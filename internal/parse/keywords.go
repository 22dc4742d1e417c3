package parse

// Heuristic keyword tables. These are tuning surfaces: matching logic
// lives elsewhere and is tested independently of the lists.

// sectionStartKeywords open an experience section; the header line itself
// is skipped as content.
var sectionStartKeywords = []string{"experience", "employment", "work history"}

// sectionEndKeywords close an experience section.
var sectionEndKeywords = []string{"education", "skills", "projects"}

// companyIndicators mark a line as a company-name candidate.
var companyIndicators = []string{
	"inc", "llc", "corp", "company", "technologies", "systems",
	"solutions", "services", "consulting", "software", "ltd",
}

// jobTitleKeywords mark a line as a designation candidate.
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "consultant",
	"specialist", "coordinator", "director", "lead", "senior",
	"junior", "intern", "associate", "architect", "designer",
}

// degreeKeywords classify an education line as a degree.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "diploma",
	"certificate", "b.s", "b.a", "m.s", "m.a", "mba", "ph.d",
}

// institutionKeywords classify an education line as an institution.
// Institution wins when a line matches both lists.
var institutionKeywords = []string{"university", "college", "institute", "school", "academy"}

// nameNoiseKeywords disqualify a line from being a person name.
var nameNoiseKeywords = []string{"email", "phone", "resume", "cv", "@", "objective", "address"}

// orgIndicators disqualify a metadata author value that names an
// organization rather than a person.
var orgIndicators = []string{"company", "inc", "ltd", "corporation"}

// skillAliases maps shorthand or spelled-out variants to the canonical
// skill name added on match.
var skillAliases = map[string][]string{
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"react":      {"reactjs", "react.js"},
	"angular":    {"angularjs"},
	"vue":        {"vue.js", "vuejs"},
	"node":       {"node.js", "nodejs"},
	"express":    {"express.js", "expressjs"},
	"mongodb":    {"mongo"},
	"postgresql": {"postgres", "psql"},
	"mysql":      {"my sql"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud platform"},
	"azure":      {"microsoft azure"},
}

// priorityKeywords rank well-known languages, frameworks, and platforms
// ahead of long-tail vocabulary matches.
var priorityKeywords = []string{
	"python", "javascript", "java", "react", "node", "angular", "vue",
	"html", "css", "sql", "mongodb", "postgresql", "aws", "docker",
	"kubernetes", "git", "machine learning", "data analysis", "django",
	"flask", "typescript", "express", "bootstrap", "jquery",
}

// websiteDenylist excludes known platform and mail-provider domains from
// the personal-website category.
var websiteDenylist = []string{
	"linkedin.com", "github.com", "twitter.com", "x.com", "facebook.com",
	"instagram.com", "youtube.com", "gmail.com", "outlook.com",
	"bitbucket.org", "gitlab.com", "medium.com", "reddit.com",
	"stackoverflow.com", "behance.net", "dribbble.com", "t.me", "wa.me",
	"mail.com", "protonmail.com", "yahoo.com", "icloud.com", "aol.com",
}

// Output caps bound the size of a single parse result.
const (
	maxSkills          = 25
	maxExperienceLines = 10
	maxCompanies       = 5
	maxDesignations    = 5
	maxEducation       = 3
	maxExperienceYears = 50
	nameScanLines      = 7
)
