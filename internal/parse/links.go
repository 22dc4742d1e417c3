package parse

import (
	"regexp"
	"strings"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

var (
	// urlRe requires an explicit scheme; bare domains in body text are
	// too noisy to trust.
	urlRe = regexp.MustCompile(`https?://[^\s,;"'<>]+`)

	linkedinRe = regexp.MustCompile(`(?i)https?://(www\.)?linkedin\.com/(in|pub|profile)/[^/\s]+`)
	githubRe   = regexp.MustCompile(`(?i)https?://(www\.)?github\.com/[^/\s]+`)
	twitterRe  = regexp.MustCompile(`(?i)https?://(www\.)?(twitter|x)\.com/[^/\s]+`)
)

// ExtractURLs returns all scheme-qualified URLs found in the text, in
// encounter order, with trailing punctuation trimmed.
func ExtractURLs(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?)")
		if m != "" {
			urls = append(urls, m)
		}
	}
	return urls
}

// UnionURLs merges text-derived URLs with hyperlink-derived URLs into a
// case-insensitively deduplicated list. Text-scan order comes first and
// hyperlink order is appended after, so on classification ties a URL
// found in body text wins over one found only as an annotation.
func UnionURLs(textURLs []string, hyperlinks []types.Hyperlink) []string {
	seen := make(map[string]struct{}, len(textURLs)+len(hyperlinks))
	union := make([]string, 0, len(textURLs)+len(hyperlinks))

	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		key := strings.ToLower(u)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		union = append(union, u)
	}

	for _, u := range textURLs {
		add(u)
	}
	for _, h := range hyperlinks {
		add(h.URL)
	}
	return union
}

// ClassifyLinks assigns URLs to profile categories in fixed priority
// order: professional network, code host, social, then personal website.
// Each category takes the first URL in input order satisfying its
// pattern; a claimed URL is never reused, and the website category also
// excludes every domain on the platform denylist.
func ClassifyLinks(urls []string) types.ClassifiedLinks {
	var links types.ClassifiedLinks
	claimed := make(map[string]struct{}, 3)

	claim := func(u string) {
		claimed[strings.ToLower(u)] = struct{}{}
	}

	for _, u := range urls {
		if linkedinRe.MatchString(u) {
			links.LinkedIn = u
			claim(u)
			break
		}
	}
	for _, u := range urls {
		if githubRe.MatchString(u) && !isBareHost(u, "github.com") {
			links.GitHub = u
			claim(u)
			break
		}
	}
	for _, u := range urls {
		if twitterRe.MatchString(u) && !isBareHost(u, "twitter.com") && !isBareHost(u, "x.com") {
			links.Twitter = u
			claim(u)
			break
		}
	}
	for _, u := range urls {
		if _, ok := claimed[strings.ToLower(u)]; ok {
			continue
		}
		if onDenylist(u) {
			continue
		}
		links.Website = u
		break
	}
	return links
}

// isBareHost reports whether the URL is just the host root, e.g.
// "https://github.com" or "https://github.com/" with no owner segment.
func isBareHost(u, host string) bool {
	trimmed := strings.ToLower(strings.TrimRight(u, "/"))
	return strings.HasSuffix(trimmed, host)
}

func onDenylist(u string) bool {
	lower := strings.ToLower(u)
	for _, domain := range websiteDenylist {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
