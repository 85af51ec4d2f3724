// Package matching scores a resume against a job description by weighted
// keyword overlap.
package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resumesense/internal/keywords"
	"github.com/jonathan/resumesense/internal/types"
)

const (
	domainWeight  = 0.7
	generalWeight = 0.3

	maxDisplayKeywords   = 20
	maxImportantKeywords = 30
	maxMatchedImportant  = 10
)

var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

var ignoredImportant = map[string]struct{}{
	"the": {}, "this": {}, "we": {}, "you": {}, "your": {}, "our": {}, "company": {}, "team": {},
}

// ComputeMatchScore compares the keyword sets of a resume and a job
// description. Domain overlap carries 70% of the score and general overlap
// 30%. A job description without any keywords scores exactly 0.
func ComputeMatchScore(resumeText, jdText string) *types.MatchResult {
	resumeDomain, resumeGeneral := keywords.Extract(resumeText)
	jdDomain, jdGeneral := keywords.Extract(jdText)

	commonDomain := jdDomain.Intersect(resumeDomain)
	commonGeneral := jdGeneral.Intersect(resumeGeneral)

	important := ImportantKeywords(jdText)
	matched := matchedImportant(important, resumeText)

	return &types.MatchResult{
		MatchScore:                Score(len(commonDomain), jdDomain.Len(), len(commonGeneral), jdGeneral.Len()),
		CommonKeywords:            displayList(commonDomain, commonGeneral),
		MissingKeywords:           displayList(jdDomain.Difference(resumeDomain), jdGeneral.Difference(resumeGeneral)),
		JDKeywordCount:            jdDomain.Len() + jdGeneral.Len(),
		ResumeKeywordCount:        resumeDomain.Len() + resumeGeneral.Len(),
		ScientificKeywordsMatched: len(commonDomain),
		ScientificKeywordsTotal:   jdDomain.Len(),
		ImportantKeywordsMatched:  len(matched),
		ImportantKeywordsTotal:    len(important),
		MatchedImportantKeywords:  truncate(matched, maxMatchedImportant),
	}
}

// Score combines domain and general overlap counts into a 0-100 score
// rounded to two decimals.
func Score(domainCommon, domainTotal, generalCommon, generalTotal int) float64 {
	if domainTotal == 0 && generalTotal == 0 {
		return 0.0
	}

	var domainScore, generalScore float64
	if domainTotal > 0 {
		domainScore = float64(domainCommon) / float64(domainTotal) * 100
	}
	if generalTotal > 0 {
		generalScore = float64(generalCommon) / float64(generalTotal) * 100
	}

	score := domainScore*domainWeight + generalScore*generalWeight
	score = math.Min(100.0, math.Max(0.0, score))
	return math.Round(score*100) / 100
}

// ImportantKeywords lists the terms of a job description worth calling out:
// title-cased domain keywords, capitalized phrases, name.ext mentions and
// acronyms, deduplicated case-insensitively in that order.
func ImportantKeywords(jdText string) []string {
	var candidates []string
	for _, term := range keywords.ExtractDomain(jdText).Terms() {
		candidates = append(candidates, keywords.TitleCase(strings.ReplaceAll(term, "_", " ")))
	}
	candidates = append(candidates, capitalizedPhrase.FindAllString(jdText, -1)...)
	candidates = append(candidates, keywords.ExtensionMentions(jdText)...)
	candidates = append(candidates, keywords.Acronyms(jdText)...)

	seen := make(map[string]struct{}, len(candidates))
	important := make([]string, 0, len(candidates))
	for _, kw := range candidates {
		lower := strings.ToLower(kw)
		if _, skip := ignoredImportant[lower]; skip {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		important = append(important, kw)
	}
	return truncate(important, maxImportantKeywords)
}

func matchedImportant(important []string, resumeText string) []string {
	lowerResume := strings.ToLower(resumeText)
	matched := make([]string, 0, len(important))
	for _, kw := range important {
		if strings.Contains(lowerResume, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// displayList puts domain terms ahead of general terms, drops repeats and
// keeps the first twenty.
func displayList(domain, general []string) []string {
	out := make([]string, 0, len(domain)+len(general))
	seen := make(map[string]struct{}, len(domain)+len(general))
	for _, group := range [][]string{domain, general} {
		for _, kw := range group {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return truncate(out, maxDisplayKeywords)
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
