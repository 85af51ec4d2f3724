// Package features builds the fixed-order feature vector used for quality
// scoring from the ATS, power-verb and JD-match reports plus raw text
// statistics.
package features

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/ats"
	"github.com/jonathan/resumesense/internal/keywords"
	"github.com/jonathan/resumesense/internal/matching"
	"github.com/jonathan/resumesense/internal/types"
	"github.com/jonathan/resumesense/internal/verbs"
)

// Names lists feature names in vector order.
var Names = types.FeatureNames

var (
	numberPattern   = regexp.MustCompile(`\d+`)
	percentPattern  = regexp.MustCompile(`\d+%`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

var achievementTerms = []string{"increased", "decreased", "improved", "reduced", "achieved", "accomplished"}

// Extract analyzes the resume (and job description, when not blank) and
// returns its feature vector.
func Extract(resumeText, jdText string) types.FeatureVector {
	var match *types.MatchResult
	if HasJobDescription(jdText) {
		match = matching.ComputeMatchScore(resumeText, jdText)
	}
	return FromReports(resumeText, ats.CheckCompliance(resumeText), verbs.Stats(resumeText), match)
}

// HasJobDescription reports whether jdText carries any content.
func HasJobDescription(jdText string) bool {
	return strings.TrimSpace(jdText) != ""
}

// FromReports assembles the feature vector from reports that were already
// computed for resumeText. A nil match means no job description; its
// features are 0.
func FromReports(resumeText string, report *types.ATSReport, stats *types.PowerVerbStats, match *types.MatchResult) types.FeatureVector {
	numbers := len(numberPattern.FindAllStringIndex(resumeText, -1))
	sections := report.SectionChecks

	fv := types.FeatureVector{
		TextLength:     float64(utf8.RuneCountInString(resumeText)),
		WordCount:      float64(len(strings.Fields(resumeText))),
		SentenceCount:  float64(len(sentencePattern.Split(resumeText, -1))),
		KeywordDensity: keywords.KeywordDensity(resumeText),

		ActionVerbsCount: float64(stats.StrongVerbCount),
		WeakVerbsCount:   float64(stats.WeakVerbCount),
		PowerVerbRatio:   stats.PowerVerbScore / 100.0,

		HasNumbers:         types.Flag(numbers > 0),
		NumbersCount:       float64(numbers),
		PercentageMentions: float64(len(percentPattern.FindAllStringIndex(resumeText, -1))),

		ATSScore:      report.ATSScore / 100.0,
		HasEducation:  types.Flag(sections.Education),
		HasExperience: types.Flag(sections.Experience),
		HasSkills:     types.Flag(sections.Skills),
		HasContact:    types.Flag(report.ContactCheck.Complete),
		HasBullets:    types.Flag(report.FormattingChecks.HasBullets),
		SectionCount:  float64(sections.Present()),

		HasEmail:            types.Flag(report.ContactCheck.HasEmail),
		HasPhone:            types.Flag(report.ContactCheck.HasPhone),
		AchievementKeywords: float64(countTerms(strings.ToLower(resumeText), achievementTerms)),
	}

	if match != nil {
		fv.JDMatchScore = match.MatchScore / 100.0
		fv.CommonKeywords = float64(len(match.CommonKeywords))
	}
	return fv
}

func countTerms(lower string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			n++
		}
	}
	return n
}
