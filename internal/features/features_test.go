package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumesense/internal/ats"
	"github.com/jonathan/resumesense/internal/types"
	"github.com/jonathan/resumesense/internal/verbs"
)

const sampleResume = `Jane Smith
jane.smith@email.com
(555) 987-6543

Summary
Software developer with experience in web development.

Experience
Developer | Company A | 2019 - 2021
• Worked on web applications
• Used Python and JavaScript
• Fixed bugs and added features

Education
BS Computer Science | University | 2019

Skills
Python, JavaScript, HTML, CSS`

func TestExtract_TextStatistics(t *testing.T) {
	fv := Extract(sampleResume, "")

	assert.Equal(t, 337.0, fv.TextLength)
	assert.Equal(t, 51.0, fv.WordCount)
	assert.Equal(t, 4.0, fv.SentenceCount)
	assert.InDelta(t, 0.7058823529411765, fv.KeywordDensity, 1e-9)
	assert.Equal(t, 1.0, fv.HasNumbers)
	assert.Equal(t, 6.0, fv.NumbersCount)
	assert.Equal(t, 0.0, fv.PercentageMentions)
	assert.Equal(t, 0.0, fv.AchievementKeywords)
}

func TestExtract_ReportFeatures(t *testing.T) {
	fv := Extract(sampleResume, "")

	assert.Equal(t, 0.0, fv.ActionVerbsCount)
	assert.Equal(t, 3.0, fv.WeakVerbsCount)
	assert.Equal(t, 0.0, fv.PowerVerbRatio)
	assert.Equal(t, 1.0, fv.ATSScore)
	assert.Equal(t, 1.0, fv.HasEducation)
	assert.Equal(t, 1.0, fv.HasExperience)
	assert.Equal(t, 1.0, fv.HasSkills)
	assert.Equal(t, 1.0, fv.HasContact)
	assert.Equal(t, 1.0, fv.HasBullets)
	assert.Equal(t, 5.0, fv.SectionCount)
	assert.Equal(t, 1.0, fv.HasEmail)
	assert.Equal(t, 1.0, fv.HasPhone)
}

func TestExtract_NoJobDescription(t *testing.T) {
	for _, jd := range []string{"", "   \n\t"} {
		fv := Extract(sampleResume, jd)
		assert.Equal(t, 0.0, fv.JDMatchScore)
		assert.Equal(t, 0.0, fv.CommonKeywords)
	}
}

func TestExtract_WithJobDescription(t *testing.T) {
	fv := Extract(sampleResume, "Python and JavaScript developer for web applications")

	assert.Greater(t, fv.JDMatchScore, 0.0)
	assert.LessOrEqual(t, fv.JDMatchScore, 1.0)
	assert.Greater(t, fv.CommonKeywords, 0.0)
}

func TestExtract_EmptyText(t *testing.T) {
	fv := Extract("", "")

	assert.Equal(t, 0.0, fv.TextLength)
	assert.Equal(t, 0.0, fv.WordCount)
	assert.Equal(t, 1.0, fv.SentenceCount)
	assert.Equal(t, 0.25, fv.ATSScore)
	assert.Equal(t, 0.0, fv.SectionCount)
	assert.Equal(t, 0.0, fv.HasNumbers)
}

func TestExtract_NumbersAndAchievements(t *testing.T) {
	text := "Increased revenue by 25% and reduced costs 10%. Improved uptime to 99.9"
	fv := Extract(text, "")

	assert.Equal(t, 4.0, fv.NumbersCount)
	assert.Equal(t, 2.0, fv.PercentageMentions)
	assert.Equal(t, 3.0, fv.AchievementKeywords)
	assert.Equal(t, 1.0, fv.HasNumbers)
}

func TestFromReports_MatchesExtract(t *testing.T) {
	jd := "Python developer"
	report := ats.CheckCompliance(sampleResume)
	stats := verbs.Stats(sampleResume)
	match := &types.MatchResult{MatchScore: 40, CommonKeywords: []string{"python", "developer"}}

	fv := FromReports(sampleResume, report, stats, match)
	assert.Equal(t, 0.4, fv.JDMatchScore)
	assert.Equal(t, 2.0, fv.CommonKeywords)

	direct := Extract(sampleResume, jd)
	assert.Equal(t, direct.ATSScore, fv.ATSScore)
	assert.Equal(t, direct.WordCount, fv.WordCount)
}

func TestNames_MatchVectorLength(t *testing.T) {
	fv := Extract(sampleResume, "")
	require.Len(t, Names, 22)
	assert.Len(t, fv.Values(), len(Names))
	assert.Equal(t, "text_length", Names[0])
	assert.Equal(t, "achievement_keywords", Names[21])
}
