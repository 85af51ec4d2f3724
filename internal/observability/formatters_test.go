package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resumesense/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintQuality(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuality(&types.QualityResult{
		QualityScore: 72.5,
		ModelUsed:    types.ModelUsedRuleBased,
		Features:     types.FeatureVector{WordCount: 120, SectionCount: 4, PowerVerbRatio: 0.75},
	})
	output := buf.String()

	assert.Contains(t, output, "QUALITY SCORE")
	assert.Contains(t, output, "72.50 / 100")
	assert.Contains(t, output, "rule_based")
	assert.Contains(t, output, "Words: 120")
	assert.Contains(t, output, "0.75")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&types.MatchResult{
		MatchScore:      42.86,
		CommonKeywords:  []string{"python", "kubernetes"},
		MissingKeywords: []string{"a", "b", "c", "d", "e", "f", "g"},
		JDKeywordCount:  9,
	})
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION MATCH")
	assert.Contains(t, output, "42.86%")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintMatch_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(nil)

	assert.Empty(t, buf.String())
}

func TestPrintATSReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSReport(&types.ATSReport{
		ATSScore:      80,
		SectionChecks: types.SectionChecks{Education: true, Experience: true},
		ContactCheck:  types.ContactCheck{HasEmail: true},
		Issues:        []string{"Missing skills section"},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPLIANCE")
	assert.Contains(t, output, "80.00 / 100")
	assert.Contains(t, output, "✓ education")
	assert.Contains(t, output, "✗ skills")
	assert.Contains(t, output, "Missing skills section")
}

func TestPrintPowerVerbs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	findings := make([]types.WeakVerbFinding, 7)
	for i := range findings {
		findings[i] = types.WeakVerbFinding{WeakVerb: "helped", Suggestions: []string{"facilitated", "enabled"}}
	}
	p.PrintPowerVerbs(&types.PowerVerbReport{
		Findings: findings,
		Stats:    types.PowerVerbStats{WeakVerbCount: 7, StrongVerbCount: 3, PowerVerbScore: 30},
	})
	output := buf.String()

	assert.Contains(t, output, "POWER VERBS")
	assert.Contains(t, output, "helped → facilitated, enabled")
	assert.Contains(t, output, "... and 2 more findings")
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInsights(&types.Insights{
		Projects: []types.ProjectEntry{{Title: "Payments API", TechStack: []string{"Go", "PostgreSQL"}, Confidence: 0.8}},
		Achievements: []types.AchievementEntry{
			{Title: "Hackathon winner", Category: types.CategoryCoCurricular},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "INSIGHTS")
	assert.Contains(t, output, "Payments API (0.80)")
	assert.Contains(t, output, "[Go, PostgreSQL]")
	assert.Contains(t, output, "[Co-curricular] Hackathon winner")
}

func TestPrintInsights_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInsights(&types.Insights{})

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.AnalysisResult{
		ATS:     types.ATSReport{ATSScore: 90},
		Quality: types.QualityResult{QualityScore: 65, ModelUsed: types.ModelUsedML},
	})
	output := buf.String()

	assert.Contains(t, output, "QUALITY SCORE")
	assert.Contains(t, output, "ATS COMPLIANCE")
	assert.Contains(t, output, "POWER VERBS")
	assert.NotContains(t, output, "JOB DESCRIPTION MATCH")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
