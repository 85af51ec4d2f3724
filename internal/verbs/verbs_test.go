package verbs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWeakVerbs_OrderedWithContext(t *testing.T) {
	findings := FindWeakVerbs("I did some work. I made a website.")
	require.Len(t, findings, 2)

	assert.Equal(t, "did", findings[0].WeakVerb)
	assert.Equal(t, 2, findings[0].Position)
	assert.Equal(t, []string{"performed", "executed", "accomplished"}, findings[0].Suggestions)
	assert.Equal(t, "I did some work. I made a", findings[0].Context)

	assert.Equal(t, "made", findings[1].WeakVerb)
	assert.Equal(t, 19, findings[1].Position)
	assert.Equal(t, []string{"created", "developed", "built"}, findings[1].Suggestions)
	assert.Equal(t, "I did some work. I made a website.", findings[1].Context)
}

func TestFindWeakVerbs_PositionsAcrossVerbs(t *testing.T) {
	findings := FindWeakVerbs("Managed budgets and improved uptime; used Go. Did it.")
	var got []string
	for _, f := range findings {
		got = append(got, f.WeakVerb)
	}
	assert.Equal(t, []string{"managed", "improved", "used", "did"}, got)
	assert.Equal(t, 46, findings[3].Position)
	assert.Equal(t, "ed uptime; used Go. Did it.", findings[3].Context)
}

func TestFindWeakVerbs_DeduplicatesRepeatedContext(t *testing.T) {
	segment := strings.Repeat("x", 25) + " used " + strings.Repeat("x", 25)
	findings := FindWeakVerbs(segment + segment)
	assert.Len(t, findings, 1)
	assert.Equal(t, 2, Stats(segment+segment).WeakVerbCount)
}

func TestFindWeakVerbs_WholeWordsOnly(t *testing.T) {
	assert.Empty(t, FindWeakVerbs("Undid the misused settings; reused sets-up"))
	assert.Len(t, FindWeakVerbs("set-up"), 1)
}

func TestFindWeakVerbs_Capped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "%02d did it. ", i)
	}
	assert.Len(t, FindWeakVerbs(b.String()), 20)
}

func TestFindWeakVerbs_UnicodePositions(t *testing.T) {
	findings := FindWeakVerbs("Café team: we made it")
	require.Len(t, findings, 1)
	assert.Equal(t, 14, findings[0].Position)
}

func TestStats(t *testing.T) {
	stats := Stats("Managed budgets and improved uptime; used Go. Did it.")
	assert.Equal(t, 4, stats.WeakVerbCount)
	assert.Equal(t, 2, stats.StrongVerbCount)
	assert.Equal(t, 33.33, stats.PowerVerbScore)
	require.Len(t, stats.WeakVerbsFound, 4)
	assert.Equal(t, "did", stats.WeakVerbsFound[0].Verb)
	assert.Equal(t, "used", stats.WeakVerbsFound[1].Verb)
}

func TestStats_CountsEveryOccurrence(t *testing.T) {
	stats := Stats("Led the team. Led the team. We led.")
	assert.Equal(t, 3, stats.WeakVerbCount)
	assert.Equal(t, 3, stats.StrongVerbCount)
	assert.Equal(t, 50.0, stats.PowerVerbScore)
}

func TestStats_SortedByCount(t *testing.T) {
	stats := Stats("used it, made it, made it again, made more")
	require.Len(t, stats.WeakVerbsFound, 2)
	assert.Equal(t, "made", stats.WeakVerbsFound[0].Verb)
	assert.Equal(t, 3, stats.WeakVerbsFound[0].Count)
}

func TestStats_NoVerbs(t *testing.T) {
	for _, text := range []string{"", "Python Go Kubernetes", "12345"} {
		stats := Stats(text)
		assert.Equal(t, 0.0, stats.PowerVerbScore)
		assert.NotNil(t, stats.WeakVerbsFound)
	}
}

func TestStats_OnlyStrong(t *testing.T) {
	assert.Equal(t, 100.0, Stats("Designed and optimized systems").PowerVerbScore)
}

func TestAnalyze(t *testing.T) {
	report := Analyze("")
	assert.NotNil(t, report.Findings)
	assert.Empty(t, report.Findings)
	assert.Equal(t, 0, report.Stats.WeakVerbCount)
}

func TestSuggestionsAndIsStrong(t *testing.T) {
	assert.Equal(t, []string{"required", "demanded", "necessitated"}, Suggestions("needed"))
	assert.Nil(t, Suggestions("architected"))
	assert.True(t, IsStrong("optimized"))
	assert.False(t, IsStrong("did"))
}
