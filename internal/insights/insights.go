// Package insights extracts project and achievement highlights from resume
// text. Headed sections are preferred; when a resume has none, sentences
// from the whole document are scanned instead.
package insights

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/types"
)

const (
	maxProjects     = 5
	maxAchievements = 5

	baseConfidence     = 0.4
	techBonus          = 0.2
	metricBonus        = 0.2
	lengthBonus        = 0.2
	fallbackLengthSpan = 0.3
	maxConfidence      = 0.99
	fullLengthRunes    = 300.0
)

// Extract returns up to five projects and five achievements.
func Extract(text string) *types.Insights {
	blocks := SegmentBlocks(text)
	sentences := splitSentences(text)

	projects := extractProjects(blocks, sentences)
	achievements := extractAchievements(blocks, sentences)

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	if len(achievements) > maxAchievements {
		achievements = achievements[:maxAchievements]
	}
	return &types.Insights{Projects: projects, Achievements: achievements}
}

func extractProjects(blocks []Block, sentences []string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	seen := make(map[string]struct{})

	add := func(p types.ProjectEntry) {
		key := strings.ToLower(p.Title)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		projects = append(projects, p)
	}

	for _, body := range blocksMatching(blocks, projectSectionHeaders) {
		for _, entry := range SplitEntries(body) {
			add(sectionProject(entry))
		}
	}

	if len(projects) == 0 {
		for _, sentence := range sentences {
			if p, ok := sentenceProject(sentence); ok {
				add(p)
			}
		}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Confidence > projects[j].Confidence
	})
	return projects
}

// sectionProject scores an entry from a project section. Technology and
// metric mentions and entry length each raise confidence.
func sectionProject(entry string) types.ProjectEntry {
	stack := techStack(entry)

	confidence := baseConfidence
	if len(stack) > 0 {
		confidence += techBonus
	}
	if hasMetric(entry) {
		confidence += metricBonus
	}
	confidence += lengthBonus * lengthFactor(entry)

	return types.ProjectEntry{
		Title:      projectTitle(entry),
		Summary:    cleanEntryText(entry),
		TechStack:  stack,
		Confidence: round2(math.Min(confidence, maxConfidence)),
	}
}

// sentenceProject accepts a sentence that names a project, has a structural
// delimiter, mentions a technology and keeps six words once cleaned.
func sentenceProject(sentence string) (types.ProjectEntry, bool) {
	lower := strings.ToLower(sentence)
	if !containsAny(lower, projectKeywords) || !hasDelimiter(sentence) {
		return types.ProjectEntry{}, false
	}

	stack := techStack(sentence)
	if len(stack) == 0 {
		return types.ProjectEntry{}, false
	}

	summary := cleanEntryText(sentence)
	if len(strings.Fields(summary)) < minEntryWords {
		return types.ProjectEntry{}, false
	}

	return types.ProjectEntry{
		Title:      projectTitle(sentence),
		Summary:    summary,
		TechStack:  stack,
		Confidence: round2(baseConfidence + fallbackLengthSpan*lengthFactor(summary)),
	}, true
}

func extractAchievements(blocks []Block, sentences []string) []types.AchievementEntry {
	achievements := []types.AchievementEntry{}
	seen := make(map[string]struct{})

	add := func(a types.AchievementEntry) {
		key := strings.ToLower(a.Title)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		achievements = append(achievements, a)
	}

	for _, body := range blocksMatching(blocks, achievementSectionHeaders) {
		for _, entry := range SplitEntries(body) {
			add(achievementEntry(entry))
		}
	}

	if len(achievements) == 0 {
		for _, sentence := range sentences {
			lower := strings.ToLower(sentence)
			if !containsAny(lower, achievementKeywords) && !containsAny(lower, coCurricularKeywords) {
				continue
			}
			add(achievementEntry(sentence))
		}
	}

	sort.SliceStable(achievements, func(i, j int) bool {
		return achievements[i].Category == types.CategoryCoCurricular &&
			achievements[j].Category != types.CategoryCoCurricular
	})
	return achievements
}

func achievementEntry(text string) types.AchievementEntry {
	category := types.CategoryAchievement
	if containsAny(strings.ToLower(text), coCurricularKeywords) {
		category = types.CategoryCoCurricular
	}
	return types.AchievementEntry{
		Title:          achievementTitle(text),
		Details:        cleanEntryText(text),
		Category:       category,
		ImpactKeywords: impactKeywords(text),
	}
}

func hasDelimiter(s string) bool {
	return strings.Contains(s, "|") || strings.Contains(s, " - ") || strings.Contains(s, ":")
}

func lengthFactor(s string) float64 {
	return math.Min(float64(utf8.RuneCountInString(s))/fullLengthRunes, 1)
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
