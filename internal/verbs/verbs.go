// Package verbs finds weak verbs in resume text, suggests stronger
// replacements and measures the balance of strong to weak verbs.
package verbs

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/keywords"
	"github.com/jonathan/resumesense/internal/types"
)

const (
	contextRadius   = 20
	contextKeyRunes = 30
	maxSuggestions  = 3
	maxFindings     = 20
	maxVerbsFound   = 10
)

// FindWeakVerbs returns weak verb occurrences ordered by position. An
// occurrence whose verb and leading context repeat an earlier finding is
// dropped. At most 20 findings are returned.
func FindWeakVerbs(text string) []types.WeakVerbFinding {
	f := keywords.Fold(text)

	var findings []types.WeakVerbFinding
	for _, wv := range weakVerbs {
		verbLen := utf8.RuneCountInString(wv.verb)
		for _, pos := range f.FindWord(wv.verb) {
			start := max(0, pos-contextRadius)
			end := min(f.Len(), pos+verbLen+contextRadius)
			findings = append(findings, types.WeakVerbFinding{
				WeakVerb:    wv.verb,
				Suggestions: topSuggestions(wv.suggestions),
				Context:     strings.TrimSpace(f.Slice(start, end)),
				Position:    pos,
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Position < findings[j].Position
	})

	type contextKey struct{ verb, prefix string }
	seen := make(map[contextKey]struct{}, len(findings))
	unique := make([]types.WeakVerbFinding, 0, len(findings))
	for _, finding := range findings {
		key := contextKey{finding.WeakVerb, runePrefix(finding.Context, contextKeyRunes)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, finding)
		if len(unique) == maxFindings {
			break
		}
	}
	return unique
}

// Stats counts every weak and strong verb occurrence. PowerVerbScore is the
// strong share of all counted verbs as a percentage; text without verbs of
// either kind scores 0.
func Stats(text string) *types.PowerVerbStats {
	f := keywords.Fold(text)

	weakCount := 0
	found := []types.VerbCount{}
	for _, wv := range weakVerbs {
		if n := f.CountWord(wv.verb); n > 0 {
			weakCount += n
			found = append(found, types.VerbCount{Verb: wv.verb, Count: n})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Count > found[j].Count
	})
	if len(found) > maxVerbsFound {
		found = found[:maxVerbsFound]
	}

	strongCount := 0
	for _, verb := range strongVerbs {
		strongCount += f.CountWord(verb)
	}

	score := float64(strongCount) / float64(max(weakCount+strongCount, 1)) * 100
	return &types.PowerVerbStats{
		WeakVerbCount:   weakCount,
		StrongVerbCount: strongCount,
		WeakVerbsFound:  found,
		PowerVerbScore:  math.Round(score*100) / 100,
	}
}

// Analyze returns the findings together with the statistics.
func Analyze(text string) *types.PowerVerbReport {
	return &types.PowerVerbReport{
		Findings: FindWeakVerbs(text),
		Stats:    *Stats(text),
	}
}

func topSuggestions(all []string) []string {
	n := min(len(all), maxSuggestions)
	out := make([]string, n)
	copy(out, all[:n])
	return out
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
