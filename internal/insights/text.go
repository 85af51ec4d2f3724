package insights

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/keywords"
)

const (
	maxTechStack      = 8
	maxImpactKeywords = 5
	maxTitleWords     = 10
	minSentenceRunes  = 25
	defaultTitle      = "Highlighted Project"
)

var (
	projectAnchor     = regexp.MustCompile(`(?i)(?:project|application|platform|system)\s*[:\-]\s*([A-Za-z0-9 ,&()/\-]+)`)
	achievementAnchor = regexp.MustCompile(`(?i)(?:awarded|won|received|recognized for)\s+([A-Za-z0-9 ,&()/\-]+)`)
	titleDisallowed   = regexp.MustCompile(`[^A-Za-z0-9 ,&()/\-]`)
	metricPattern     = regexp.MustCompile(`\b\d+(\.\d+)?%|\$\d+|\d+\+\b`)
	sentenceBullets   = strings.NewReplacer("•", ". ", "▪", ". ", "●", ". ", "◦", ". ")
)

// techStack lists known technologies mentioned in text, formatted for
// display: short alphabetic names upper-cased, others title-cased.
func techStack(text string) []string {
	folded := keywords.Fold(text)
	lower := string(folded.Lower)

	stack := []string{}
	for _, term := range techTerms {
		found := folded.ContainsWord(term) ||
			(strings.Contains(lower, term) && strings.IndexFunc(term, isNonWord) >= 0)
		if !found {
			continue
		}
		stack = append(stack, displayTech(term))
		if len(stack) == maxTechStack {
			break
		}
	}
	return stack
}

func displayTech(term string) string {
	if utf8.RuneCountInString(term) <= 4 && isAlpha(term) {
		return strings.ToUpper(term)
	}
	return keywords.TitleCase(term)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isNonWord(r rune) bool { return !keywords.IsWordRune(r) }

func hasMetric(text string) bool {
	return metricPattern.MatchString(text)
}

func impactKeywords(text string) []string {
	lower := strings.ToLower(text)
	hits := []string{}
	for _, term := range impactTerms {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
			if len(hits) == maxImpactKeywords {
				break
			}
		}
	}
	return hits
}

func projectTitle(sentence string) string {
	if m := projectAnchor.FindStringSubmatch(sentence); m != nil {
		return trimTitle(cleanEntryText(m[1]))
	}
	clause := firstPart(sentence, ",")
	clause = firstPart(clause, " - ")
	clause = firstPart(clause, ". ")
	return trimTitle(cleanEntryText(clause))
}

func achievementTitle(sentence string) string {
	if m := achievementAnchor.FindStringSubmatch(sentence); m != nil {
		return trimTitle(cleanEntryText(m[1]))
	}
	return trimTitle(cleanEntryText(firstPart(sentence, ". ")))
}

// trimTitle keeps title-safe characters and at most ten words.
func trimTitle(text string) string {
	cleaned := strings.TrimSpace(titleDisallowed.ReplaceAllString(text, ""))
	if cleaned == "" {
		return defaultTitle
	}
	words := strings.Fields(cleaned)
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " ")
}

func firstPart(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

// splitSentences flattens bullets and whitespace and splits after sentence
// punctuation, keeping fragments longer than 25 characters.
func splitSentences(text string) []string {
	normalized := strings.Join(strings.Fields(sentenceBullets.Replace(text)), " ")

	var sentences []string
	runes := []rune(normalized)
	start := 0
	for i, r := range runes {
		if r == ' ' && i > 0 && strings.ContainsRune(".!?", runes[i-1]) {
			sentences = appendSentence(sentences, string(runes[start:i]))
			start = i + 1
		}
	}
	return appendSentence(sentences, string(runes[start:]))
}

func appendSentence(sentences []string, part string) []string {
	part = strings.TrimSpace(part)
	if utf8.RuneCountInString(part) > minSentenceRunes {
		sentences = append(sentences, part)
	}
	return sentences
}
