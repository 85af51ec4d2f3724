package ats

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resumesense/internal/keywords"
	"github.com/jonathan/resumesense/internal/types"
)

var (
	educationTerms  = []string{"education", "academic", "degree", "university", "college", "school"}
	experienceTerms = []string{"experience", "employment", "work history", "professional", "career"}
	skillsTerms     = []string{"skills", "technical skills", "competencies", "proficiencies"}
	contactTerms    = []string{"email", "phone", "address", "contact"}
	summaryTerms    = []string{"summary", "objective", "profile", "about"}
	addressTerms    = []string{"street", "avenue", "road", "drive", "lane", "city", "state", "zip"}
)

var (
	// EmailPattern matches an email address.
	EmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// PhonePatterns match local, parenthesized and international numbers.
	PhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	}

	tablePattern  = regexp.MustCompile(` {3,}|\t`)
	bulletPattern = regexp.MustCompile(`[•\-*▪●◦‣]\s`)
)

const (
	maxSpecialCharRatio = 0.3
	headerFooterMinimum = 10
	headerFooterWindow  = 3
)

// CheckSections tests each standard section by keyword containment.
func CheckSections(text string) types.SectionChecks {
	lower := strings.ToLower(text)
	return types.SectionChecks{
		Education:  containsAny(lower, educationTerms),
		Experience: containsAny(lower, experienceTerms),
		Skills:     containsAny(lower, skillsTerms),
		Contact:    containsAny(lower, contactTerms),
		Summary:    containsAny(lower, summaryTerms),
	}
}

// CheckContact looks for an email address, a phone number and address words.
func CheckContact(text string) types.ContactCheck {
	hasEmail := EmailPattern.MatchString(text)
	hasPhone := HasPhone(text)
	return types.ContactCheck{
		HasEmail:   hasEmail,
		HasPhone:   hasPhone,
		HasAddress: containsAny(strings.ToLower(text), addressTerms),
		Complete:   hasEmail && hasPhone,
	}
}

// HasPhone reports whether any phone pattern matches.
func HasPhone(text string) bool {
	for _, p := range PhonePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// CheckFormatting derives the formatting risk flags.
func CheckFormatting(text string) types.FormattingChecks {
	return types.FormattingChecks{
		HasTables:           tablePattern.MatchString(text),
		ExcessiveFormatting: SpecialCharRatio(text) > maxSpecialCharRatio,
		HasHeadersFooters:   hasRepeatedHeaderFooter(text),
		HasBullets:          bulletPattern.MatchString(text),
	}
}

// SpecialCharRatio is the share of characters that are neither word
// characters nor whitespace.
func SpecialCharRatio(text string) float64 {
	total, special := 0, 0
	for _, r := range text {
		total++
		if !keywords.IsWordRune(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}

// hasRepeatedHeaderFooter reports a non-empty line from the first three
// lines that reappears in the last three, for texts longer than ten lines.
func hasRepeatedHeaderFooter(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) <= headerFooterMinimum {
		return false
	}

	footer := make(map[string]struct{}, headerFooterWindow)
	for _, line := range lines[len(lines)-headerFooterWindow:] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			footer[trimmed] = struct{}{}
		}
	}
	for _, line := range lines[:headerFooterWindow] {
		if _, ok := footer[strings.TrimSpace(line)]; ok {
			return true
		}
	}
	return false
}
