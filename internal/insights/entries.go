package insights

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/keywords"
)

const (
	maxDescriptorWords = 4
	minEntryWords      = 6
	minEntryRunes      = 10
)

var (
	bulletGlyphs = strings.NewReplacer("•", "-", "‣", "-", "◦", "-", "⁃", "-")
	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	nonAlnum     = regexp.MustCompile(`[^a-z0-9 ]`)
)

type entryState int

const (
	idle entryState = iota
	accumulatingEntry
)

// entrySplitter turns the lines of a block into entries. Blank lines and
// new-entry triggers close the current entry; short descriptor lines are
// folded into it.
type entrySplitter struct {
	state   entryState
	current []string
	entries []string
}

func (s *entrySplitter) feed(line string) {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		s.commit()
		return
	}
	if isNoiseLine(stripped) {
		return
	}

	content := strings.TrimSpace(strings.TrimLeft(stripped, "-* "))
	if content == "" {
		return
	}

	switch {
	case s.state == accumulatingEntry && isShortDescriptor(content):
		s.current = append(s.current, content)
	case s.state == accumulatingEntry && startsNewEntry(content):
		s.commit()
		s.start(content)
	case s.state == idle:
		s.start(content)
	default:
		s.current = append(s.current, content)
	}
}

func (s *entrySplitter) start(line string) {
	s.state = accumulatingEntry
	s.current = []string{line}
}

// commit closes the current entry, keeping it only if it is not noise and
// has at least six words once cleaned.
func (s *entrySplitter) commit() {
	defer func() {
		s.state = idle
		s.current = nil
	}()
	if s.state != accumulatingEntry {
		return
	}

	merged := strings.Join(s.current, " ")
	if isNoiseEntry(strings.ToLower(merged)) {
		return
	}
	cleaned := cleanEntryText(merged)
	if len(strings.Fields(cleaned)) >= minEntryWords {
		s.entries = append(s.entries, cleaned)
	}
}

// SplitEntries splits a block body into cleaned entries.
func SplitEntries(block string) []string {
	block = strings.ReplaceAll(block, "\r", "\n")
	block = bulletGlyphs.Replace(block)

	var s entrySplitter
	for _, line := range strings.Split(block, "\n") {
		s.feed(line)
	}
	s.commit()
	return s.entries
}

func isShortDescriptor(line string) bool {
	return len(strings.Fields(line)) <= maxDescriptorWords && !strings.ContainsAny(line, ":|")
}

func startsNewEntry(line string) bool {
	if strings.Contains(line, "|") || keywords.IsUpperText(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, term := range newEntryTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return yearPattern.MatchString(line)
}

func isNoiseLine(line string) bool {
	normalized := strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(line), " "))
	if normalized == "" {
		return true
	}
	_, noise := noiseSet[normalized]
	return noise
}

func isNoiseEntry(lower string) bool {
	if utf8.RuneCountInString(lower) < minEntryRunes {
		return true
	}
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// cleanEntryText collapses whitespace and drops leading words that are noise
// prefixes or bare technology names.
func cleanEntryText(text string) string {
	words := strings.Fields(text)
	for len(words) > 0 {
		first := strings.ToLower(words[0])
		_, noise := noiseSet[first]
		_, tech := techTokens[first]
		if !noise && !tech {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}
