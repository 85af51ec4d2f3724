package keywords

import (
	"strings"
	"unicode/utf8"
)

// ExtractDomain returns the domain keywords of text: taxonomy terms found as
// substrings, upper-case acronyms, the base names of name.ext mentions and
// underscore-joined compound terms.
func ExtractDomain(text string) *Set {
	lower := strings.ToLower(text)
	set := newSet()

	for _, term := range domainTerms {
		if i := strings.Index(lower, term); i >= 0 {
			set.add(term, runeOffset(lower, i))
		}
	}

	runes := []rune(text)
	words := wordsOf(runes)
	for _, w := range words {
		if isAcronym(w.Text) {
			set.add(w.Lower, w.Start)
		}
	}

	for _, m := range scanMentions(runes, words) {
		set.add(m.base.Lower, m.base.Start)
	}

	for _, term := range compoundTerms {
		if i := strings.Index(lower, term); i >= 0 {
			set.add(strings.ReplaceAll(term, " ", "_"), runeOffset(lower, i))
		}
	}

	return set.seal()
}

// ExtractGeneral returns the stop-word filtered tokens of text that are
// longer than two characters and are neither taxonomy terms nor members of
// domain. Passing the domain set of the same text keeps the two disjoint.
func ExtractGeneral(text string, domain *Set) *Set {
	set := newSet()
	for _, w := range Words(text) {
		if utf8.RuneCountInString(w.Lower) <= 2 {
			continue
		}
		if _, stop := generalStopWords[w.Lower]; stop {
			continue
		}
		if IsDomainTerm(w.Lower) || domain.Contains(w.Lower) {
			continue
		}
		set.add(w.Lower, w.Start)
	}
	return set.seal()
}

// Extract returns both keyword sets of text.
func Extract(text string) (domain, general *Set) {
	domain = ExtractDomain(text)
	return domain, ExtractGeneral(text, domain)
}

// isAcronym reports a word of two to five ASCII capitals.
func isAcronym(word string) bool {
	if len(word) < 2 || len(word) > 5 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// Acronyms returns the distinct acronyms of text in order of appearance.
func Acronyms(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, w := range Words(text) {
		if !isAcronym(w.Text) {
			continue
		}
		if _, ok := seen[w.Text]; ok {
			continue
		}
		seen[w.Text] = struct{}{}
		out = append(out, w.Text)
	}
	return out
}

// ExtensionMentions returns name.ext technology mentions such as "Node.js"
// as written in text, in order of appearance.
func ExtensionMentions(text string) []string {
	runes := []rune(text)
	var out []string
	for _, m := range scanMentions(runes, wordsOf(runes)) {
		out = append(out, m.full)
	}
	return out
}

type mention struct {
	base Word
	full string
}

// scanMentions finds a word, a dot and a known extension word. Mentions do
// not overlap: the extension cannot start another mention.
func scanMentions(runes []rune, words []Word) []mention {
	var out []mention
	for i := 0; i+1 < len(words); i++ {
		w, next := words[i], words[i+1]
		if next.Start != w.End+1 || runes[w.End] != '.' {
			continue
		}
		if IsTechExtension(next.Lower) {
			out = append(out, mention{base: w, full: string(runes[w.Start:next.End])})
			i++
		}
	}
	return out
}
