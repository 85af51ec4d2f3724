// Package keywords tokenizes free text and extracts the domain and general
// keyword sets used by the matcher and the feature extractor.
package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word is a maximal run of word characters. Start and End are rune offsets
// into the source text.
type Word struct {
	Text  string
	Lower string
	Start int
	End   int
}

// IsWordRune reports whether r is a word character: a Unicode letter, a
// Unicode number or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Words splits text into word runs in order of appearance.
func Words(text string) []Word {
	return wordsOf([]rune(text))
}

func wordsOf(runes []rune) []Word {
	var words []Word
	start := -1
	for i, r := range runes {
		if IsWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, newWord(runes, start, i))
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, newWord(runes, start, len(runes)))
	}
	return words
}

func newWord(runes []rune, start, end int) Word {
	text := string(runes[start:end])
	return Word{Text: text, Lower: strings.ToLower(text), Start: start, End: end}
}

// Tokenize returns the lowercase word tokens of text.
func Tokenize(text string) []string {
	words := Words(text)
	tokens := make([]string, len(words))
	for i, w := range words {
		tokens[i] = w.Lower
	}
	return tokens
}

// KeywordDensity is the share of whitespace-separated words that are longer
// than two characters and not stop words. Empty text has density 0.
func KeywordDensity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	meaningful := 0
	for _, w := range words {
		if _, stop := densityStopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) > 2 {
			meaningful++
		}
	}
	return float64(meaningful) / float64(len(words))
}

// Folded holds text lowered rune by rune so that offsets into Lower are
// offsets into Source.
type Folded struct {
	Source []rune
	Lower  []rune
}

// Fold prepares text for case-insensitive whole-word search.
func Fold(text string) Folded {
	src := []rune(text)
	lower := make([]rune, len(src))
	for i, r := range src {
		lower[i] = unicode.ToLower(r)
	}
	return Folded{Source: src, Lower: lower}
}

// Len returns the length of the text in runes.
func (f Folded) Len() int { return len(f.Source) }

// Slice returns the source text between two rune offsets.
func (f Folded) Slice(start, end int) string {
	return string(f.Source[start:end])
}

// FindWord returns the rune offsets of non-overlapping occurrences of term
// bounded by word boundaries on both sides. Term must already be lowercase.
func (f Folded) FindWord(term string) []int {
	needle := []rune(term)
	m := len(needle)
	if m == 0 {
		return nil
	}

	var hits []int
	for i := 0; i+m <= len(f.Lower); {
		if f.matchAt(i, needle) && f.boundary(i) && f.boundary(i+m) {
			hits = append(hits, i)
			i += m
			continue
		}
		i++
	}
	return hits
}

// ContainsWord reports whether term occurs as a whole word.
func (f Folded) ContainsWord(term string) bool {
	return len(f.FindWord(term)) > 0
}

// CountWord counts whole-word occurrences of term.
func (f Folded) CountWord(term string) int {
	return len(f.FindWord(term))
}

func (f Folded) matchAt(i int, needle []rune) bool {
	for j, r := range needle {
		if f.Lower[i+j] != r {
			return false
		}
	}
	return true
}

// boundary reports a word boundary before rune offset p.
func (f Folded) boundary(p int) bool {
	before := p > 0 && IsWordRune(f.Lower[p-1])
	after := p < len(f.Lower) && IsWordRune(f.Lower[p])
	return before != after
}

// runeOffset converts a byte offset in s to a rune offset.
func runeOffset(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}
