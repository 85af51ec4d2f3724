package keywords

import (
	"strings"
	"unicode"
)

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// TitleCase upper-cases the first cased letter of every run of cased letters
// and lower-cases the rest. Digits and punctuation start a new run, so
// "ci/cd" becomes "Ci/Cd" and "3d" becomes "3D".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				r = unicode.ToLower(r)
			}
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				r = unicode.ToTitle(r)
			}
			prevCased = true
		default:
			prevCased = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsUpperText reports whether s has at least one cased letter and no
// lower-case or title-case letters.
func IsUpperText(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if isCased(r) {
			cased = true
		}
	}
	return cased
}

// IsTitleText reports whether s is unchanged by TitleCase.
func IsTitleText(s string) bool {
	return s == TitleCase(s)
}
