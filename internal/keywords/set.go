package keywords

import "sort"

// Set is an ordered keyword set. Terms are ordered by the rune offset of
// their first occurrence in the source text, ties broken lexically.
type Set struct {
	first map[string]int
	terms []string
}

func newSet() *Set {
	return &Set{first: make(map[string]int)}
}

// add records term at pos, keeping the earliest position.
func (s *Set) add(term string, pos int) {
	if prev, ok := s.first[term]; ok && prev <= pos {
		return
	}
	s.first[term] = pos
}

// seal fixes the iteration order. Sets are read-only afterwards.
func (s *Set) seal() *Set {
	s.terms = make([]string, 0, len(s.first))
	for term := range s.first {
		s.terms = append(s.terms, term)
	}
	sort.Slice(s.terms, func(i, j int) bool {
		pi, pj := s.first[s.terms[i]], s.first[s.terms[j]]
		if pi != pj {
			return pi < pj
		}
		return s.terms[i] < s.terms[j]
	})
	return s
}

// Len returns the number of terms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// Contains reports whether term is in the set.
func (s *Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.first[term]
	return ok
}

// Terms returns the terms in order. The slice must not be modified.
func (s *Set) Terms() []string {
	if s == nil {
		return nil
	}
	return s.terms
}

// Intersect returns the terms of s that are also in other, in s order.
func (s *Set) Intersect(other *Set) []string {
	var out []string
	for _, term := range s.Terms() {
		if other.Contains(term) {
			out = append(out, term)
		}
	}
	return out
}

// Difference returns the terms of s that are not in other, in s order.
func (s *Set) Difference(other *Set) []string {
	var out []string
	for _, term := range s.Terms() {
		if !other.Contains(term) {
			out = append(out, term)
		}
	}
	return out
}
