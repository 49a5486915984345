// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab aggregates accepted terms and reads and writes vocabulary
// files: line-delimited term lists with a `#` comment header.
package vocab

import "sort"

// Set is a deduplicated collection of accepted terms.
type Set map[string]struct{}

// NewSet returns an empty term set.
func NewSet() Set {
	return make(Set)
}

// Add inserts term into the set.
func (s Set) Add(term string) {
	s[term] = struct{}{}
}

// Has reports whether term is in the set.
func (s Set) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of terms in the set.
func (s Set) Len() int {
	return len(s)
}

// Union adds every term of other into s.
func (s Set) Union(other Set) {
	for term := range other {
		s[term] = struct{}{}
	}
}

// Sorted returns the set's terms in lexicographic order.
func (s Set) Sorted() []string {
	terms := make([]string, 0, len(s))
	for term := range s {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
