// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "regexp"

// Word length bounds for single-word terms.
const (
	minWordLen = 2
	maxWordLen = 40
)

// wordShape requires a leading lowercase alphanumeric followed by lowercase
// alphanumerics, hyphens, or underscores.
var wordShape = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// IsValidTerm reports whether a lowercase word qualifies as a single-word
// technical term: within length bounds, shaped like an identifier, not
// purely numeric, and not a common English function word.
func IsValidTerm(word string) bool {
	if len(word) < minWordLen || len(word) > maxWordLen {
		return false
	}

	if !wordShape.MatchString(word) {
		return false
	}

	if isNumeric(word) {
		return false
	}

	if stopwords[word] {
		return false
	}

	return true
}

// isNumeric reports whether s consists entirely of ASCII digits.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
