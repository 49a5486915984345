// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "strings"

// Token shape bounds for compounds. More than maxCompoundHyphens hyphens or
// more than maxCompoundLen characters usually means a product name, not a
// technical compound.
const (
	maxCompoundHyphens = 2
	maxCompoundLen     = 25

	// maxSuffixMatchLen caps suffix-only acceptance: vendor products like
	// "threat-stack" share suffixes with real compounds but run longer.
	maxSuffixMatchLen = 20
)

// IsTechnicalCompound reports whether a lowercase hyphenated candidate is a
// genuine technical compound (e.g. "real-time") rather than a vendor or
// product name (e.g. "apache-kafka"). Rules apply in order; the first match
// decides, and rejection rules run before acceptance rules.
func IsTechnicalCompound(term string) bool {
	if strings.Count(term, "-") > maxCompoundHyphens || len(term) > maxCompoundLen {
		return false
	}

	for _, pattern := range vendorPatterns {
		if strings.Contains(term, pattern) {
			return false
		}
	}

	if vendorNames[term] {
		return false
	}

	if specializedTerms[term] {
		return false
	}

	if canonicalCompounds[term] {
		return true
	}

	for _, prefix := range strongPrefixes {
		if strings.HasPrefix(term, prefix) {
			return true
		}
	}

	for _, suffix := range technicalSuffixes {
		if strings.HasSuffix(term, suffix) && len(term) <= maxSuffixMatchLen {
			return true
		}
	}

	return false
}
