// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules classifies candidate vocabulary tokens against static rule
// tables: an allowlist of canonical technical compounds, vendor and jargon
// denylists, prefix/suffix heuristics, and a stopword list for single words.
// The tables are fixed at compile time and never mutated.
package rules

import "sort"

// strongPrefixes are morphemes that mark a hyphenated token as a technical
// compound with high confidence (negation, repetition, directionality).
var strongPrefixes = []string{
	"anti-", "auto-", "bi-", "client-", "cross-", "end-to",
	"multi-", "non-", "peer-to", "point-to", "post-", "pre-",
	"pub-", "read-", "real-", "self-", "server-", "single-",
	"uni-", "write-", "zero-",
}

// technicalSuffixes mark a compound with medium confidence; they only count
// for tokens short enough not to be vendor product names.
var technicalSuffixes = []string{
	"-active", "-aware", "-balance", "-based", "-break", "-check",
	"-code", "-down", "-duplex", "-forward", "-free", "-grained",
	"-heal", "-limit", "-lived", "-load", "-master", "-only",
	"-out", "-over", "-passive", "-pressure", "-process", "-queue",
	"-read", "-reload", "-replica", "-response", "-running", "-safe",
	"-scale", "-secondary", "-sent", "-shake", "-side", "-site",
	"-slave", "-split", "-stack", "-tenant", "-threaded", "-tier",
	"-time", "-up", "-write",
}

// canonicalCompounds are core technical compounds that are always accepted
// and always included in compound pipeline output, whether or not any input
// source mentions them.
var canonicalCompounds = map[string]bool{
	// Architectural patterns
	"end-to-end": true, "peer-to-peer": true, "point-to-point": true,
	"client-side": true, "server-side": true,
	"active-active": true, "active-passive": true,
	"master-master": true, "master-slave": true,
	"leader-follower": true, "primary-secondary": true,
	"read-write": true, "read-only": true, "write-only": true,

	// Timing/execution
	"just-in-time": true, "ahead-of-time": true,
	"real-time": true, "near-real-time": true,
	"compile-time": true, "run-time": true, "build-time": true, "design-time": true,

	// Concurrency/atomicity
	"compare-and-swap": true, "test-and-set": true,
	"lock-free": true, "wait-free": true,
	"copy-on-write": true, "write-ahead": true,

	// Messaging/communication
	"fire-and-forget": true, "request-response": true,
	"pub-sub": true, "message-queue": true,
	"challenge-response": true,

	// System properties
	"multi-tenant": true, "single-tenant": true,
	"multi-threaded": true, "single-threaded": true,
	"full-duplex": true, "half-duplex": true,

	// Web/network
	"cross-origin": true, "same-origin": true,
	"cross-site": true, "same-site": true,
	"cross-domain": true,

	// Security/cryptography
	"non-repudiation": true,
	"zero-knowledge": true,
	"multi-factor": true,

	// Operations
	"hot-reload": true, "load-balance": true,
	"auto-scale": true, "fail-over": true,
	"command-line": true,

	// Phases
	"two-phase": true, "three-way": true,

	// Access patterns
	"role-based": true, "attribute-based": true,
	"host-based": true, "network-based": true,
}

// vendorPatterns are substrings that mark a token as a vendor or product
// name (e.g. "aks-engine-for-azure", "application-high-availability-service").
var vendorPatterns = []string{
	"for-",
	"-for-",
	"-service",
	"-platform",
	"-engine",
}

// vendorNames are known vendor/product names that would otherwise slip
// through the heuristics.
var vendorNames = map[string]bool{
	"visual-studio-code": true,
	"threat-stack":       true,
	"grape-up":           true,
	"kubeservice-stack":  true,
	"auto-isac":          true,
}

// specializedTerms are real compounds that are too protocol-specific for a
// general IT vocabulary (e.g. "adj-rib-out" from BGP, "g-code" from CNC).
var specializedTerms = map[string]bool{
	"adj-rib-out": true,
	"xns-time":    true,
	"td-replica":  true,
	"cd-read":     true,
	"g-code":      true,
}

// stopwords are common English function words excluded from single-word
// term extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "should": true,
	"could": true, "may": true, "might": true, "can": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"with": true, "from": true, "by": true, "as": true, "or": true,
	"and": true, "but": true, "if": true, "then": true, "else": true,
	"when": true, "while": true, "this": true, "that": true, "any": true,
	"all": true, "some": true, "each": true, "every": true,
	"which": true, "what": true, "who": true, "whom": true,
	"whose": true, "where": true, "why": true, "how": true,
}

// Canonical returns the canonical compound allowlist in sorted order.
// The compound pipeline unions these into its output unconditionally.
func Canonical() []string {
	terms := make([]string, 0, len(canonicalCompounds))
	for term := range canonicalCompounds {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
