// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tokenize scans text for candidate vocabulary tokens.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
)

// hyphenated matches candidate compounds: a lowercase-letter-led segment,
// a hyphen, and one or more further alphanumeric/hyphen characters ending
// on an alphanumeric. Classifier decisions are sensitive to the exact match
// boundaries, so this pattern is load-bearing.
var hyphenated = regexp.MustCompile(`\b[a-z][a-z0-9]*-[a-z0-9-]+[a-z0-9]\b`)

// maxTermWords bounds glossary term splitting; longer phrases are
// organization names, not terms.
const maxTermWords = 4

// Hyphenated returns every hyphenated candidate token in text. Callers
// lowercase the text first; the pattern only matches lowercase runs.
func Hyphenated(text string) []string {
	return hyphenated.FindAllString(text, -1)
}

// ValidEntry reports whether a glossary headword is processable at all.
// Entries carrying HTML/XML or math markup, or starting with an opening
// bracket, are skipped wholesale, abbreviations included.
func ValidEntry(term string) bool {
	if strings.ContainsAny(term, "<>{}") {
		return false
	}
	if term != "" && strings.IndexByte("([{", term[0]) >= 0 {
		return false
	}
	return true
}

// TermWords normalizes a glossary headword and splits it into candidate
// words. It returns nil for invalid entries and for headwords splitting
// into more than maxTermWords words; the word cap only suppresses word
// extraction, not the entry's abbreviations.
func TermWords(term string) []string {
	if !ValidEntry(term) {
		return nil
	}

	cleaned := stripPunct(strings.ToLower(term))
	words := strings.Fields(cleaned)
	if len(words) > maxTermWords {
		return nil
	}

	var out []string
	for _, word := range words {
		word = strings.Trim(word, "-_")
		if word != "" {
			out = append(out, word)
		}
	}
	return out
}

// stripPunct replaces every rune outside letters, digits, underscore,
// hyphen, and whitespace with a space, so "Node.js" splits into "node js".
func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case r == '_' || r == '-':
			return r
		case unicode.IsSpace(r):
			return r
		}
		return ' '
	}, s)
}
