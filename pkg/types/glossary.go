// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the terminology-engine pipeline.
package types

// Glossary is the top-level structure of the NIST CSRC glossary JSON export.
type Glossary struct {
	// ParentTerms holds every glossary entry in the export.
	ParentTerms []GlossaryEntry `json:"parentTerms"`
}

// GlossaryEntry is a single glossary entry: the term text plus any
// abbreviations or synonyms recorded for it.
type GlossaryEntry struct {
	// Term is the entry's headword as published, mixed case and possibly
	// multi-word (e.g. "Real-Time Operating System").
	Term string `json:"term"`

	// AbbrSyn lists abbreviations and synonyms for the term.
	AbbrSyn []Abbreviation `json:"abbrSyn"`
}

// Abbreviation is one abbreviation or synonym attached to a glossary entry.
type Abbreviation struct {
	// Text is the abbreviation text (e.g. "RTOS").
	Text string `json:"text"`
}
