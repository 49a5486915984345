// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tokenize

import (
	"reflect"
	"testing"
)

// Conformance tests for the candidate pattern: classifier decisions depend
// on exact match boundaries, so these pin the behavior down.
func TestHyphenated(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single compound in a phrase",
			text: "real-time operating system",
			want: []string{"real-time"},
		},
		{
			name: "multi-hyphen token matched whole",
			text: "an end-to-end guarantee",
			want: []string{"end-to-end"},
		},
		{
			name: "several candidates",
			text: "client-side and server-side rendering",
			want: []string{"client-side", "server-side"},
		},
		{
			name: "digits allowed after the first letter",
			text: "the x25-node9 interface",
			want: []string{"x25-node9"},
		},
		{
			name: "digit-led token not matched",
			text: "3-way handshake",
			want: nil,
		},
		{
			name: "trailing hyphen not part of a token",
			text: "pre- and post-processing",
			want: []string{"post-processing"},
		},
		{
			name: "punctuation forms a boundary",
			text: "(peer-to-peer)",
			want: []string{"peer-to-peer"},
		},
		{
			name: "underscore suppresses the word boundary",
			text: "_real-time",
			want: nil,
		},
		{
			name: "uppercase not matched",
			text: "Real-Time",
			want: nil,
		},
		{
			name: "no hyphens",
			text: "plain words only",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hyphenated(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Hyphenated(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidEntry(t *testing.T) {
	tests := []struct {
		name string
		term string
		want bool
	}{
		{"plain headword", "Access Control", true},
		{"angle-bracket markup", "key<sub>priv</sub>", false},
		{"brace markup", "{0,1} string", false},
		{"leading parenthesis", "(ISC)2 certification", false},
		{"leading square bracket", "[RFC 5280] profile", false},
		{"leading brace", "{x} notation", false},
		{"interior parenthesis ok", "triple (3x) redundancy", true},
		{"empty headword", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEntry(tt.term); got != tt.want {
				t.Errorf("ValidEntry(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestTermWords(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{
			name: "lowercases and splits",
			term: "Access Control List",
			want: []string{"access", "control", "list"},
		},
		{
			name: "hyphens survive inside words",
			term: "Real-Time Operating System",
			want: []string{"real-time", "operating", "system"},
		},
		{
			name: "punctuation becomes a separator",
			term: "Node.js",
			want: []string{"node", "js"},
		},
		{
			name: "markup skipped",
			term: "key<sub>priv</sub>",
			want: nil,
		},
		{
			name: "brace markup skipped",
			term: "{0,1} string",
			want: nil,
		},
		{
			name: "leading bracket skipped",
			term: "(ISC)2 certification",
			want: nil,
		},
		{
			name: "more than four words skipped",
			term: "National Institute of Standards and Technology",
			want: nil,
		},
		{
			name: "exactly four words kept",
			term: "role based access control",
			want: []string{"role", "based", "access", "control"},
		},
		{
			name: "surrounding hyphens and underscores trimmed",
			term: "_tls- handshake",
			want: []string{"tls", "handshake"},
		},
		{
			name: "empty term",
			term: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TermWords(tt.term)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TermWords(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}
