// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/terminology-engine/internal/rules"
	"github.com/pdiddy/terminology-engine/internal/vocab"
	"github.com/pdiddy/terminology-engine/pkg/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T, glossaryJSON string) types.PipelineConfig {
	t.Helper()
	downloads := t.TempDir()
	source := t.TempDir()
	if glossaryJSON != "" {
		writeFile(t, filepath.Join(downloads, "glossary-export.json"), glossaryJSON)
	}
	return types.PipelineConfig{
		DownloadsDir:  downloads,
		GlossaryFile:  "glossary-export.json",
		SourceDir:     source,
		SourcePattern: "*.txt",
		OutputFile:    filepath.Join(source, "out.txt"),
	}
}

func readTerms(t *testing.T, path string) []string {
	t.Helper()
	terms, err := vocab.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return terms
}

func contains(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}

// --- compound pipeline ---

const sampleGlossary = `{"parentTerms":[
	{"term":"Real-Time Operating System","abbrSyn":[{"text":"RTOS"}]},
	{"term":"Threat-Stack Platform"},
	{"term":"Apache-Kafka Broker"}
]}`

func TestCompounds(t *testing.T) {
	cfg := testConfig(t, sampleGlossary)
	writeFile(t, filepath.Join(cfg.SourceDir, "notes.txt"),
		"Rollouts should be zero-downtime; the g-code exporter is unrelated.\n")

	var buf bytes.Buffer
	summary, err := Compounds(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}

	terms := readTerms(t, cfg.OutputFile)

	for _, want := range []string{"real-time", "zero-downtime"} {
		if !contains(terms, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for _, reject := range []string{"threat-stack", "apache-kafka", "g-code"} {
		if contains(terms, reject) {
			t.Errorf("output contains rejected term %q", reject)
		}
	}

	// The canonical allowlist is always present, mentioned or not.
	for _, term := range rules.Canonical() {
		if !contains(terms, term) {
			t.Errorf("output missing canonical compound %q", term)
		}
	}

	if summary.Total != len(terms) {
		t.Errorf("summary.Total = %d, want %d", summary.Total, len(terms))
	}
	if summary.SourceFiles != 1 {
		t.Errorf("summary.SourceFiles = %d, want 1", summary.SourceFiles)
	}

	// The compound file labels its methodology block "Extraction criteria:".
	raw, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "# Extraction criteria:\n") {
		t.Error("output missing extraction criteria header")
	}
}

// A missing glossary export downgrades to a warning; the pipeline still
// writes the canonical allowlist plus whatever the source files produce.
func TestCompoundsMissingGlossary(t *testing.T) {
	cfg := testConfig(t, "")
	writeFile(t, filepath.Join(cfg.SourceDir, "notes.txt"), "a non-blocking design\n")

	var buf bytes.Buffer
	summary, err := Compounds(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "warning: glossary export not found") {
		t.Errorf("missing warning in output:\n%s", buf.String())
	}
	if summary.GlossaryTerms != 0 {
		t.Errorf("summary.GlossaryTerms = %d, want 0", summary.GlossaryTerms)
	}

	terms := readTerms(t, cfg.OutputFile)
	if !contains(terms, "non-blocking") {
		t.Error("output missing source term non-blocking")
	}
	if !contains(terms, "peer-to-peer") {
		t.Error("output missing canonical compound peer-to-peer")
	}
}

func TestCompoundsMalformedGlossary(t *testing.T) {
	cfg := testConfig(t, `{"parentTerms": [`)

	var buf bytes.Buffer
	if _, err := Compounds(cfg, &buf); err == nil {
		t.Fatal("expected parse error for malformed glossary")
	}
}

func TestCompoundsIdempotent(t *testing.T) {
	cfg := testConfig(t, sampleGlossary)
	writeFile(t, filepath.Join(cfg.SourceDir, "notes.txt"), "multi-region zero-downtime\n")

	var buf bytes.Buffer
	if _, err := Compounds(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	first := readTerms(t, cfg.OutputFile)

	if _, err := Compounds(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	second := readTerms(t, cfg.OutputFile)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("data lines differ across runs:\n%v\n%v", first, second)
	}
}

func TestCompoundsUnreadableSourceSkipped(t *testing.T) {
	cfg := testConfig(t, "")
	// A directory matching the pattern is unreadable as a file.
	if err := os.Mkdir(filepath.Join(cfg.SourceDir, "dir.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(cfg.SourceDir, "ok.txt"), "write-ahead logging\n")

	var buf bytes.Buffer
	summary, err := Compounds(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.SourceFiles != 1 {
		t.Errorf("summary.SourceFiles = %d, want 1", summary.SourceFiles)
	}
	if !strings.Contains(buf.String(), "warning: could not read") {
		t.Errorf("missing read warning in output:\n%s", buf.String())
	}
	if !contains(readTerms(t, cfg.OutputFile), "write-ahead") {
		t.Error("output missing write-ahead")
	}
}

// --- single-word pipeline ---

func TestWords(t *testing.T) {
	cfg := testConfig(t, `{"parentTerms":[
		{"term":"Real-Time Operating System","abbrSyn":[{"text":"RTOS"}]},
		{"term":"The Access Control List","abbrSyn":[{"text":"ACL 2"}]},
		{"term":"National Institute of Standards and Technology"}
	]}`)

	var buf bytes.Buffer
	summary, err := Words(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}

	got := readTerms(t, cfg.OutputFile)
	// "the" is a stopword, "ACL 2" has a space, and the six-word
	// organization name is skipped wholesale. Hyphenated words pass the
	// single-word shape check, so "real-time" stays in.
	want := []string{"access", "control", "list", "operating", "real-time", "rtos", "system"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}

	if summary.Total != len(want) {
		t.Errorf("summary.Total = %d, want %d", summary.Total, len(want))
	}
}

// Markup and bracketed entries are skipped wholesale: their abbreviations
// must not leak into the output either.
func TestWordsSkipsAbbreviationsOfInvalidEntries(t *testing.T) {
	cfg := testConfig(t, `{"parentTerms":[
		{"term":"key<sub>priv</sub>","abbrSyn":[{"text":"kpriv"}]},
		{"term":"(ISC)2 certification","abbrSyn":[{"text":"isc2"}]},
		{"term":"Transport Layer Security","abbrSyn":[{"text":"TLS"}]}
	]}`)

	var buf bytes.Buffer
	if _, err := Words(cfg, &buf); err != nil {
		t.Fatal(err)
	}

	got := readTerms(t, cfg.OutputFile)
	for _, leaked := range []string{"kpriv", "isc2"} {
		if contains(got, leaked) {
			t.Errorf("abbreviation %q extracted from a skipped entry", leaked)
		}
	}

	want := []string{"layer", "security", "tls", "transport"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}
}

// The word cap is narrower than the markup checks: a five-word entry loses
// its headword words but keeps its abbreviations.
func TestWordsKeepsAbbreviationsOfLongEntries(t *testing.T) {
	cfg := testConfig(t, `{"parentTerms":[
		{"term":"National Institute of Standards and Technology","abbrSyn":[{"text":"NIST"}]}
	]}`)

	var buf bytes.Buffer
	if _, err := Words(cfg, &buf); err != nil {
		t.Fatal(err)
	}

	got := readTerms(t, cfg.OutputFile)
	want := []string{"nist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}
}

// The single-word pipeline is strict: no glossary, no run.
func TestWordsMissingGlossary(t *testing.T) {
	cfg := testConfig(t, "")

	var buf bytes.Buffer
	_, err := Words(cfg, &buf)
	if err == nil {
		t.Fatal("expected error for missing glossary")
	}
	if !strings.Contains(err.Error(), "glossary export not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWordsMalformedGlossary(t *testing.T) {
	cfg := testConfig(t, `not json`)

	var buf bytes.Buffer
	if _, err := Words(cfg, &buf); err == nil {
		t.Fatal("expected parse error for malformed glossary")
	}
}
