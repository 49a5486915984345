// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"
	"testing"
)

// Only the compounds pipeline scans source files, so only it takes a
// --pattern flag; the terms command must not advertise one it never reads.
func TestPatternFlagRegistration(t *testing.T) {
	if compoundsCmd.Flags().Lookup("pattern") == nil {
		t.Error("compounds command missing --pattern flag")
	}
	if termsCmd.Flags().Lookup("pattern") != nil {
		t.Error("terms command registers --pattern it never reads")
	}
}

func TestPipelineConfigDefaults(t *testing.T) {
	cfg := pipelineConfig(compoundsCmd, "valid_hyphenated_compounds.txt")
	if cfg.SourcePattern != "*.txt" {
		t.Errorf("compounds SourcePattern = %q, want *.txt", cfg.SourcePattern)
	}
	if want := filepath.Join("source", "valid_hyphenated_compounds.txt"); cfg.OutputFile != want {
		t.Errorf("compounds OutputFile = %q, want %q", cfg.OutputFile, want)
	}

	cfg = pipelineConfig(termsCmd, "nist_terms.txt")
	if cfg.SourcePattern != "" {
		t.Errorf("terms SourcePattern = %q, want empty", cfg.SourcePattern)
	}
	if want := filepath.Join("source", "nist_terms.txt"); cfg.OutputFile != want {
		t.Errorf("terms OutputFile = %q, want %q", cfg.OutputFile, want)
	}
}
