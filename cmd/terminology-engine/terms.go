// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/terminology-engine/internal/extract"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Extract single-word terms from the NIST glossary",
	Long: `Terms extracts individual technical words and single-token abbreviations
from the NIST CSRC glossary export and writes a sorted vocabulary file.
Entries with markup, bracketed notation, or more than four words are
skipped.

Unlike compounds, a missing glossary export is an error: the glossary is
this pipeline's only source.`,
	RunE: runTerms,
}

func runTerms(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, "nist_terms.txt")

	fmt.Println("=== NIST CSRC Glossary Extraction ===")
	if _, err := extract.Words(cfg, os.Stdout); err != nil {
		return err
	}
	return nil
}

func init() {
	termsCmd.Flags().String("downloads-dir", "downloads", "directory containing the glossary export")
	termsCmd.Flags().String("glossary", "glossary-export.json", "glossary export filename within downloads-dir")
	termsCmd.Flags().String("source-dir", "source", "directory the output file is written into")
	termsCmd.Flags().String("output", "", "output file (default: source-dir/nist_terms.txt)")

	rootCmd.AddCommand(termsCmd)
}
