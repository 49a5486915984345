// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/terminology-engine/internal/extract"
)

var compoundsCmd = &cobra.Command{
	Use:   "compounds",
	Short: "Extract hyphenated technical compounds",
	Long: `Compounds scans the NIST CSRC glossary export and all matching plaintext
source files for hyphenated tokens, keeps the ones matching the technical
compound rules, unions in the canonical allowlist, and writes a sorted
vocabulary file.

A missing glossary export is a warning; extraction proceeds with the
source files alone.`,
	RunE: runCompounds,
}

func runCompounds(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, "valid_hyphenated_compounds.txt")

	fmt.Println("=== Extracting Hyphenated Technical Compounds ===")
	if _, err := extract.Compounds(cfg, os.Stdout); err != nil {
		return err
	}
	fmt.Println("=== Extraction Complete ===")
	return nil
}

func init() {
	compoundsCmd.Flags().String("downloads-dir", "downloads", "directory containing the glossary export")
	compoundsCmd.Flags().String("glossary", "glossary-export.json", "glossary export filename within downloads-dir")
	compoundsCmd.Flags().String("source-dir", "source", "directory containing plaintext source files")
	compoundsCmd.Flags().String("pattern", "*.txt", "glob pattern for source files within source-dir")
	compoundsCmd.Flags().String("output", "", "output file (default: source-dir/valid_hyphenated_compounds.txt)")

	rootCmd.AddCommand(compoundsCmd)
}
