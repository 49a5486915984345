// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdiddy/terminology-engine/internal/glossary"
	"github.com/pdiddy/terminology-engine/internal/rules"
	"github.com/pdiddy/terminology-engine/internal/tokenize"
	"github.com/pdiddy/terminology-engine/internal/vocab"
	"github.com/pdiddy/terminology-engine/pkg/types"
)

// glossaryDownloadURL is where the NIST export can be re-downloaded from.
const glossaryDownloadURL = "https://csrc.nist.gov/csrc/media/glossary/glossary-export.zip"

// Words runs the single-word pipeline over the glossary export. Unlike
// Compounds, a missing export is fatal: the glossary is this pipeline's
// only source.
func Words(cfg types.PipelineConfig, w io.Writer) (Summary, error) {
	glossaryPath := filepath.Join(cfg.DownloadsDir, cfg.GlossaryFile)

	fmt.Fprintln(w, "Extracting terms from NIST glossary...")
	g, err := glossary.Load(glossaryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("glossary export not found: %s (download from %s)",
				glossaryPath, glossaryDownloadURL)
		}
		return Summary{}, err
	}

	set := wordsFromGlossary(g)

	header := vocab.Header{
		Title: "NIST CSRC Glossary Terms",
		Provenance: []string{
			"Source: NIST Computer Security Resource Center Glossary",
			"URL: https://csrc.nist.gov/glossary",
			"Download: " + glossaryDownloadURL,
			"License: Public Domain (US Government work)",
		},
		Methodology: []string{
			"1. Downloaded ZIP containing glossary-export.json",
			"2. Extracted individual technical words from terms and abbreviations",
			"3. Filtered multi-word organization names (>4 words)",
			"4. Removed HTML/XML markup and mathematical notation",
			"5. Filtered common English words",
		},
		Regenerate: "terminology-engine terms",
	}

	terms := set.Sorted()
	if err := vocab.WriteFile(cfg.OutputFile, header, terms); err != nil {
		return Summary{}, err
	}

	summary := Summary{GlossaryTerms: set.Len(), Total: len(terms)}
	fmt.Fprintf(w, "extracted %d terms\noutput: %s\n", summary.Total, cfg.OutputFile)
	return summary, nil
}

// wordsFromGlossary splits each headword into words and collects the ones
// the single-word classifier accepts, plus single-token abbreviations.
// Entries with markup or bracketed notation are skipped wholesale,
// abbreviations included; skips are silent, never fatal.
func wordsFromGlossary(g *types.Glossary) vocab.Set {
	set := vocab.NewSet()
	for _, entry := range g.ParentTerms {
		if !tokenize.ValidEntry(entry.Term) {
			continue
		}

		for _, word := range tokenize.TermWords(entry.Term) {
			if rules.IsValidTerm(word) {
				set.Add(word)
			}
		}

		for _, abbr := range entry.AbbrSyn {
			text := strings.ToLower(abbr.Text)
			if text == "" || strings.Contains(text, " ") {
				continue
			}
			if rules.IsValidTerm(text) {
				set.Add(text)
			}
		}
	}
	return set
}
