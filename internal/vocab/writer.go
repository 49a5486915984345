// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// now is the clock used for header timestamps. Tests override it to pin
// the generation date.
var now = time.Now

// Header describes the provenance comment block written at the top of a
// vocabulary file. Consumers treat `#`-prefixed lines as non-data.
type Header struct {
	// Title is the first header line.
	Title string

	// Provenance lists free-form source attribution lines.
	Provenance []string

	// MethodLabel headlines the Methodology block. Empty means
	// "Methodology:".
	MethodLabel string

	// Methodology lists extraction criteria lines.
	Methodology []string

	// Regenerate is the command that rebuilds the file.
	Regenerate string
}

// WriteFile writes terms to path with a header block, one term per line.
// Terms must already be sorted; data lines are byte-identical across runs
// on unchanged input, only the generation date line varies.
func WriteFile(path string, h Header, terms []string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", h.Title)
	b.WriteString("#\n")
	for _, line := range h.Provenance {
		fmt.Fprintf(&b, "# %s\n", line)
	}
	b.WriteString("#\n")
	if len(h.Methodology) > 0 {
		label := h.MethodLabel
		if label == "" {
			label = "Methodology:"
		}
		fmt.Fprintf(&b, "# %s\n", label)
		for _, line := range h.Methodology {
			fmt.Fprintf(&b, "# %s\n", line)
		}
		b.WriteString("#\n")
	}
	fmt.Fprintf(&b, "# Total terms: %d\n", len(terms))
	fmt.Fprintf(&b, "# Generation date: %s\n", now().UTC().Format(time.RFC3339))
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# DO NOT EDIT - Regenerate with: %s\n", h.Regenerate)
	b.WriteString("\n")

	for _, term := range terms {
		b.WriteString(term)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing vocabulary file %s: %w", path, err)
	}
	return nil
}
