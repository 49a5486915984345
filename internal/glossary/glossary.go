// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glossary parses the NIST CSRC glossary JSON export.
// The export ships inside glossary-export.zip from
// https://csrc.nist.gov/csrc/media/glossary/glossary-export.zip and is
// public domain (US Government work).
package glossary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/terminology-engine/pkg/types"
)

// utf8BOM is the byte order mark the NIST export is published with.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Load reads and parses the glossary export at path. A missing file keeps
// its fs.ErrNotExist identity through wrapping so callers can distinguish
// it from a parse failure.
func Load(path string) (*types.Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	var g types.Glossary
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}

	return &g, nil
}
