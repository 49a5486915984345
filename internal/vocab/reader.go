// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile returns the data lines of a vocabulary file, skipping the `#`
// comment header and blank lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening vocabulary file %s: %w", path, err)
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vocabulary file %s: %w", path, err)
	}

	return terms, nil
}
