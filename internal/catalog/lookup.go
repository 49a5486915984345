// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog lookups.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Kind filters by term kind: "compound" or "word".
	Kind string

	// Prefix filters terms by leading characters.
	Prefix string

	// Suffix filters terms by trailing characters.
	Suffix string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the lookup has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == "" && q.Prefix == "" && q.Suffix == ""
}

// QueryResult is one catalog term with its provenance.
type QueryResult struct {
	Term       string `json:"term" yaml:"term"`
	Kind       string `json:"kind" yaml:"kind"`
	SourceFile string `json:"source_file" yaml:"source_file"`
}

// Lookup queries the catalog with optional full-text search and structured
// filters. Full-text results are ranked by relevance; structured-only
// results are sorted by term.
func (s *Store) Lookup(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT t.term, t.kind, t.source_file
			FROM terms_fts
			JOIN terms t ON t.rowid = terms_fts.rowid
			WHERE terms_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT t.term, t.kind, t.source_file
			FROM terms t
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND t.kind = ?`)
		args = append(args, opts.Kind)
	}

	if opts.Prefix != "" {
		qb.WriteString(` AND t.term LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(opts.Prefix)+"%")
	}

	if opts.Suffix != "" {
		qb.WriteString(` AND t.term LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(opts.Suffix))
	}

	if useFTS {
		qb.WriteString(` ORDER BY terms_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY t.term`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		if err := rows.Scan(&qr.Term, &qr.Kind, &qr.SourceFile); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// escapeLike escapes LIKE wildcards so prefix/suffix filters match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
