// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists generated vocabulary files in a SQLite database
// and supports full-text lookup and export. The extraction pipelines stay
// stateless batch jobs; the catalog only indexes their output files.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/terminology-engine/internal/vocab"
	"github.com/pdiddy/terminology-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "terms.db"
)

// Store manages the vocabulary catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// SourceFile identifies one vocabulary file to ingest.
type SourceFile struct {
	// Path is the vocabulary file location.
	Path string

	// Kind labels the file's terms: "compound" or "word".
	Kind string
}

// NewStore opens or creates the catalog database at
// catalogDir/index/terms.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS term_files (
			path TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			term TEXT NOT NULL,
			kind TEXT NOT NULL,
			source_file TEXT NOT NULL REFERENCES term_files(path),
			UNIQUE(term, source_file)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_kind ON terms(kind)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='terms_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE terms_fts USING fts5(term, content=terms, content_rowid=rowid)`,
			`CREATE TRIGGER terms_ai AFTER INSERT ON terms BEGIN
				INSERT INTO terms_fts(rowid, term) VALUES (new.rowid, new.term);
			END`,
			`CREATE TRIGGER terms_ad AFTER DELETE ON terms BEGIN
				INSERT INTO terms_fts(terms_fts, rowid, term) VALUES('delete', old.rowid, old.term);
			END`,
			`CREATE TRIGGER terms_au AFTER UPDATE ON terms BEGIN
				INSERT INTO terms_fts(terms_fts, rowid, term) VALUES('delete', old.rowid, old.term);
				INSERT INTO terms_fts(rowid, term) VALUES (new.rowid, new.term);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a catalog indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest indexes the given vocabulary files. Unchanged files are skipped by
// modification time; changed files are re-indexed wholesale.
func (s *Store) Ingest(ctx context.Context, files []SourceFile, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, src := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := filepath.Base(src.Path)

		info, err := os.Stat(src.Path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM term_files WHERE path = ?`, src.Path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		terms, err := vocab.ReadFile(src.Path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := s.ingestFile(ctx, src, terms, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d terms)\n", name, len(terms))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d terms)\n", name, len(terms))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestFile(ctx context.Context, src SourceFile, terms []string, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM terms WHERE source_file = ?`, src.Path); err != nil {
			return fmt.Errorf("deleting old terms: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO term_files (path, kind, file_mod_time) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET kind=excluded.kind, file_mod_time=excluded.file_mod_time`,
		src.Path, src.Kind, modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting term file: %w", err)
	}

	// OR REPLACE would delete-and-reinsert behind the FTS triggers
	// (recursive triggers are off), leaving ghost rowids in terms_fts.
	// Duplicate lines within one file are simply dropped instead.
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (term, kind, source_file) VALUES (?, ?, ?)
		 ON CONFLICT(term, source_file) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, term := range terms {
		if _, err := stmt.ExecContext(ctx, term, src.Kind, src.Path); err != nil {
			return fmt.Errorf("inserting term %s: %w", term, err)
		}
	}

	return tx.Commit()
}
