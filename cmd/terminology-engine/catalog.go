// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/terminology-engine/internal/catalog"
	"github.com/pdiddy/terminology-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the vocabulary catalog (store, lookup, export)",
	Long: `Catalog manages a local SQLite index built from generated vocabulary
files. Use subcommands to ingest files, look terms up, or export.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest generated vocabulary files into the catalog",
	Long: `Store reads vocabulary files, skipping their comment headers, and
indexes every term in a SQLite database with FTS5 lookup. Unchanged
files are skipped on subsequent runs.`,
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)

	files, _ := cmd.Flags().GetStringSlice("file")
	if len(files) == 0 {
		sourceDir := configValue(cmd, "source-dir", "source_dir")
		files = []string{
			filepath.Join(sourceDir, "valid_hyphenated_compounds.txt"),
			filepath.Join(sourceDir, "nist_terms.txt"),
		}
	}

	sources := make([]catalog.SourceFile, len(files))
	for i, path := range files {
		sources[i] = catalog.SourceFile{Path: path, Kind: kindForFile(path)}
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), sources, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed indexing", summary.Failed)
	}
	return nil
}

// kindForFile labels a vocabulary file's terms by its filename.
func kindForFile(path string) string {
	if strings.Contains(filepath.Base(path), "compound") {
		return "compound"
	}
	return "word"
}

// --- lookup subcommand ---

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Query the vocabulary catalog",
	Long: `Lookup searches the catalog with FTS5 full-text search, structured
filters (kind, prefix, suffix), or a combination of both.`,
	RunE: runCatalogLookup,
}

func runCatalogLookup(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := lookupOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --kind, --prefix, or --suffix")
	}

	results, err := store.Lookup(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatLookupOutput(results, jsonOutput)
}

func formatLookupOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-10s  %s\n", "Term", "Kind", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-30s  %-10s  %s\n", r.Term, r.Kind, filepath.Base(r.SourceFile))
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the vocabulary catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to
<catalog-dir>/index/export.yaml or export.json. Supports the same
filter flags as lookup for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := lookupOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.CatalogDir, "index", "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.CatalogDir, "index", "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir := configValue(cmd, "catalog-dir", "catalog_dir")
	if catalogDir == "" {
		catalogDir = "vocabulary"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func lookupOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	kind, _ := cmd.Flags().GetString("kind")
	prefix, _ := cmd.Flags().GetString("prefix")
	suffix, _ := cmd.Flags().GetString("suffix")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Kind:       kind,
		Prefix:     prefix,
		Suffix:     suffix,
		MaxResults: limit,
	}
}

func init() {
	catalogStoreCmd.Flags().String("catalog-dir", "vocabulary", "base directory for the catalog (contains index/)")
	catalogStoreCmd.Flags().String("source-dir", "source", "directory containing generated vocabulary files")
	catalogStoreCmd.Flags().StringSlice("file", nil, "vocabulary file to ingest (repeatable; default: both pipeline outputs)")
	catalogStoreCmd.Flags().Int("max-results", 20, "default maximum number of lookup results")

	catalogLookupCmd.Flags().String("catalog-dir", "vocabulary", "base directory for the catalog (contains index/)")
	catalogLookupCmd.Flags().String("query", "", "full-text search query")
	catalogLookupCmd.Flags().String("kind", "", "filter by term kind: compound or word")
	catalogLookupCmd.Flags().String("prefix", "", "filter terms by leading characters")
	catalogLookupCmd.Flags().String("suffix", "", "filter terms by trailing characters")
	catalogLookupCmd.Flags().Int("limit", 0, "maximum number of results")
	catalogLookupCmd.Flags().Int("max-results", 20, "default maximum number of lookup results")
	catalogLookupCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("catalog-dir", "vocabulary", "base directory for the catalog (contains index/)")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search query")
	catalogExportCmd.Flags().String("kind", "", "filter by term kind: compound or word")
	catalogExportCmd.Flags().String("prefix", "", "filter terms by leading characters")
	catalogExportCmd.Flags().String("suffix", "", "filter terms by trailing characters")
	catalogExportCmd.Flags().Int("limit", 0, "maximum number of results")
	catalogExportCmd.Flags().Int("max-results", 20, "default maximum number of lookup results")

	catalogCmd.AddCommand(catalogStoreCmd, catalogLookupCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
