// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PipelineConfig holds the input and output locations for an extraction run.
type PipelineConfig struct {
	// DownloadsDir contains the pre-downloaded glossary export.
	DownloadsDir string `json:"downloads_dir" yaml:"downloads_dir"`

	// GlossaryFile is the glossary export filename within DownloadsDir.
	GlossaryFile string `json:"glossary_file" yaml:"glossary_file"`

	// SourceDir contains plaintext vocabulary source files.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// SourcePattern is the glob pattern for source files within SourceDir
	// (default "*.txt").
	SourcePattern string `json:"source_pattern" yaml:"source_pattern"`

	// OutputFile is the full path of the vocabulary file to write.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// CatalogConfig holds settings for the vocabulary catalog stage.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
