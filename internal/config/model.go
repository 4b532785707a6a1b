package config

import "github.com/vk/docsift/internal/outline"

// Model is the fully resolved pipeline configuration.
type Model struct {
	// Workers bounds the number of documents parsed concurrently within a
	// collection.
	Workers int

	// TopN is the number of ranked sections each report carries.
	TopN int

	// SummarySentences is the number of leading sentences kept as a
	// section's refined text.
	SummarySentences int

	// ManifestName is the file name of a collection's input manifest.
	ManifestName string

	// OutputName is the file name of a collection's report.
	OutputName string

	// ParsedDir is the directory under the input root that holds the
	// intermediate per-document outline JSON files.
	ParsedDir string

	// LedgerPath is the sqlite run-history database path. Empty disables
	// the ledger.
	LedgerPath string

	// Heading holds the outline detection thresholds.
	Heading outline.Config
}

// Default returns the configuration used when no file is provided.
func Default() *Model {
	return &Model{
		Workers:          4,
		TopN:             5,
		SummarySentences: 3,
		ManifestName:     "challenge1b_input.json",
		OutputName:       "challenge1b_output.json",
		ParsedDir:        "parsed_json",
		Heading:          outline.DefaultConfig(),
	}
}
