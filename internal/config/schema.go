package config

// headingSchema mirrors the `heading` block of a pipeline file.
type headingSchema struct {
	MinFontSize float64 `hcl:"min_font_size,optional"`
	MaxWords    int     `hcl:"max_words,optional"`
	MaxChars    int     `hcl:"max_chars,optional"`
	MediumGap   float64 `hcl:"medium_gap,optional"`
}

// pipelineSchema mirrors the `pipeline` block of a pipeline file. Every
// attribute is optional; unset values keep their defaults.
type pipelineSchema struct {
	Workers          int            `hcl:"workers,optional"`
	TopN             int            `hcl:"top_n,optional"`
	SummarySentences int            `hcl:"summary_sentences,optional"`
	ManifestName     string         `hcl:"manifest_name,optional"`
	OutputName       string         `hcl:"output_name,optional"`
	ParsedDir        string         `hcl:"parsed_dir,optional"`
	LedgerPath       string         `hcl:"ledger_path,optional"`
	Heading          *headingSchema `hcl:"heading,block"`
}

// fileSchema is the top-level structure of a pipeline configuration file.
type fileSchema struct {
	Pipeline *pipelineSchema `hcl:"pipeline,block"`
}
