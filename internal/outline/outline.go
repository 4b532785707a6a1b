// Package outline detects the heading structure of an extracted document.
//
// Headings are identified by a mix of numbering patterns ("2.1 Audience"),
// well-known section names ("References"), and visual cues: bold fonts,
// font size relative to the document median, and the whitespace separating
// a line from its predecessor.
package outline

// Config holds the tunable thresholds for heading detection.
type Config struct {
	// MinHeadingFontSize is the smallest font size, in points, a line may
	// have and still be considered a heading.
	MinHeadingFontSize float64

	// MaxHeadingWords is the largest word count a heading may have.
	MaxHeadingWords int

	// MaxHeadingChars is the largest character count a heading may have.
	MaxHeadingChars int

	// MediumGap is the minimum vertical whitespace, in points, above a line
	// for the visual heading heuristics to apply.
	MediumGap float64
}

// DefaultConfig returns the thresholds tuned against reference documents.
func DefaultConfig() Config {
	return Config{
		MinHeadingFontSize: 10.0,
		MaxHeadingWords:    30,
		MaxHeadingChars:    250,
		MediumGap:          6,
	}
}

// Heading is one entry of a document outline. Page is 1-based.
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// ParsedDocument is the persisted result of outline extraction for one PDF.
type ParsedDocument struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}
