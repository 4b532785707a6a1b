package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vk/docsift/internal/pdfio"
)

// Extractor runs heading detection with a fixed configuration.
type Extractor struct {
	cfg Config
}

// NewExtractor returns an Extractor using the given thresholds.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract builds the parsed representation of a document: its title, taken
// from the first page, and its refined heading outline.
func (e *Extractor) Extract(doc *pdfio.Document) *ParsedDocument {
	parsed := &ParsedDocument{Outline: []Heading{}}
	if len(doc.Pages) == 0 {
		return parsed
	}

	parsed.Title = e.extractTitle(doc.Pages[0])
	parsed.Outline = e.extractOutline(doc)
	return parsed
}

// candidate is a heading candidate prior to hierarchy refinement.
type candidate struct {
	text     string
	level    string
	page     int
	top      float64
	fontSize float64
}

// extractOutline scans every line of the document for heading candidates and
// refines the result into a consistent hierarchy.
func (e *Extractor) extractOutline(doc *pdfio.Document) []Heading {
	medianSize := medianFontSize(doc)
	if medianSize == 0 {
		return []Heading{}
	}

	var candidates []candidate
	seen := make(map[string]struct{})

	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			text := normalizeText(line.Text)
			if text == "" {
				continue
			}
			if _, dup := seen[text]; dup {
				continue
			}
			if isListItem(text) {
				continue
			}
			if len(text) > e.cfg.MaxHeadingChars {
				continue
			}

			level := levelByNumbering(text)
			if level == "" {
				level = levelByCommonName(text)
			}
			if level == "" {
				level = e.visualLevel(line, text, medianSize)
			}
			if level == "" {
				continue
			}
			if line.FontSize < e.cfg.MinHeadingFontSize {
				continue
			}

			candidates = append(candidates, candidate{
				text:     text,
				level:    level,
				page:     page.Number,
				top:      line.Top,
				fontSize: line.FontSize,
			})
			seen[text] = struct{}{}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].page != candidates[j].page {
			return candidates[i].page < candidates[j].page
		}
		return candidates[i].top < candidates[j].top
	})

	return refine(candidates)
}

// visualLevel classifies a line as a heading from its appearance alone:
// boldness and font size relative to the document median, provided enough
// whitespace separates it from the preceding line.
func (e *Extractor) visualLevel(line pdfio.Line, text string, medianSize float64) string {
	bold := isBoldFont(line.Font)
	size := line.FontSize

	prominent := bold || size >= medianSize*1.2
	if !prominent {
		return ""
	}
	if line.GapAbove < e.cfg.MediumGap {
		return ""
	}
	if len(strings.Fields(text)) > e.cfg.MaxHeadingWords {
		return ""
	}

	switch {
	case bold && size >= medianSize*1.5:
		return "H1"
	case bold && size >= medianSize*1.2:
		return "H2"
	case bold || size >= medianSize*1.1:
		return "H3"
	}
	return ""
}

// sectionNumber matches the numeric prefix of a numbered heading.
var sectionNumber = regexp.MustCompile(`^(\d+)\.(\d+)?\.?(\d+)?`)

// refine enforces a consistent hierarchy over the ordered candidates:
// numbered headings are pinned to the level their number implies, and a
// jump from H1 straight to H3 is softened to H2.
func refine(candidates []candidate) []Heading {
	headings := make([]Heading, 0, len(candidates))

	for _, c := range candidates {
		level := c.level

		if m := sectionNumber.FindStringSubmatch(c.text); m != nil {
			if m[2] != "" {
				level = "H2"
			} else {
				level = "H1"
			}
		}

		if len(headings) > 0 {
			prev := headings[len(headings)-1]
			if level == "H3" && prev.Level == "H1" {
				level = "H2"
			}
		}

		headings = append(headings, Heading{
			Level: level,
			Text:  c.text,
			Page:  c.page,
		})
	}

	return headings
}

// medianFontSize returns the median font size across all lines of the
// document, the reference against which heading prominence is measured.
func medianFontSize(doc *pdfio.Document) float64 {
	var sizes []float64
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			sizes = append(sizes, line.FontSize)
		}
	}
	if len(sizes) == 0 {
		return 0
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2]
}
