// Package pdfio extracts positioned text from PDF files and normalises it
// into pages of lines. Downstream stages (outline detection, section
// building) only ever see this model, never the raw PDF structures.
package pdfio

import "strings"

// Line is a single visual line of text on a page, assembled from the raw
// positioned fragments the PDF reader yields.
type Line struct {
	// Text is the assembled line content with collapsed whitespace.
	Text string

	// Font is the name of the font of the line's first fragment.
	Font string

	// FontSize is the largest font size observed on the line, in points.
	FontSize float64

	// Top is the distance from the top of the page to the top of the line.
	Top float64

	// GapAbove is the vertical whitespace separating this line from the
	// previous one on the same page. Zero for the first line of a page.
	GapAbove float64
}

// Page holds the assembled lines of one page, in reading order.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Height is the page height in points.
	Height float64

	// Lines are the page's text lines, top to bottom.
	Lines []Line
}

// Text returns the page's full text, one assembled line per text line.
func (p Page) Text() string {
	parts := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		parts = append(parts, l.Text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// Document is a fully extracted PDF file.
type Document struct {
	// Path is the file the document was read from.
	Path string

	// Pages holds every non-empty page, in order.
	Pages []Page
}
