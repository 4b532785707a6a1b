package testutil

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/docsift/internal/pdfio"
)

// StubSource serves pre-built documents keyed by base file name, standing in
// for the PDF reader in tests.
type StubSource struct {
	Docs map[string]*pdfio.Document
}

// Load implements pdfio.Source.
func (s StubSource) Load(_ context.Context, path string) (*pdfio.Document, error) {
	doc, ok := s.Docs[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("no stub document for %s", path)
	}
	return doc, nil
}

// BodyLine builds a plain body-text line.
func BodyLine(text string, top float64) pdfio.Line {
	return pdfio.Line{Text: text, Font: "Helvetica", FontSize: 10, Top: top, GapAbove: 2}
}

// HeadingLine builds a line that the outline heuristics classify as a
// heading: bold, enlarged, and clearly separated from the previous line.
func HeadingLine(text string, top float64) pdfio.Line {
	return pdfio.Line{Text: text, Font: "Helvetica-Bold", FontSize: 16, Top: top, GapAbove: 14}
}

// TextPage assembles a page from lines.
func TextPage(number int, lines ...pdfio.Line) pdfio.Page {
	return pdfio.Page{Number: number, Height: 792, Lines: lines}
}

// Doc assembles a document from pages.
func Doc(pages ...pdfio.Page) *pdfio.Document {
	return &pdfio.Document{Pages: pages}
}
