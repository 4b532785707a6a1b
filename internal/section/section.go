// Package section turns extracted documents and their outlines into the
// flat list of titled text sections the ranking stage consumes.
package section

import (
	"fmt"

	"github.com/vk/docsift/internal/outline"
	"github.com/vk/docsift/internal/pdfio"
)

// Section is one ranked unit of content: the text of a page, attributed to
// the heading that opens it.
type Section struct {
	// Document is the source PDF's file name.
	Document string

	// Page is the 1-based page number the section text was taken from.
	Page int

	// Title is the heading text, or "Page N" for page-based fallbacks.
	Title string

	// Text is the full text of the section's page.
	Text string
}

// FromOutline builds one section per outline heading, using the full text of
// the heading's page. Headings pointing at pages with no text are dropped.
// An empty outline falls back to page-based sections.
func FromOutline(doc *pdfio.Document, name string, parsed *outline.ParsedDocument) []Section {
	if parsed == nil || len(parsed.Outline) == 0 {
		return FromPages(doc, name)
	}

	pages := pagesByNumber(doc)
	var sections []Section
	for _, h := range parsed.Outline {
		page, ok := pages[h.Page]
		if !ok || h.Text == "" {
			continue
		}
		text := page.Text()
		if text == "" {
			continue
		}
		sections = append(sections, Section{
			Document: name,
			Page:     h.Page,
			Title:    h.Text,
			Text:     text,
		})
	}

	if len(sections) == 0 {
		return FromPages(doc, name)
	}
	return sections
}

// FromPages builds one section per non-empty page, titled "Page N". This is
// the fallback when no outline is available for a document.
func FromPages(doc *pdfio.Document, name string) []Section {
	var sections []Section
	for _, page := range doc.Pages {
		text := page.Text()
		if text == "" {
			continue
		}
		sections = append(sections, Section{
			Document: name,
			Page:     page.Number,
			Title:    fmt.Sprintf("Page %d", page.Number),
			Text:     text,
		})
	}
	return sections
}

func pagesByNumber(doc *pdfio.Document) map[int]pdfio.Page {
	pages := make(map[int]pdfio.Page, len(doc.Pages))
	for _, p := range doc.Pages {
		pages[p.Number] = p
	}
	return pages
}
