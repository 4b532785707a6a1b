package pdfio

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/vk/docsift/internal/ctxlog"
)

// Source loads a document from a path. The file-backed implementation reads
// real PDFs; tests substitute an in-memory one.
type Source interface {
	Load(ctx context.Context, path string) (*Document, error)
}

// FileSource reads documents from PDF files on disk.
type FileSource struct{}

// Load extracts every page of the PDF at path. The underlying reader panics
// on some malformed files, so the panic is recovered and surfaced as an
// ordinary error for the caller to skip the document.
func (FileSource) Load(ctx context.Context, path string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("malformed pdf %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	logger := ctxlog.FromContext(ctx)

	doc = &Document{Path: path}
	total := reader.NumPage()
	for num := 1; num <= total; num++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		lines := assembleLines(page.Content().Text, height)
		if len(lines) == 0 {
			continue
		}
		doc.Pages = append(doc.Pages, Page{
			Number: num,
			Height: height,
			Lines:  lines,
		})
	}

	logger.Debug("Extracted document.", "path", path, "pages", len(doc.Pages))
	return doc, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// when the box is inherited. Falls back to US Letter when absent.
func pageHeight(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 792
}
