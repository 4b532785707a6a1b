// Package pipeline orchestrates the processing of one collection: parse its
// documents, persist their outlines, build sections, rank them against the
// manifest instruction, and write the report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/docsift/internal/collection"
	"github.com/vk/docsift/internal/config"
	"github.com/vk/docsift/internal/ctxlog"
	"github.com/vk/docsift/internal/fsutil"
	"github.com/vk/docsift/internal/outline"
	"github.com/vk/docsift/internal/pdfio"
	"github.com/vk/docsift/internal/rank"
	"github.com/vk/docsift/internal/report"
	"github.com/vk/docsift/internal/section"
	"github.com/vk/docsift/internal/summary"
)

// ErrNoSections is returned when a collection yields no rankable sections.
var ErrNoSections = errors.New("no sections extracted from documents")

// Pipeline processes collections with a fixed configuration.
type Pipeline struct {
	cfg       *config.Model
	source    pdfio.Source
	extractor *outline.Extractor

	// now is swappable so tests get stable report timestamps.
	now func() time.Time
}

// New returns a Pipeline reading documents through source.
func New(cfg *config.Model, source pdfio.Source) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		source:    source,
		extractor: outline.NewExtractor(cfg.Heading),
		now:       time.Now,
	}
}

// Result summarises one processed collection.
type Result struct {
	// Documents is the number of PDFs the parse stage handled.
	Documents int

	// Sections is the number of sections entering the ranking stage.
	Sections int
}

// RunCollection processes one collection end to end. Per-document parse
// failures are logged and skipped; the collection fails only when nothing
// rankable remains or the report cannot be produced.
func (p *Pipeline) RunCollection(ctx context.Context, col collection.Collection, parsedDir string) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("collection", col.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := os.MkdirAll(parsedDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create parsed dir: %w", err)
	}

	paths, err := fsutil.ListByExtension(col.PDFDir, ".pdf")
	if err != nil {
		return Result{}, err
	}
	logger.Info("Processing collection.", "documents", len(paths))

	parsed := p.parseDocuments(ctx, paths, parsedDir)

	manifest, err := collection.LoadManifest(col.ManifestPath)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Manifest loaded.", "persona", manifest.Persona.Role, "job", manifest.JobToBeDone.Task)

	sections := p.buildSections(ctx, manifest, parsed)
	result := Result{Documents: len(parsed), Sections: len(sections)}
	if len(sections) == 0 {
		return result, ErrNoSections
	}
	logger.Debug("Sections extracted.", "count", len(sections))

	corpus := make([]string, len(sections))
	for i, s := range sections {
		corpus[i] = s.Text
	}
	matches := rank.Top(manifest.Instruction(), corpus, p.cfg.TopN)

	entries := make([]report.Entry, 0, len(matches))
	for _, m := range matches {
		s := sections[m.Index]
		entries = append(entries, report.Entry{
			Document:    s.Document,
			Title:       s.Title,
			Page:        s.Page,
			RefinedText: summary.Leading(s.Text, p.cfg.SummarySentences),
		})
	}

	documents := make([]string, 0, len(manifest.Documents))
	for _, d := range manifest.Documents {
		documents = append(documents, d.Filename)
	}
	meta := report.NewMetadata(documents, manifest.Persona.Role, manifest.JobToBeDone.Task, p.now())

	if err := report.Write(col.OutputPath, report.Build(meta, entries, p.cfg.TopN)); err != nil {
		return result, err
	}

	logger.Info("Report written.", "path", col.OutputPath, "ranked", len(entries))
	return result, nil
}

// buildSections assembles the rankable sections for every document the
// manifest names. Documents that failed to parse, or are absent from the
// pdfs directory, are logged and skipped.
func (p *Pipeline) buildSections(ctx context.Context, manifest *collection.Manifest, parsed map[string]*parseResult) []section.Section {
	logger := ctxlog.FromContext(ctx)

	var sections []section.Section
	for _, ref := range manifest.Documents {
		if ref.Filename == "" {
			continue
		}
		res, ok := parsed[ref.Filename]
		if !ok || res.err != nil {
			logger.Warn("Manifest document unavailable, skipping.", "document", ref.Filename)
			continue
		}
		sections = append(sections, section.FromOutline(res.doc, ref.Filename, res.parsed)...)
	}
	return sections
}

// parsedJSONPath maps a PDF file name to its outline JSON path inside
// parsedDir, replacing the extension.
func parsedJSONPath(parsedDir, pdfName string) string {
	base := pdfName[:len(pdfName)-len(filepath.Ext(pdfName))]
	return filepath.Join(parsedDir, base+".json")
}
