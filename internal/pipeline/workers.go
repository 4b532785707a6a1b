package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/docsift/internal/ctxlog"
	"github.com/vk/docsift/internal/outline"
	"github.com/vk/docsift/internal/pdfio"
)

// parseResult is the outcome of parsing one document. Either doc and parsed
// are set, or err is.
type parseResult struct {
	doc    *pdfio.Document
	parsed *outline.ParsedDocument
	err    error
}

// parseDocuments runs outline extraction for every path through a bounded
// worker pool and persists each outline as JSON under parsedDir. The result
// map is keyed by the PDF's base file name; failed documents are present
// with a non-nil err so callers can tell "failed" from "absent".
func (p *Pipeline) parseDocuments(ctx context.Context, paths []string, parsedDir string) map[string]*parseResult {
	logger := ctxlog.FromContext(ctx)

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	results := make(map[string]*parseResult, len(paths))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			for path := range jobs {
				if ctx.Err() != nil {
					continue
				}
				name := filepath.Base(path)
				workerLogger.Debug("Worker picked up document.", "document", name)

				res := p.parseOne(ctx, path, parsedDir)
				if res.err != nil {
					workerLogger.Warn("Document parse failed, skipping.", "document", name, "error", res.err)
				}

				mu.Lock()
				results[name] = res
				mu.Unlock()
			}
		}(id)
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return results
}

// parseOne loads a single document, extracts its outline, and writes the
// outline JSON next to its siblings in parsedDir.
func (p *Pipeline) parseOne(ctx context.Context, path, parsedDir string) *parseResult {
	doc, err := p.source.Load(ctx, path)
	if err != nil {
		return &parseResult{err: err}
	}

	parsed := p.extractor.Extract(doc)
	if err := writeParsedJSON(parsedJSONPath(parsedDir, filepath.Base(path)), parsed); err != nil {
		return &parseResult{err: err}
	}

	return &parseResult{doc: doc, parsed: parsed}
}

func writeParsedJSON(path string, parsed *outline.ParsedDocument) error {
	data, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write outline %s: %w", path, err)
	}
	return nil
}
