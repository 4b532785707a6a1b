// Package collection discovers processable collections inside the mounted
// input root and loads their manifests.
//
// A collection is an immediate subdirectory of the input root holding both
// an input manifest and a pdfs/ directory. Anything else under the root is
// skipped, never treated as an error: the root is an externally owned mount
// whose layout the pipeline does not control.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/docsift/internal/ctxlog"
)

// PDFDirName is the fixed name of a collection's document directory.
const PDFDirName = "pdfs"

// DocumentRef names one input document inside a manifest.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Persona is the role on whose behalf sections are ranked.
type Persona struct {
	Role string `json:"role"`
}

// Job is the task the persona needs the documents for.
type Job struct {
	Task string `json:"task"`
}

// Manifest is the input contract of one collection.
type Manifest struct {
	Documents   []DocumentRef `json:"documents"`
	Persona     Persona       `json:"persona"`
	JobToBeDone Job           `json:"job_to_be_done"`
}

// Instruction is the ranking query: the persona role and the job task,
// joined by a single space.
func (m *Manifest) Instruction() string {
	return m.Persona.Role + " " + m.JobToBeDone.Task
}

// Collection locates the inputs and output of one discovered collection.
type Collection struct {
	// Name is the collection's directory name under the input root.
	Name string

	// Root is the collection directory's full path.
	Root string

	// ManifestPath is the full path of the input manifest.
	ManifestPath string

	// PDFDir is the full path of the pdfs/ directory.
	PDFDir string

	// OutputPath is where the collection's report is written.
	OutputPath string
}

// Discover lists the collections under root. Subdirectories missing the
// manifest or the pdfs/ directory are logged and skipped.
func Discover(ctx context.Context, root, manifestName, outputName string) ([]Collection, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read input root %s: %w", root, err)
	}

	var collections []Collection
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		manifestPath := filepath.Join(dir, manifestName)
		pdfDir := filepath.Join(dir, PDFDirName)

		if _, err := os.Stat(manifestPath); err != nil {
			logger.Info("Skipping folder without input manifest.", "folder", entry.Name())
			continue
		}
		if info, err := os.Stat(pdfDir); err != nil || !info.IsDir() {
			logger.Info("Skipping folder without pdfs directory.", "folder", entry.Name())
			continue
		}

		collections = append(collections, Collection{
			Name:         entry.Name(),
			Root:         dir,
			ManifestPath: manifestPath,
			PDFDir:       pdfDir,
			OutputPath:   filepath.Join(dir, outputName),
		})
	}

	logger.Debug("Collection discovery finished.", "found", len(collections))
	return collections, nil
}

// LoadManifest reads and decodes a collection's input manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}
