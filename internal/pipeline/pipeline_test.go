package pipeline_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docsift/internal/collection"
	"github.com/vk/docsift/internal/config"
	"github.com/vk/docsift/internal/outline"
	"github.com/vk/docsift/internal/pdfio"
	"github.com/vk/docsift/internal/pipeline"
	"github.com/vk/docsift/internal/report"
	"github.com/vk/docsift/internal/testutil"
)

// newCollection lays out a collection directory with a manifest and empty
// placeholder PDF files; their content never gets read because the tests
// substitute an in-memory document source.
func newCollection(t *testing.T, manifest string, pdfNames ...string) (collection.Collection, string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "travel")
	pdfDir := filepath.Join(dir, "pdfs")
	require.NoError(t, os.MkdirAll(pdfDir, 0755))

	manifestPath := filepath.Join(dir, "challenge1b_input.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0644))

	for _, name := range pdfNames {
		require.NoError(t, os.WriteFile(filepath.Join(pdfDir, name), []byte("%PDF-"), 0644))
	}

	return collection.Collection{
		Name:         "travel",
		Root:         dir,
		ManifestPath: manifestPath,
		PDFDir:       pdfDir,
		OutputPath:   filepath.Join(dir, "challenge1b_output.json"),
	}, filepath.Join(root, "parsed_json", "travel")
}

const manifest = `{
	"documents": [{"filename": "guide.pdf"}],
	"persona": {"role": "Travel Planner"},
	"job_to_be_done": {"task": "plan a coastal trip with beaches and seafood"}
}`

func guideDoc() *pdfio.Document {
	return testutil.Doc(
		testutil.TextPage(1,
			testutil.HeadingLine("1. Beaches", 50),
			testutil.BodyLine("The coastal beaches offer seafood shacks and sunset views.", 80),
		),
		testutil.TextPage(2,
			testutil.HeadingLine("2. Museums", 50),
			testutil.BodyLine("City museums cover art history and archaeology exhibits.", 80),
		),
	)
}

func TestRunCollection_WritesReportAndOutlines(t *testing.T) {
	t.Parallel()

	col, parsedDir := newCollection(t, manifest, "guide.pdf")
	source := testutil.StubSource{Docs: map[string]*pdfio.Document{"guide.pdf": guideDoc()}}

	pipe := pipeline.New(config.Default(), source)
	result, err := pipe.RunCollection(context.Background(), col, parsedDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Documents)
	assert.Equal(t, 2, result.Sections)

	// The intermediate outline JSON is persisted with the extension swapped.
	parsedData, err := os.ReadFile(filepath.Join(parsedDir, "guide.json"))
	require.NoError(t, err)
	var parsed outline.ParsedDocument
	require.NoError(t, json.Unmarshal(parsedData, &parsed))
	require.Len(t, parsed.Outline, 2)

	// The report ranks the beach section above the museum one for this
	// persona and pads to the configured five entries.
	data, err := os.ReadFile(col.OutputPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, json.Unmarshal(data, &rep))

	require.Len(t, rep.ExtractedSections, 5)
	require.NotNil(t, rep.ExtractedSections[0].Document)
	assert.Equal(t, "guide.pdf", *rep.ExtractedSections[0].Document)
	assert.Equal(t, "1. Beaches", *rep.ExtractedSections[0].SectionTitle)
	assert.Equal(t, 1, rep.ExtractedSections[0].ImportanceRank)
	assert.Nil(t, rep.ExtractedSections[2].Document, "missing ranks are padded with nulls")

	require.NotNil(t, rep.SubsectionAnalysis[0].RefinedText)
	assert.Contains(t, *rep.SubsectionAnalysis[0].RefinedText, "seafood")

	assert.Equal(t, []string{"guide.pdf"}, rep.Metadata.InputDocuments)
	assert.Equal(t, "Travel Planner", rep.Metadata.Persona)
}

func TestRunCollection_SkipsUnparseableDocument(t *testing.T) {
	t.Parallel()

	manifestTwo := `{
		"documents": [{"filename": "guide.pdf"}, {"filename": "broken.pdf"}],
		"persona": {"role": "Travel Planner"},
		"job_to_be_done": {"task": "plan a coastal trip"}
	}`
	col, parsedDir := newCollection(t, manifestTwo, "guide.pdf", "broken.pdf")

	// broken.pdf is absent from the stub map, so loading it fails.
	source := testutil.StubSource{Docs: map[string]*pdfio.Document{"guide.pdf": guideDoc()}}

	pipe := pipeline.New(config.Default(), source)
	result, err := pipe.RunCollection(context.Background(), col, parsedDir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Documents, "both documents were attempted")
	assert.Equal(t, 2, result.Sections, "only the parseable document contributes sections")

	data, err := os.ReadFile(col.OutputPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, []string{"guide.pdf", "broken.pdf"}, rep.Metadata.InputDocuments)
}

func TestRunCollection_NoSections(t *testing.T) {
	t.Parallel()

	col, parsedDir := newCollection(t, manifest, "guide.pdf")

	// The stubbed document has no pages, so no sections can be built.
	source := testutil.StubSource{Docs: map[string]*pdfio.Document{"guide.pdf": testutil.Doc()}}

	pipe := pipeline.New(config.Default(), source)
	_, err := pipe.RunCollection(context.Background(), col, parsedDir)

	require.ErrorIs(t, err, pipeline.ErrNoSections)
	assert.NoFileExists(t, col.OutputPath)
}

func TestRunCollection_BadManifest(t *testing.T) {
	t.Parallel()

	col, parsedDir := newCollection(t, `{broken`, "guide.pdf")
	source := testutil.StubSource{Docs: map[string]*pdfio.Document{"guide.pdf": guideDoc()}}

	pipe := pipeline.New(config.Default(), source)
	_, err := pipe.RunCollection(context.Background(), col, parsedDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode manifest")
}
