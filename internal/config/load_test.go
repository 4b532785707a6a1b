package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	model, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, model.Workers)
	assert.Equal(t, 5, model.TopN)
	assert.Equal(t, 3, model.SummarySentences)
	assert.Equal(t, "challenge1b_input.json", model.ManifestName)
	assert.Equal(t, "challenge1b_output.json", model.OutputName)
	assert.Equal(t, "parsed_json", model.ParsedDir)
	assert.Equal(t, 10.0, model.Heading.MinHeadingFontSize)
}

func TestLoad_OverlaysFileValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
pipeline {
  workers = 8
  top_n   = 3

  heading {
    min_font_size = 9
    medium_gap    = 4
  }
}
`)

	model, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, model.Workers)
	assert.Equal(t, 3, model.TopN)
	assert.Equal(t, 9.0, model.Heading.MinHeadingFontSize)
	assert.Equal(t, 4.0, model.Heading.MediumGap)

	// Untouched values keep their defaults.
	assert.Equal(t, 3, model.SummarySentences)
	assert.Equal(t, 30, model.Heading.MaxHeadingWords)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	model, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), model)
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "pipeline {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pipeline config")
}

func TestLoad_UnknownAttributeRejected(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `
pipeline {
  no_such_knob = true
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode pipeline config")
}

func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("DOCSIFT_TEST_LEDGER", "/tmp/runs.db")

	path := writeConfig(t, `
pipeline {
  ledger_path = env.DOCSIFT_TEST_LEDGER
}
`)

	model, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", model.LedgerPath)
}
