package app

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docsift/internal/pdfio"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputRoot: t.TempDir(), LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg, pdfio.FileSource{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	a.healthHandler(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}
