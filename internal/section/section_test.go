package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docsift/internal/outline"
	"github.com/vk/docsift/internal/pdfio"
)

func line(text string) pdfio.Line {
	return pdfio.Line{Text: text, Font: "Helvetica", FontSize: 10}
}

func doc() *pdfio.Document {
	return &pdfio.Document{Pages: []pdfio.Page{
		{Number: 1, Height: 792, Lines: []pdfio.Line{line("1. Intro"), line("intro body")}},
		{Number: 2, Height: 792, Lines: []pdfio.Line{line("2. Methods"), line("methods body")}},
		{Number: 3, Height: 792},
	}}
}

func TestFromOutline(t *testing.T) {
	t.Parallel()

	parsed := &outline.ParsedDocument{Outline: []outline.Heading{
		{Level: "H1", Text: "1. Intro", Page: 1},
		{Level: "H1", Text: "2. Methods", Page: 2},
		{Level: "H1", Text: "Ghost", Page: 9}, // no such page
	}}

	sections := FromOutline(doc(), "paper.pdf", parsed)

	require.Len(t, sections, 2)
	assert.Equal(t, Section{Document: "paper.pdf", Page: 1, Title: "1. Intro", Text: "1. Intro\nintro body"}, sections[0])
	assert.Equal(t, "2. Methods", sections[1].Title)
}

func TestFromOutline_EmptyOutlineFallsBack(t *testing.T) {
	t.Parallel()

	sections := FromOutline(doc(), "paper.pdf", &outline.ParsedDocument{})

	require.Len(t, sections, 2, "empty page 3 must be dropped")
	assert.Equal(t, "Page 1", sections[0].Title)
	assert.Equal(t, "Page 2", sections[1].Title)
}

func TestFromOutline_AllHeadingsUnusableFallsBack(t *testing.T) {
	t.Parallel()

	parsed := &outline.ParsedDocument{Outline: []outline.Heading{
		{Level: "H1", Text: "Ghost", Page: 9},
	}}

	sections := FromOutline(doc(), "paper.pdf", parsed)

	require.Len(t, sections, 2)
	assert.Equal(t, "Page 1", sections[0].Title)
}

func TestFromPages_SkipsEmptyPages(t *testing.T) {
	t.Parallel()

	sections := FromPages(doc(), "paper.pdf")

	require.Len(t, sections, 2)
	assert.Equal(t, 1, sections[0].Page)
	assert.Equal(t, 2, sections[1].Page)
	assert.Equal(t, "paper.pdf", sections[0].Document)
}
