package outline

import (
	"sort"
	"strings"

	"github.com/vk/docsift/internal/pdfio"
)

// titleCandidate is a first-page line that may be part of the document title.
type titleCandidate struct {
	text     string
	fontSize float64
	top      float64
}

// extractTitle picks the document title from the first page. Titles sit in
// the top portion of the page, are short, and are either bold or large.
// Multi-line titles are merged from adjacent candidates whose font size is
// close to the largest one found.
func (e *Extractor) extractTitle(page pdfio.Page) string {
	var candidates []titleCandidate

	for _, line := range page.Lines {
		text := normalizeText(line.Text)
		if text == "" {
			continue
		}
		if line.Top > page.Height*0.4 {
			continue
		}
		if len(strings.Fields(text)) > 15 {
			continue
		}
		if !isBoldFont(line.Font) && line.FontSize < 14 {
			continue
		}
		candidates = append(candidates, titleCandidate{
			text:     text,
			fontSize: line.FontSize,
			top:      line.Top,
		})
	}

	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].top < candidates[j].top
	})

	maxFont := candidates[0].fontSize
	for _, c := range candidates {
		if c.fontSize > maxFont {
			maxFont = c.fontSize
		}
	}

	// Keep the candidates close to the dominant size, then merge the ones in
	// the top quarter of the page into a single multi-line title.
	var parts []string
	for _, c := range candidates {
		if c.fontSize < maxFont*0.9 {
			continue
		}
		if c.top < page.Height*0.25 {
			parts = append(parts, c.text)
		}
	}

	if len(parts) == 0 {
		return candidates[0].text
	}
	return strings.Join(parts, " ")
}
