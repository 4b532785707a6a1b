package pdfio

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// baselineTolerance is the maximum vertical distance, in points, between two
// fragments that still count as sitting on the same baseline.
const baselineTolerance = 2.0

// wordGapFactor scales a fragment's font size into the minimum horizontal
// distance that separates two words. PDF text often arrives one glyph at a
// time, so word boundaries have to be recovered from geometry.
const wordGapFactor = 0.2

// fragmentLine is an intermediate grouping of fragments sharing a baseline.
type fragmentLine struct {
	baseline  float64
	fragments []pdf.Text
}

// assembleLines turns raw positioned fragments into reading-order lines.
// Fragments are grouped by baseline, ordered left to right within a line,
// and lines are ordered top to bottom. pageHeight is used to convert the
// PDF's bottom-origin coordinates into top-origin ones.
func assembleLines(texts []pdf.Text, pageHeight float64) []Line {
	if len(texts) == 0 {
		return nil
	}

	var groups []*fragmentLine
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" && t.S != " " {
			continue
		}
		var target *fragmentLine
		for _, g := range groups {
			if abs(g.baseline-t.Y) <= baselineTolerance {
				target = g
				break
			}
		}
		if target == nil {
			target = &fragmentLine{baseline: t.Y}
			groups = append(groups, target)
		}
		target.fragments = append(target.fragments, t)
	}

	// Top of page first: PDF Y grows upwards.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].baseline > groups[j].baseline
	})

	lines := make([]Line, 0, len(groups))
	var prevBaseline float64
	for i, g := range groups {
		line := joinFragments(g.fragments)
		if line.Text == "" {
			continue
		}
		line.Top = pageHeight - g.baseline - line.FontSize
		if i > 0 {
			gap := prevBaseline - g.baseline - line.FontSize
			if gap > 0 {
				line.GapAbove = gap
			}
		}
		prevBaseline = g.baseline
		lines = append(lines, line)
	}
	return lines
}

// joinFragments concatenates a line's fragments left to right, inserting a
// space wherever the horizontal gap between neighbours exceeds the word
// threshold for the current font size.
func joinFragments(fragments []pdf.Text) Line {
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].X < fragments[j].X
	})

	var b strings.Builder
	var line Line
	var prevEnd float64
	for i, f := range fragments {
		if i == 0 {
			line.Font = f.Font
		}
		if f.FontSize > line.FontSize {
			line.FontSize = f.FontSize
		}
		if i > 0 {
			threshold := wordGapFactor * f.FontSize
			if threshold <= 0 {
				threshold = 1
			}
			if f.X-prevEnd > threshold && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(f.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(f.S)
		prevEnd = f.X + f.W
	}

	line.Text = strings.Join(strings.Fields(b.String()), " ")
	return line
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
