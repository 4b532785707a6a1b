// Package report defines the per-collection output document and its JSON
// serialisation.
//
// The output always contains exactly topN entries in both lists: when fewer
// sections were extracted, the remainder is padded with null-field entries
// so consumers can index the lists positionally.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata describes the inputs a report was produced from.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section reference. Pointer fields
// serialise as null in padding entries.
type ExtractedSection struct {
	Document       *string `json:"document"`
	SectionTitle   *string `json:"section_title"`
	ImportanceRank int     `json:"importance_rank"`
	PageNumber     *int    `json:"page_number"`
}

// SubsectionAnalysis carries the refined text of one ranked section.
type SubsectionAnalysis struct {
	Document    *string `json:"document"`
	RefinedText *string `json:"refined_text"`
	PageNumber  *int    `json:"page_number"`
}

// Report is the full output document for one collection.
type Report struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// Entry is one ranked result handed over by the pipeline.
type Entry struct {
	Document    string
	Title       string
	Page        int
	RefinedText string
}

// Build assembles a report from ranked entries, padding both lists with
// null entries up to topN. Entries beyond topN are ignored.
func Build(meta Metadata, entries []Entry, topN int) *Report {
	r := &Report{
		Metadata:           meta,
		ExtractedSections:  make([]ExtractedSection, 0, topN),
		SubsectionAnalysis: make([]SubsectionAnalysis, 0, topN),
	}

	for i, e := range entries {
		if topN > 0 && i >= topN {
			break
		}
		doc, title, page, refined := e.Document, e.Title, e.Page, e.RefinedText
		r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{
			Document:       &doc,
			SectionTitle:   &title,
			ImportanceRank: i + 1,
			PageNumber:     &page,
		})
		r.SubsectionAnalysis = append(r.SubsectionAnalysis, SubsectionAnalysis{
			Document:    &doc,
			RefinedText: &refined,
			PageNumber:  &page,
		})
	}

	for len(r.ExtractedSections) < topN {
		r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{
			ImportanceRank: len(r.ExtractedSections) + 1,
		})
		r.SubsectionAnalysis = append(r.SubsectionAnalysis, SubsectionAnalysis{})
	}

	return r
}

// NewMetadata stamps report metadata with the current time.
func NewMetadata(documents []string, persona, job string, now time.Time) Metadata {
	return Metadata{
		InputDocuments:      documents,
		Persona:             persona,
		JobToBeDone:         job,
		ProcessingTimestamp: now.Format("2006-01-02T15:04:05.999999"),
	}
}

// Write serialises the report as indented JSON at path.
func Write(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
