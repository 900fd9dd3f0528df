package docmodel

// Output shapes for the collection ranker. Field names and JSON keys are
// part of the persisted format and must not change.

// CollectionMetadata describes the inputs a ranked output was produced from.
type CollectionMetadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one retained section in the ranked output.
// ImportanceRank is 1-based within its own document's top selection.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis carries the refined text snippet for one retained section.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// RankedOutput is the full collection-ranking result.
type RankedOutput struct {
	Metadata           CollectionMetadata   `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}
