package docmodel

// HeadingLevel classifies a heading as H1, H2 or H3.
type HeadingLevel string

const (
	H1 HeadingLevel = "H1"
	H2 HeadingLevel = "H2"
	H3 HeadingLevel = "H3"
)

// TextSpan is a contiguous run of text sharing one font size and style,
// as reported by a document reader. Order is the monotonic position of
// the span in document reading order.
type TextSpan struct {
	Text     string
	FontSize float64
	Bold     bool
	Page     int
	Order    int
}

// HeadingCandidate is a raw heading detected from a span or a TOC entry.
// Span-derived candidates may be fragmentary (one heading split across
// spans) until the builder merges them; TOC-derived candidates are
// always whole headings.
type HeadingCandidate struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the normalized heading sequence of one document, in source
// emission order (TOC order may differ from physical page order).
type Outline []HeadingCandidate

// Document is the outline-extraction result for one file.
type Document struct {
	Title   string  `json:"title"`
	Outline Outline `json:"outline"`
}

// TOCEntry is one embedded bookmark/outline entry of a document.
type TOCEntry struct {
	Level int
	Title string
	Page  int
}

// Section is a contiguous run of a document's text, beginning at a
// detected heading line and ending before the next one. Content holds
// every non-header line in original order; it never contains a line
// that itself classified as a header.
type Section struct {
	Title     string
	Page      int
	StartLine int
	Content   []string
	Document  string
}

// ScoredSection pairs a section with its relevance score for one query.
type ScoredSection struct {
	Section Section
	Score   float64
}
