package outline

import (
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
	"github.com/AbdulNafisa/adobe-hackathon/internal/reader"
)

// Builder assembles a document outline. Two strategies are tried in
// order: the embedded table of contents, then the span-signal cascade.
// The first strategy with non-empty output wins.
type Builder struct {
	classifier *Classifier
}

// NewBuilder returns a builder using the given span classifier.
func NewBuilder(c *Classifier) *Builder {
	return &Builder{classifier: c}
}

// Extract produces the normalized outline and title for one document.
func (b *Builder) Extract(r reader.DocumentReader) docmodel.Document {
	title, candidates := b.fromTOC(r)
	if len(candidates) == 0 {
		title, candidates = b.fromSignals(r)
	}
	return docmodel.Document{
		Title:   title,
		Outline: Normalize(candidates),
	}
}

// fromTOC maps embedded TOC entries directly to candidates. The title
// prefers document metadata, then the largest-font span on page 1.
func (b *Builder) fromTOC(r reader.DocumentReader) (string, []docmodel.HeadingCandidate) {
	entries := r.TableOfContents()
	candidates := make([]docmodel.HeadingCandidate, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, docmodel.HeadingCandidate{
			Level: levelFor(e.Level),
			Text:  e.Title,
			Page:  e.Page,
		})
	}

	title := strings.TrimSpace(r.MetadataTitle())
	if title == "" {
		title = largestSpanText(r.PageSpans(1))
	}
	return title, candidates
}

// fromSignals walks every page's spans in reading order, classifying
// each against the previous span's font size. Consecutive same-page
// same-level candidates are merged: they are fragments of one heading
// the reader split across spans. The title is the text of the single
// largest-font span on page 1, first occurrence winning ties.
func (b *Builder) fromSignals(r reader.DocumentReader) (string, []docmodel.HeadingCandidate) {
	var candidates []docmodel.HeadingCandidate
	var prevSize float64
	title := ""
	maxSize := 0.0

	for page := 1; page <= r.NumPages(); page++ {
		for _, span := range r.PageSpans(page) {
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			if page == 1 && span.FontSize > maxSize {
				maxSize = span.FontSize
				title = text
			}
			level, ok := b.classifier.Classify(span, prevSize)
			prevSize = span.FontSize
			if ok {
				candidates = append(candidates, docmodel.HeadingCandidate{
					Level: level,
					Text:  text,
					Page:  page,
				})
			}
		}
	}
	return title, mergeFragments(candidates)
}

// largestSpanText returns the text of the largest-font span, ties
// broken by first occurrence.
func largestSpanText(spans []docmodel.TextSpan) string {
	best := ""
	maxSize := 0.0
	for _, span := range spans {
		text := strings.TrimSpace(span.Text)
		if text != "" && span.FontSize > maxSize {
			maxSize = span.FontSize
			best = text
		}
	}
	return best
}

// levelFor clamps a numeric TOC depth onto the three heading levels.
func levelFor(level int) docmodel.HeadingLevel {
	switch {
	case level <= 1:
		return docmodel.H1
	case level == 2:
		return docmodel.H2
	default:
		return docmodel.H3
	}
}
