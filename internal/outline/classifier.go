package outline

import (
	"regexp"
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// Font size thresholds for the bold-or-large rule, in absolute points.
const (
	h1FontSize = 16
	h2FontSize = 14
	h3FontSize = 12
)

// numberedPrefixRe matches a dotted numeric heading prefix such as
// "1.", "2.1" or "3.2.1", followed by whitespace or end of text.
var numberedPrefixRe = regexp.MustCompile(`^(\d+(?:\.\d+)*\.?)(\s|$)`)

// Classifier decides whether a styled span is a heading and at what
// level, using a prioritized signal cascade.
type Classifier struct {
	keywords []string
}

// NewClassifier builds a classifier over the given structural keywords.
func NewClassifier(structuralKeywords []string) *Classifier {
	return &Classifier{keywords: structuralKeywords}
}

// Classify runs the cascade for one span. prevFontSize is the size of
// the immediately preceding span, or 0 at document start. The second
// return value is false when the span is not a heading.
func (c *Classifier) Classify(span docmodel.TextSpan, prevFontSize float64) (docmodel.HeadingLevel, bool) {
	text := strings.TrimSpace(span.Text)

	// 1. Numbered prefix: level determined solely by group count.
	if groups := numberedGroups(text); groups > 0 {
		switch groups {
		case 1:
			return docmodel.H1, true
		case 2:
			return docmodel.H2, true
		default:
			return docmodel.H3, true
		}
	}

	// 2. Structural keyword: always H1, regardless of font.
	lower := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return docmodel.H1, true
		}
	}

	// 3. Font grew relative to the preceding span.
	if prevFontSize > 0 && span.FontSize > prevFontSize {
		return docmodel.H1, true
	}

	// 4. Bold or absolute size thresholds.
	switch {
	case span.Bold || span.FontSize >= h1FontSize:
		return docmodel.H1, true
	case span.FontSize >= h2FontSize:
		return docmodel.H2, true
	case span.FontSize >= h3FontSize:
		return docmodel.H3, true
	}

	return "", false
}

// IsNumbered reports whether text carries a dotted numeric heading
// prefix. Such headings are exempt from the minimum-length noise filter.
func IsNumbered(text string) bool {
	return numberedGroups(text) > 0
}

// numberedGroups returns the count of numeric groups in a dotted
// heading prefix, or 0 when the text has no such prefix. A bare number
// without any dot ("12 Monkeys") is not a numbered heading.
func numberedGroups(text string) int {
	m := numberedPrefixRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	prefix := m[1]
	if !strings.Contains(prefix, ".") {
		return 0
	}
	return strings.Count(strings.TrimSuffix(prefix, "."), ".") + 1
}
