package relevance

import (
	"regexp"
	"strings"
)

// refinedTextLimit is the soft cap on snippet length. Truncation at a
// sentence boundary may exceed it; the hard fallback does not.
const refinedTextLimit = 500

var whitespaceRe = regexp.MustCompile(`\s+`)

// RefineText derives a short snippet from section content lines: lines
// are joined with single spaces, whitespace runs collapsed, and overlong
// text truncated at the first two sentence boundaries when more than one
// sentence exists, else hard-truncated.
func RefineText(content []string) string {
	if len(content) == 0 {
		return ""
	}

	text := whitespaceRe.ReplaceAllString(strings.Join(content, " "), " ")

	if len(text) > refinedTextLimit {
		sentences := strings.Split(text, ".")
		if len(sentences) > 1 {
			text = strings.Join(sentences[:2], ". ") + "."
		} else {
			text = text[:refinedTextLimit]
		}
	}

	return strings.TrimSpace(text)
}
