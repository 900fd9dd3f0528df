// Package section partitions a document's plain page text into
// contiguous sections using line-level header heuristics. This path has
// no font metadata; it operates on bare strings, with a deliberately
// coarser pattern set than the styled-span heading classifier.
package section

import (
	"regexp"
	"sort"
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// A line shorter than headerMinLength or longer than headerMaxLength is
// never a header, whatever it matches.
const (
	headerMinLength = 3
	headerMaxLength = 250
)

// headerPatterns are tried in order against each trimmed line.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][A-Z\s]{2,}$`),                             // ALL CAPS HEADERS
	regexp.MustCompile(`^\d+\.\s+[A-Z][^.]*$`),                           // Numbered sections
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`),               // Title Case Headers
	regexp.MustCompile(`^[A-Z][^.]*:$`),                                  // Headers ending with colon
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[a-z]+)*\s+\([^)]+\)$`),        // Title with parentheses
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[a-z]+)*\s+[A-Z][a-z]+$`),      // Multi-word title case
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[a-z]+)*$`),                    // Simple title case
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[a-z]+)*\s+[A-Z][a-z]+(?:\s+[a-z]+)*$`), // Complex title case
}

var capitalStartRe = regexp.MustCompile(`^[A-Z][a-z]`)

// Segmenter splits page text into sections at detected header lines.
type Segmenter struct {
	indicators []string
}

// NewSegmenter builds a segmenter. indicators is the curated list of
// literal substrings known to mark section headers.
func NewSegmenter(headerIndicators []string) *Segmenter {
	return &Segmenter{indicators: headerIndicators}
}

// Segment walks pages in ascending page order and lines in page order.
// A header line closes the currently open section and opens a new one;
// non-header lines accumulate into the open section. An open section
// stays open across page boundaries until the next header or end of
// document. Text before the first header belongs to no section.
func (s *Segmenter) Segment(pages map[int]string) []docmodel.Section {
	pageNums := make([]int, 0, len(pages))
	for n := range pages {
		pageNums = append(pageNums, n)
	}
	sort.Ints(pageNums)

	var sections []docmodel.Section
	var current *docmodel.Section

	for _, pageNum := range pageNums {
		for lineNum, line := range strings.Split(pages[pageNum], "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if s.IsHeader(line) {
				if current != nil {
					sections = append(sections, *current)
				}
				current = &docmodel.Section{
					Title:     line,
					Page:      pageNum,
					StartLine: lineNum,
				}
			} else if current != nil {
				current.Content = append(current.Content, line)
			}
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// IsHeader reports whether a trimmed line is likely a section header.
func (s *Segmenter) IsHeader(line string) bool {
	if len(line) < headerMinLength || len(line) > headerMaxLength {
		return false
	}

	for _, p := range headerPatterns {
		if p.MatchString(line) {
			return true
		}
	}

	// Lines starting with a capital letter and of reasonable word count.
	if capitalStartRe.MatchString(line) && len(strings.Fields(line)) <= 10 {
		return true
	}

	lower := strings.ToLower(line)
	for _, indicator := range s.indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
