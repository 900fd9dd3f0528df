package section

import (
	"strings"
	"testing"

	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
)

func newTestSegmenter() *Segmenter {
	return NewSegmenter(lexicon.Default().HeaderIndicators)
}

func TestIsHeader_Patterns(t *testing.T) {
	s := newTestSegmenter()

	tests := []struct {
		line string
		want bool
	}{
		{"INGREDIENTS AND TOOLS", true},     // all caps
		{"1. Getting Started", true},        // numbered section
		{"Coastal Adventures", true},        // title case
		{"Preparation steps:", true},        // ends in colon
		{"Falafel (serves four)", true},     // title with parenthetical
		{"Baba ganoush", true},              // capital start, short
		{"falafel wraps for the whole crew", true}, // indicator substring
		{"a plain lowercase body line without indicators", false},
		{"ab", false}, // under minimum length
	}
	for _, tt := range tests {
		if got := s.IsHeader(tt.line); got != tt.want {
			t.Errorf("IsHeader(%q): expected %v, got %v", tt.line, tt.want, got)
		}
	}
}

func TestIsHeader_LengthGates(t *testing.T) {
	s := newTestSegmenter()
	if s.IsHeader("Ab") {
		t.Errorf("2-char line must never be a header")
	}
	long := "Falafel " + strings.Repeat("x", 250)
	if s.IsHeader(long) {
		t.Errorf("line over 250 chars must never be a header")
	}
}

func TestSegment_BasicSections(t *testing.T) {
	s := newTestSegmenter()
	pages := map[int]string{
		1: "Falafel\n" +
			"a classic chickpea fritter with herbs.\n" +
			"best served warm in a wrap.\n" +
			"Ratatouille\n" +
			"a slow-cooked vegetable stew from provence.\n",
	}

	sections := s.Segment(pages)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(sections), sections)
	}

	if sections[0].Title != "Falafel" || sections[0].Page != 1 {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if len(sections[0].Content) != 2 {
		t.Errorf("expected 2 content lines, got %v", sections[0].Content)
	}
	if sections[1].Title != "Ratatouille" {
		t.Errorf("unexpected second section title: %q", sections[1].Title)
	}
}

func TestSegment_NoHeaderLinesYieldsNoSections(t *testing.T) {
	s := newTestSegmenter()
	pages := map[int]string{
		1: "just lowercase rambling text.\nmore of the same here.\n",
	}
	if sections := s.Segment(pages); len(sections) != 0 {
		t.Errorf("expected no sections, got %+v", sections)
	}
}

func TestSegment_ContentBeforeFirstHeaderIsDropped(t *testing.T) {
	s := newTestSegmenter()
	pages := map[int]string{
		1: "stray preamble line without a home.\n" +
			"Packing Tips\n" +
			"roll clothes to save space.\n",
	}
	sections := s.Segment(pages)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	for _, line := range sections[0].Content {
		if strings.Contains(line, "preamble") {
			t.Errorf("preamble leaked into section content: %v", sections[0].Content)
		}
	}
}

func TestSegment_SectionStaysOpenAcrossPages(t *testing.T) {
	s := newTestSegmenter()
	pages := map[int]string{
		1: "Water Sports\n" +
			"snorkeling along the rocky coves.\n",
		2: "kayak rentals are available at the marina.\n" +
			"Nightlife\n" +
			"bars open late along the promenade.\n",
	}

	sections := s.Segment(pages)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(sections), sections)
	}

	first := sections[0]
	if first.Title != "Water Sports" || first.Page != 1 {
		t.Fatalf("unexpected first section: %+v", first)
	}
	joined := strings.Join(first.Content, " ")
	if !strings.Contains(joined, "kayak rentals") {
		t.Errorf("content on the following page should stay with the open section, got %v", first.Content)
	}

	if sections[1].Title != "Nightlife" || sections[1].Page != 2 {
		t.Errorf("unexpected second section: %+v", sections[1])
	}
}

func TestSegment_PagesVisitedInAscendingOrder(t *testing.T) {
	s := newTestSegmenter()
	pages := map[int]string{
		3: "Appendix Notes\nmisc trailing remarks here.\n",
		1: "Summary Findings\nkey results in brief.\n",
	}
	sections := s.Segment(pages)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Page != 1 || sections[1].Page != 3 {
		t.Errorf("expected page order 1,3; got %d,%d", sections[0].Page, sections[1].Page)
	}
}
