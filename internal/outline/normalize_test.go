package outline

import (
	"reflect"
	"testing"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

func TestMergeFragments_SamePageAndLevel(t *testing.T) {
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H1, Text: "Financial and", Page: 2},
		{Level: docmodel.H1, Text: "Administrative Policies", Page: 2},
	}
	out := mergeFragments(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	if out[0].Text != "Financial and Administrative Policies" {
		t.Errorf("expected merged text, got %q", out[0].Text)
	}
}

func TestMergeFragments_PageOrLevelChangeStartsNewEntry(t *testing.T) {
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H1, Text: "Overview", Page: 1},
		{Level: docmodel.H2, Text: "Details", Page: 1},
		{Level: docmodel.H2, Text: "Details", Page: 2},
	}
	out := mergeFragments(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(out), out)
	}
}

func TestNormalize_KeepsDistinctAdjacentHeadings(t *testing.T) {
	// Whole headings sharing page and level are separate outline
	// entries, not fragments of one heading.
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H2, Text: "Goals", Page: 1},
		{Level: docmodel.H2, Text: "Timeline", Page: 1},
	}
	out := Normalize(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(out), out)
	}
	if out[0].Text != "Goals" || out[1].Text != "Timeline" {
		t.Errorf("unexpected texts: %v", out)
	}
}

func TestNormalize_NoiseFilter(t *testing.T) {
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H1, Text: "Mr.", Page: 1},
		{Level: docmodel.H1, Text: "1.", Page: 2},
		{Level: docmodel.H1, Text: "Summary", Page: 3},
		{Level: docmodel.H2, Text: "ab", Page: 4},
	}
	out := Normalize(in)

	want := []string{"1.", "Summary"}
	if len(out) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(out), out)
	}
	for i, w := range want {
		if out[i].Text != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, out[i].Text)
		}
	}
}

func TestNormalize_Deduplicates(t *testing.T) {
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H1, Text: "References", Page: 9},
		{Level: docmodel.H2, Text: "Setup", Page: 3},
		{Level: docmodel.H1, Text: "References", Page: 9},
		// Same text but different page: not a duplicate.
		{Level: docmodel.H1, Text: "References", Page: 12},
	}
	out := Normalize(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(out), out)
	}
	if out[0].Text != "References" || out[0].Page != 9 {
		t.Errorf("first occurrence should win, got %+v", out[0])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := []docmodel.HeadingCandidate{
		{Level: docmodel.H1, Text: "Introduction", Page: 1},
		{Level: docmodel.H2, Text: "Background", Page: 2},
		{Level: docmodel.H2, Text: "Background", Page: 2},
		{Level: docmodel.H3, Text: "x", Page: 3},
	}
	once := Normalize(in)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}
