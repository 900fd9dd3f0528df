package outline

import (
	"testing"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
)

func newTestClassifier() *Classifier {
	return NewClassifier(lexicon.Default().StructuralKeywords)
}

func TestClassify_NumberedPrefixLevels(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text string
		want docmodel.HeadingLevel
	}{
		{"1. Introduction", docmodel.H1},
		{"1. Intro", docmodel.H1},
		{"2.1 Overview", docmodel.H2},
		{"2.3 Methods", docmodel.H2},
		{"3.2.1 Detail", docmodel.H3},
		{"4.1.2 Detail", docmodel.H3},
		{"10.2.3.4 Deep", docmodel.H3},
	}
	for _, tt := range tests {
		// Tiny font and no bold: only the numbered rule can fire.
		span := docmodel.TextSpan{Text: tt.text, FontSize: 10}
		got, ok := c.Classify(span, 0)
		if !ok {
			t.Errorf("%q: expected a heading, got none", tt.text)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.text, tt.want, got)
		}
	}
}

func TestClassify_TrimsSurroundingWhitespace(t *testing.T) {
	c := newTestClassifier()
	// Readers may emit spans with stray whitespace; the rules see the
	// trimmed text.
	tests := []struct {
		text string
		want docmodel.HeadingLevel
	}{
		{"  1. Introduction", docmodel.H1},
		{"\t2.1 Overview ", docmodel.H2},
		{" table of contents", docmodel.H1},
	}
	for _, tt := range tests {
		span := docmodel.TextSpan{Text: tt.text, FontSize: 10}
		got, ok := c.Classify(span, 0)
		if !ok || got != tt.want {
			t.Errorf("%q: expected %s, got %v ok=%v", tt.text, tt.want, got, ok)
		}
	}
}

func TestClassify_BareNumberIsNotNumbered(t *testing.T) {
	c := newTestClassifier()
	span := docmodel.TextSpan{Text: "12 Monkeys", FontSize: 10}
	if _, ok := c.Classify(span, 0); ok {
		t.Errorf("expected %q to not classify as a heading", span.Text)
	}
}

func TestClassify_KeywordRuleWinsRegardlessOfFont(t *testing.T) {
	c := newTestClassifier()
	span := docmodel.TextSpan{Text: "table of contents", FontSize: 8}
	got, ok := c.Classify(span, 0)
	if !ok || got != docmodel.H1 {
		t.Errorf("expected H1 for structural keyword, got %v ok=%v", got, ok)
	}
}

func TestClassify_FontGrowthRule(t *testing.T) {
	c := newTestClassifier()
	span := docmodel.TextSpan{Text: "some larger text", FontSize: 11}

	if got, ok := c.Classify(span, 10); !ok || got != docmodel.H1 {
		t.Errorf("size 11 after 10: expected H1, got %v ok=%v", got, ok)
	}
	// No previous size known: growth rule cannot fire, size 11 is below
	// every threshold.
	if _, ok := c.Classify(span, 0); ok {
		t.Errorf("size 11 with no previous size: expected no heading")
	}
}

func TestClassify_BoldOrLargeRule(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name string
		span docmodel.TextSpan
		prev float64
		want docmodel.HeadingLevel
		none bool
	}{
		{"bold small font", docmodel.TextSpan{Text: "some bold words", FontSize: 9, Bold: true}, 9, docmodel.H1, false},
		{"sixteen point", docmodel.TextSpan{Text: "big banner words", FontSize: 16}, 16, docmodel.H1, false},
		{"fourteen point", docmodel.TextSpan{Text: "medium sized words", FontSize: 14}, 14, docmodel.H2, false},
		{"twelve point", docmodel.TextSpan{Text: "slightly larger words", FontSize: 12}, 12, docmodel.H3, false},
		{"body text", docmodel.TextSpan{Text: "ordinary body words", FontSize: 10}, 10, "", true},
	}
	for _, tt := range tests {
		got, ok := c.Classify(tt.span, tt.prev)
		if tt.none {
			if ok {
				t.Errorf("%s: expected no heading, got %s", tt.name, got)
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("%s: expected %s, got %v ok=%v", tt.name, tt.want, got, ok)
		}
	}
}

func TestClassify_NumberedBeatsFontSignals(t *testing.T) {
	c := newTestClassifier()
	// Huge bold font, but three numeric groups: the cascade stops at
	// the numbered rule.
	span := docmodel.TextSpan{Text: "3.2.1 Detail", FontSize: 20, Bold: true}
	got, ok := c.Classify(span, 10)
	if !ok || got != docmodel.H3 {
		t.Errorf("expected H3 from numbered rule, got %v ok=%v", got, ok)
	}
}

func TestIsNumbered(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1. Intro", true},
		{"2.3 Methods", true},
		{"1.", true},
		{"Mr.", false},
		{"Intro", false},
		{"12 Monkeys", false},
	}
	for _, tt := range tests {
		if got := IsNumbered(tt.text); got != tt.want {
			t.Errorf("IsNumbered(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}
