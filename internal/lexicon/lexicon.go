// Package lexicon holds the keyword and pattern tables the heading
// classifier and relevance scorer consult. The tables are plain data:
// ship defaults, allow a YAML override so deployments can extend them
// without a code change.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon is the full set of lookup tables, read-only after initialization.
type Lexicon struct {
	// StructuralKeywords are phrases that always classify a span as H1.
	StructuralKeywords []string `yaml:"structural_keywords"`

	// HeaderIndicators are literal substrings that mark a plain text
	// line as a section header during segmentation.
	HeaderIndicators []string `yaml:"header_indicators"`

	// PersonaKeywords maps a lowercased persona role to its domain terms.
	PersonaKeywords map[string][]string `yaml:"persona_keywords"`

	// JobKeywords maps a lowercased job-to-be-done to its domain terms.
	JobKeywords map[string][]string `yaml:"job_keywords"`

	// TitleBonusTerms earn a flat +20 when found in a section title.
	TitleBonusTerms []string `yaml:"title_bonus_terms"`

	// SampleTitles maps a lowercased persona to known high-value section
	// titles, each worth +30 when contained in a section title.
	SampleTitles map[string][]string `yaml:"sample_titles"`
}

// Load reads a YAML lexicon file. Tables absent from the file keep
// their defaults.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	lex := Default()
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	return lex, nil
}

// Default returns the built-in tables.
func Default() *Lexicon {
	return &Lexicon{
		StructuralKeywords: []string{
			"Revision History", "Table of Contents", "Acknowledgements", "References",
			"Appendix", "Summary", "Background", "Milestones", "Evaluation", "Business Plan",
			"Proposal", "Terms of Reference", "Membership", "Chair", "Meetings",
			"Financial and Administrative Policies",
		},
		HeaderIndicators: []string{
			"comprehensive guide", "coastal adventures", "culinary experiences",
			"packing tips", "nightlife", "entertainment", "water sports",
			"change flat forms", "create multiple", "convert clipboard",
			"fill and sign", "send document", "falafel", "ratatouille",
			"baba ganoush", "veggie sushi", "vegetable lasagna",
		},
		PersonaKeywords: map[string][]string{
			"travel planner": {
				"travel", "trip", "itinerary", "accommodation", "hotel", "restaurant",
				"attraction", "activity", "planning", "schedule", "booking", "reservation",
				"transport", "transportation", "guide", "tour", "visit", "explore", "city",
				"coastal", "adventure", "nightlife", "entertainment", "cuisine", "culture",
				"comprehensive", "major cities", "coastal adventures", "culinary experiences",
				"packing tips", "tips and tricks", "water sports", "beach", "mediterranean",
			},
			"hr professional": {
				"form", "fillable", "onboarding", "compliance", "employee", "hr",
				"human resources", "document", "signature", "e-signature", "workflow",
				"process", "template", "field", "input", "validation", "create", "convert",
				"edit", "export", "share", "request", "send", "signatures", "change flat forms",
				"create multiple pdfs", "convert clipboard", "fill and sign", "send document",
			},
			"food contractor": {
				"recipe", "cooking", "ingredient", "meal", "dish", "cuisine",
				"vegetarian", "buffet", "dinner", "lunch", "breakfast", "menu",
				"preparation", "cooking time", "serving", "portion", "nutrition",
				"falafel", "ratatouille", "baba ganoush", "sushi", "lasagna", "vegetable",
				"veggie sushi rolls", "vegetable lasagna", "escalivada", "macaroni",
			},
		},
		JobKeywords: map[string][]string{
			"plan a trip": {
				"itinerary", "schedule", "accommodation", "transport", "attraction",
				"activity", "booking", "reservation", "guide", "tour", "cities", "coastal",
				"adventures", "nightlife", "entertainment", "tips", "tricks", "comprehensive guide",
				"coastal adventures", "culinary experiences", "packing tips", "water sports",
			},
			"create and manage fillable forms": {
				"form", "fillable", "field", "input", "signature",
				"e-signature", "template", "workflow", "process", "create",
				"convert", "edit", "export", "request", "send", "change flat forms",
				"create multiple pdfs", "convert clipboard", "fill and sign",
				"send document",
			},
			"prepare vegetarian buffet": {
				"recipe", "vegetarian", "buffet", "ingredient", "cooking",
				"meal", "dish", "preparation", "serving", "menu", "falafel",
				"ratatouille", "baba ganoush", "sushi", "lasagna", "vegetable",
				"veggie sushi rolls", "vegetable lasagna",
			},
		},
		TitleBonusTerms: []string{
			"form", "fillable", "falafel", "ratatouille", "coastal", "comprehensive",
		},
		SampleTitles: map[string][]string{
			"travel planner": {
				"comprehensive guide to major cities", "coastal adventures",
				"culinary experiences", "packing tips", "nightlife and entertainment",
			},
			"hr professional": {
				"change flat forms to fillable", "create multiple pdfs",
				"convert clipboard", "fill and sign", "send document",
			},
			"food contractor": {
				"falafel", "ratatouille", "baba ganoush", "veggie sushi rolls",
				"vegetable lasagna",
			},
		},
	}
}
