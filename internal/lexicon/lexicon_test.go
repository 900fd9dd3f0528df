package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_TablesPopulated(t *testing.T) {
	lex := Default()

	if len(lex.StructuralKeywords) == 0 {
		t.Errorf("structural keywords empty")
	}
	if len(lex.HeaderIndicators) == 0 {
		t.Errorf("header indicators empty")
	}
	for _, persona := range []string{"travel planner", "hr professional", "food contractor"} {
		if len(lex.PersonaKeywords[persona]) == 0 {
			t.Errorf("no persona keywords for %q", persona)
		}
		if len(lex.SampleTitles[persona]) == 0 {
			t.Errorf("no sample titles for %q", persona)
		}
	}
	if len(lex.JobKeywords["prepare vegetarian buffet"]) == 0 {
		t.Errorf("no job keywords for the buffet job")
	}
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	override := `
structural_keywords:
  - "Executive Summary"
persona_keywords:
  "data analyst":
    - "dataset"
    - "dashboard"
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Overridden table is replaced wholesale.
	if len(lex.StructuralKeywords) != 1 || lex.StructuralKeywords[0] != "Executive Summary" {
		t.Errorf("structural keywords not overridden: %v", lex.StructuralKeywords)
	}
	// New persona is merged into the default map.
	if len(lex.PersonaKeywords["data analyst"]) != 2 {
		t.Errorf("new persona not loaded: %v", lex.PersonaKeywords["data analyst"])
	}
	if len(lex.PersonaKeywords["travel planner"]) == 0 {
		t.Errorf("untouched persona lost its defaults")
	}
	// Tables absent from the file keep their defaults.
	if len(lex.HeaderIndicators) == 0 {
		t.Errorf("header indicators should keep defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
