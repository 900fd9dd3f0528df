// Package relevance scores document sections against a persona and a
// job-to-be-done using weighted lexical overlap. Scores are not
// normalized; only relative ordering within one scoring run matters.
package relevance

import (
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
)

// Scoring weights. Title matches dominate content matches; the content
// length signal has diminishing returns and is capped.
const (
	keywordWeight    = 2
	titleWeight      = 10
	lengthDivisor    = 50
	lengthCap        = 3
	titleTermBonus   = 20
	sampleTitleBonus = 30
)

// Scorer is a pure function over (section, persona, job); it keeps no
// state beyond the read-only lexicon.
type Scorer struct {
	lex *lexicon.Lexicon
}

// NewScorer returns a scorer over the given lexicon.
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score computes the relevance of one section to the persona/job query.
// A persona or job absent from the lexicon contributes an empty keyword
// list; the score then rests on content length and title bonuses alone.
func (s *Scorer) Score(sec docmodel.Section, persona, job string) float64 {
	content := strings.ToLower(strings.Join(sec.Content, " "))
	title := strings.ToLower(sec.Title)

	keywords := unionKeywords(
		s.lex.PersonaKeywords[strings.ToLower(persona)],
		s.lex.JobKeywords[strings.ToLower(job)],
	)

	keywordMatches := 0
	titleMatches := 0
	for _, kw := range keywords {
		inTitle := strings.Contains(title, kw)
		if inTitle || strings.Contains(content, kw) {
			keywordMatches++
		}
		if inTitle {
			titleMatches++
		}
	}

	lengthBonus := float64(len(strings.Fields(content))) / lengthDivisor
	if lengthBonus > lengthCap {
		lengthBonus = lengthCap
	}

	score := float64(keywordMatches*keywordWeight+titleMatches*titleWeight) + lengthBonus

	for _, term := range s.lex.TitleBonusTerms {
		if strings.Contains(title, term) {
			score += titleTermBonus
			break
		}
	}

	for _, sample := range s.lex.SampleTitles[strings.ToLower(persona)] {
		if strings.Contains(title, sample) {
			score += sampleTitleBonus
		}
	}

	return score
}

// unionKeywords concatenates the persona and job lists, dropping
// duplicates while preserving first-seen order.
func unionKeywords(persona, job []string) []string {
	seen := make(map[string]bool, len(persona)+len(job))
	union := make([]string, 0, len(persona)+len(job))
	for _, kw := range append(append([]string{}, persona...), job...) {
		kw = strings.ToLower(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		union = append(union, kw)
	}
	return union
}
