package outline

import (
	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// Minimum text length for a non-numbered heading to survive the noise
// filter.
const headingMinLength = 4

// Normalize cleans a candidate sequence: drop too-short non-numbered
// noise, then deduplicate by (level, text, page). Order is preserved
// and the pass is idempotent. Fragment repair is not done here; see
// mergeFragments.
func Normalize(candidates []docmodel.HeadingCandidate) docmodel.Outline {
	filtered := make([]docmodel.HeadingCandidate, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Text) >= headingMinLength || IsNumbered(c.Text) {
			filtered = append(filtered, c)
		}
	}

	type key struct {
		level docmodel.HeadingLevel
		text  string
		page  int
	}
	seen := make(map[key]bool, len(filtered))
	result := make(docmodel.Outline, 0, len(filtered))
	for _, c := range filtered {
		k := key{c.Level, c.Text, c.Page}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, c)
	}
	return result
}

// mergeFragments joins consecutive candidates sharing both page and
// level, repairing headings a reader split across spans. Only the
// span-signal strategy needs this: embedded TOC entries are whole
// headings, and adjacent same-level entries there are distinct.
func mergeFragments(candidates []docmodel.HeadingCandidate) []docmodel.HeadingCandidate {
	var merged []docmodel.HeadingCandidate
	for _, c := range candidates {
		if n := len(merged); n > 0 &&
			merged[n-1].Page == c.Page && merged[n-1].Level == c.Level {
			merged[n-1].Text += " " + c.Text
			continue
		}
		merged = append(merged, c)
	}
	return merged
}
