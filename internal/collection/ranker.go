// Package collection orchestrates section segmentation and relevance
// scoring across every document in a collection, producing the ranked
// output format.
package collection

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
	"github.com/AbdulNafisa/adobe-hackathon/internal/reader"
	"github.com/AbdulNafisa/adobe-hackathon/internal/relevance"
	"github.com/AbdulNafisa/adobe-hackathon/internal/section"
)

// Ordering selects how extracted_sections is sorted in the output.
type Ordering string

const (
	// OrderByRank interleaves per-document ranks: every document's
	// rank-1 section first (in document-processing order), then rank-2,
	// and so on. This matches the historical output format; it is not a
	// global relevance sort.
	OrderByRank Ordering = "rank"

	// OrderByScore sorts globally by descending absolute score.
	OrderByScore Ordering = "score"
)

// DefaultTopN is how many sections are retained per document.
const DefaultTopN = 3

// Ranker runs the collection pipeline.
type Ranker struct {
	segmenter *section.Segmenter
	scorer    *relevance.Scorer
	log       *slog.Logger

	// TopN caps retained sections per document. Zero means DefaultTopN.
	TopN int
	// Order selects the output ordering. Empty means OrderByRank.
	Order Ordering
}

// NewRanker wires a ranker from its two collaborators.
func NewRanker(seg *section.Segmenter, scorer *relevance.Scorer, log *slog.Logger) *Ranker {
	return &Ranker{segmenter: seg, scorer: scorer, log: log}
}

// Process ranks one collection directory. A missing input config or
// PDFs directory is fatal; a missing or unreadable document is logged
// and skipped.
func (rk *Ranker) Process(collectionDir string) (*docmodel.RankedOutput, error) {
	cfg, err := LoadInput(collectionDir)
	if err != nil {
		return nil, err
	}

	pdfDir, err := ResolvePDFDir(collectionDir)
	if err != nil {
		return nil, err
	}

	return rk.Rank(pdfDir, cfg), nil
}

// Rank runs segmentation and scoring for every configured document.
func (rk *Ranker) Rank(pdfDir string, cfg *InputConfig) *docmodel.RankedOutput {
	topN := rk.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	persona := cfg.Persona.Role
	job := cfg.Job.Task

	out := &docmodel.RankedOutput{
		Metadata: docmodel.CollectionMetadata{
			InputDocuments:      inputNames(cfg.Documents),
			Persona:             persona,
			JobToBeDone:         job,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		ExtractedSections:  []docmodel.ExtractedSection{},
		SubsectionAnalysis: []docmodel.SubsectionAnalysis{},
	}

	// Retained per-document scores, kept for the by-score ordering.
	scoreOf := make(map[int]float64)

	for _, doc := range cfg.Documents {
		path := filepath.Join(pdfDir, doc.Filename)
		if _, err := os.Stat(path); err != nil {
			rk.log.Warn("document not found, skipping", "document", doc.Filename)
			continue
		}

		scored, err := rk.scoreDocument(path, doc.Filename, persona, job)
		if err != nil {
			rk.log.Error("document processing failed, skipping",
				"document", doc.Filename, "error", err)
			continue
		}

		// Stable sort: ties keep segmentation order.
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
		if len(scored) > topN {
			scored = scored[:topN]
		}

		for i, ss := range scored {
			scoreOf[len(out.ExtractedSections)] = ss.Score
			out.ExtractedSections = append(out.ExtractedSections, docmodel.ExtractedSection{
				Document:       doc.Filename,
				SectionTitle:   ss.Section.Title,
				ImportanceRank: i + 1,
				PageNumber:     ss.Section.Page,
			})
			out.SubsectionAnalysis = append(out.SubsectionAnalysis, docmodel.SubsectionAnalysis{
				Document:    doc.Filename,
				RefinedText: relevance.RefineText(ss.Section.Content),
				PageNumber:  ss.Section.Page,
			})
		}
	}

	rk.order(out, scoreOf)
	return out
}

// scoreDocument segments one document's pages and scores every section.
func (rk *Ranker) scoreDocument(path, filename, persona, job string) ([]docmodel.ScoredSection, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pages := make(map[int]string, r.NumPages())
	for page := 1; page <= r.NumPages(); page++ {
		pages[page] = r.PageText(page)
	}

	sections := rk.segmenter.Segment(pages)
	scored := make([]docmodel.ScoredSection, 0, len(sections))
	for _, sec := range sections {
		sec.Document = filename
		scored = append(scored, docmodel.ScoredSection{
			Section: sec,
			Score:   rk.scorer.Score(sec, persona, job),
		})
	}
	return scored, nil
}

func (rk *Ranker) order(out *docmodel.RankedOutput, scoreOf map[int]float64) {
	switch rk.Order {
	case OrderByScore:
		idx := make([]int, len(out.ExtractedSections))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return scoreOf[idx[a]] > scoreOf[idx[b]]
		})
		sorted := make([]docmodel.ExtractedSection, len(idx))
		for pos, i := range idx {
			sorted[pos] = out.ExtractedSections[i]
		}
		out.ExtractedSections = sorted
	default:
		sort.SliceStable(out.ExtractedSections, func(i, j int) bool {
			return out.ExtractedSections[i].ImportanceRank < out.ExtractedSections[j].ImportanceRank
		})
	}
}

func inputNames(docs []DocumentEntry) []string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Filename)
	}
	return names
}
