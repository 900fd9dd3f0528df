package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AbdulNafisa/adobe-hackathon/internal/collection"
	"github.com/AbdulNafisa/adobe-hackathon/internal/relevance"
	"github.com/AbdulNafisa/adobe-hackathon/internal/section"
)

func rankCmd() *cobra.Command {
	var lexPath string
	var byScore bool
	var topN int

	cmd := &cobra.Command{
		Use:   "rank <collection-dir>",
		Short: "Rank a PDF collection's sections against its persona and job-to-be-done",
		Long: `Reads ` + collection.InputFilename + ` from the collection directory,
processes every listed PDF from its PDFs directory, and writes the
ranked sections to ` + collection.OutputFilename + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := loadLexicon(lexPath)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			ranker := collection.NewRanker(
				section.NewSegmenter(lex.HeaderIndicators),
				relevance.NewScorer(lex),
				log,
			)
			ranker.TopN = topN
			if byScore {
				ranker.Order = collection.OrderByScore
			}

			collectionDir := args[0]
			out, err := ranker.Process(collectionDir)
			if err != nil {
				return err
			}

			outPath := filepath.Join(collectionDir, collection.OutputFilename)
			if err := writeJSON(outPath, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.Info("collection ranked",
				"collection", collectionDir,
				"sections", len(out.ExtractedSections),
				"output", outPath,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&lexPath, "lexicon", "", "YAML lexicon override file")
	cmd.Flags().BoolVar(&byScore, "by-score", false, "order extracted sections by global score instead of per-document rank")
	cmd.Flags().IntVar(&topN, "top", collection.DefaultTopN, "sections to retain per document")
	return cmd
}
