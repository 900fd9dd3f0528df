package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AbdulNafisa/adobe-hackathon/internal/outline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/reader"
)

func outlineCmd() *cobra.Command {
	var outDir string
	var lexPath string

	cmd := &cobra.Command{
		Use:   "outline <input-dir>",
		Short: "Extract a title and heading outline from every document in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := loadLexicon(lexPath)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			builder := outline.NewBuilder(outline.NewClassifier(lex.StructuralKeywords))
			return processDirectory(builder, args[0], outDir, log)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "output", "directory for <stem>.json outline files")
	cmd.Flags().StringVar(&lexPath, "lexicon", "", "YAML lexicon override file")
	return cmd
}

// processDirectory extracts an outline for every supported file in
// inDir and writes one JSON file per document to outDir. A failing
// document is logged and skipped; the batch continues.
func processDirectory(builder *outline.Builder, inDir, outDir string, log *slog.Logger) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read input directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !reader.IsSupportedExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(inDir, entry.Name())

		r, err := reader.Open(path)
		if err != nil {
			log.Error("skipping document", "file", entry.Name(), "error", err)
			continue
		}
		doc := builder.Extract(r)
		r.Close()

		if doc.Title == "" {
			doc.Title = fileStem(entry.Name())
		}

		outPath := filepath.Join(outDir, fileStem(entry.Name())+".json")
		if err := writeJSON(outPath, doc); err != nil {
			log.Error("write failed", "file", outPath, "error", err)
			continue
		}
		log.Info("processed", "file", entry.Name(), "output", outPath, "headings", len(doc.Outline))
		processed++
	}

	if processed == 0 {
		log.Warn("no supported documents found", "dir", inDir)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
