package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
)

func main() {
	root := &cobra.Command{
		Use:   "docsift",
		Short: "Extract document outlines and rank sections by persona relevance",
	}

	root.AddCommand(outlineCmd())
	root.AddCommand(rankCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadLexicon resolves the lexicon: defaults, or a YAML override file.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(path)
}
