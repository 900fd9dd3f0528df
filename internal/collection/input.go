package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigurationMissing marks an absent collection input file or PDFs
// directory. These abort the whole collection run.
var ErrConfigurationMissing = errors.New("collection configuration missing")

// InputFilename is the collection configuration file expected inside a
// collection directory. OutputFilename is where results are written.
// Both names are kept for compatibility with existing collections.
const (
	InputFilename  = "challenge1b_input.json"
	OutputFilename = "challenge1b_output.json"
)

// InputConfig is the collection input configuration.
type InputConfig struct {
	Documents []DocumentEntry `json:"documents"`
	Persona   Persona         `json:"persona"`
	Job       Job             `json:"job_to_be_done"`
}

// DocumentEntry names one PDF in the collection.
type DocumentEntry struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Persona is the stated consumer of the collection.
type Persona struct {
	Role string `json:"role"`
}

// Job is the task the persona is trying to accomplish.
type Job struct {
	Task string `json:"task"`
}

// LoadInput reads the input configuration from a collection directory.
func LoadInput(collectionDir string) (*InputConfig, error) {
	path := filepath.Join(collectionDir, InputFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigurationMissing, path)
		}
		return nil, fmt.Errorf("read input config: %w", err)
	}
	var cfg InputConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse input config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolvePDFDir locates the PDFs directory inside a collection,
// accepting either casing.
func ResolvePDFDir(collectionDir string) (string, error) {
	for _, name := range []string{"PDFs", "PDFS"} {
		dir := filepath.Join(collectionDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: PDFs directory not found in %s", ErrConfigurationMissing, collectionDir)
}
