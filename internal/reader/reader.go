package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// ErrSourceUnavailable marks a document that could not be opened or read.
// Callers in batch/collection mode log it and move on to the next file.
var ErrSourceUnavailable = errors.New("document source unavailable")

// DocumentReader is the capability contract the outline and section
// pipelines consume. Pages are 1-based. Formats without physical pages
// (markdown, html, docx) report a single page.
type DocumentReader interface {
	// NumPages reports the page count.
	NumPages() int
	// TableOfContents returns the embedded bookmark/heading structure,
	// possibly empty.
	TableOfContents() []docmodel.TOCEntry
	// MetadataTitle returns the document's declared title, possibly empty.
	MetadataTitle() string
	// PageSpans returns the styled text spans of one page in reading
	// order. Formats without font metadata return nil.
	PageSpans(page int) []docmodel.TextSpan
	// PageText returns the plain text of one page.
	PageText(page int) string
	// Close releases underlying resources.
	Close() error
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// Open returns the appropriate reader for a file path.
func Open(path string) (DocumentReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return openPDF(path)
	case ".md", ".markdown":
		return openMarkdown(path)
	case ".html", ".htm":
		return openHTML(path)
	case ".docx":
		return openDOCX(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
