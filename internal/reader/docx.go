package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// docxReader surfaces a .docx file's Heading-styled paragraphs as its
// table of contents.
type docxReader struct {
	toc  []docmodel.TOCEntry
	text string
}

func openDOCX(path string) (DocumentReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrSourceUnavailable, path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: parse docx %s: %v", ErrSourceUnavailable, path, err)
	}

	r := &docxReader{}
	var body strings.Builder

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if level := paragraphHeadingLevel(para); level > 0 {
			r.toc = append(r.toc, docmodel.TOCEntry{
				Level: level,
				Title: text,
				Page:  1,
			})
		}
		body.WriteString(text)
		body.WriteString("\n")
	}

	r.text = body.String()
	return r, nil
}

func (r *docxReader) Close() error                           { return nil }
func (r *docxReader) NumPages() int                          { return 1 }
func (r *docxReader) TableOfContents() []docmodel.TOCEntry   { return r.toc }
func (r *docxReader) MetadataTitle() string                  { return "" }
func (r *docxReader) PageSpans(page int) []docmodel.TextSpan { return nil }

func (r *docxReader) PageText(page int) string {
	if page != 1 {
		return ""
	}
	return r.text
}

func paragraphHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	switch style {
	case "heading1":
		return 1
	case "heading2":
		return 2
	case "heading3":
		return 3
	case "heading4":
		return 4
	case "heading5":
		return 5
	case "heading6":
		return 6
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
