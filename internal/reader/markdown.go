package reader

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// markdownReader surfaces a Markdown file's explicit heading structure
// as its table of contents. Markdown has no pagination, so the whole
// document is one page.
type markdownReader struct {
	toc   []docmodel.TOCEntry
	title string
	text  string
}

func openMarkdown(path string) (DocumentReader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	r := &markdownReader{}
	var body strings.Builder

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			// A leading level-1 heading is the document title by
			// convention, not an outline entry.
			if node.Level == 1 && r.title == "" && len(r.toc) == 0 {
				r.title = title
				continue
			}
			r.toc = append(r.toc, docmodel.TOCEntry{
				Level: node.Level,
				Title: title,
				Page:  1,
			})
			body.WriteString(title)
			body.WriteString("\n")
		default:
			if t := markdownText(n, src); t != "" {
				body.WriteString(t)
				body.WriteString("\n")
			}
		}
	}

	r.text = body.String()
	return r, nil
}

func (r *markdownReader) Close() error                           { return nil }
func (r *markdownReader) NumPages() int                          { return 1 }
func (r *markdownReader) TableOfContents() []docmodel.TOCEntry   { return r.toc }
func (r *markdownReader) MetadataTitle() string                  { return r.title }
func (r *markdownReader) PageSpans(page int) []docmodel.TextSpan { return nil }

func (r *markdownReader) PageText(page int) string {
	if page != 1 {
		return ""
	}
	return r.text
}

// markdownText gets the text content of a goldmark AST node. Inline
// children carry the text for parsed blocks; raw lines cover leaf
// blocks without them (code blocks, html blocks).
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(markdownText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
