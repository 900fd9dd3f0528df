package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// htmlReader surfaces an HTML file's h1..h6 structure as its table of
// contents and the <title> tag as metadata title.
type htmlReader struct {
	toc   []docmodel.TOCEntry
	title string
	text  string
}

func openHTML(path string) (DocumentReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html %s: %v", ErrSourceUnavailable, path, err)
	}

	r := &htmlReader{title: findTitle(doc)}
	var body strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := textContent(n)
				if title != "" {
					r.toc = append(r.toc, docmodel.TOCEntry{
						Level: level,
						Title: title,
						Page:  1,
					})
					body.WriteString(title)
					body.WriteString("\n")
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if t := textContent(n); t != "" {
					body.WriteString(t)
					body.WriteString("\n")
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if b := findBody(doc); b != nil {
		walk(b)
	} else {
		walk(doc)
	}

	r.text = body.String()
	return r, nil
}

func (r *htmlReader) Close() error                           { return nil }
func (r *htmlReader) NumPages() int                          { return 1 }
func (r *htmlReader) TableOfContents() []docmodel.TOCEntry   { return r.toc }
func (r *htmlReader) MetadataTitle() string                  { return r.title }
func (r *htmlReader) PageSpans(page int) []docmodel.TextSpan { return nil }

func (r *htmlReader) PageText(page int) string {
	if page != 1 {
		return ""
	}
	return r.text
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
