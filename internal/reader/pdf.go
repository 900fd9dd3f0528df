package reader

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/AbdulNafisa/adobe-hackathon/internal/docmodel"
)

// pdfReader reads PDFs with ledongthuc/pdf for styled spans and plain
// text, and pdfcpu for embedded bookmarks and as a fallback text
// extractor when the primary library yields nothing for a page.
type pdfReader struct {
	f *os.File
	r *pdflib.Reader

	numPages int
	toc      []docmodel.TOCEntry
	title    string

	spanCache map[int][]docmodel.TextSpan
	textCache map[int]string
	nextOrder int

	// Lazily initialized pdfcpu context for fallback extraction.
	cpuCtx   *model.Context
	cpuTried bool
}

func openPDF(path string) (DocumentReader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}

	p := &pdfReader{
		f:         f,
		r:         r,
		numPages:  r.NumPage(),
		spanCache: make(map[int][]docmodel.TextSpan),
		textCache: make(map[int]string),
	}
	p.toc = p.readBookmarks()
	p.title = p.readMetadataTitle()
	return p, nil
}

func (p *pdfReader) Close() error { return p.f.Close() }

func (p *pdfReader) NumPages() int { return p.numPages }

func (p *pdfReader) TableOfContents() []docmodel.TOCEntry { return p.toc }

func (p *pdfReader) MetadataTitle() string { return p.title }

// readBookmarks extracts the embedded outline via pdfcpu, flattening the
// bookmark tree depth-first so entries keep source emission order.
func (p *pdfReader) readBookmarks() []docmodel.TOCEntry {
	if _, err := p.f.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	bms, err := api.Bookmarks(p.f, model.NewDefaultConfiguration())
	if err != nil {
		return nil
	}
	var entries []docmodel.TOCEntry
	var walk func(bms []pdfcpu.Bookmark, level int)
	walk = func(bms []pdfcpu.Bookmark, level int) {
		for _, bm := range bms {
			title := strings.TrimSpace(bm.Title)
			if title != "" {
				entries = append(entries, docmodel.TOCEntry{
					Level: level,
					Title: title,
					Page:  bm.PageFrom,
				})
			}
			if len(bm.Kids) > 0 {
				walk(bm.Kids, level+1)
			}
		}
	}
	walk(bms, 1)
	return entries
}

// readMetadataTitle pulls the Title entry from the trailer Info dict.
// ledongthuc/pdf panics on some malformed dictionaries, so this is
// guarded with a recover.
func (p *pdfReader) readMetadataTitle() (title string) {
	defer func() {
		if r := recover(); r != nil {
			title = ""
		}
	}()
	return strings.TrimSpace(p.r.Trailer().Key("Info").Key("Title").Text())
}

// PageSpans returns the styled spans of one page, grouping the per-glyph
// text items the library reports into runs sharing font, size and baseline.
func (p *pdfReader) PageSpans(page int) []docmodel.TextSpan {
	if spans, ok := p.spanCache[page]; ok {
		return spans
	}
	spans := p.extractSpans(page)
	p.spanCache[page] = spans
	return spans
}

func (p *pdfReader) extractSpans(page int) (spans []docmodel.TextSpan) {
	// Content() panics on some broken content streams.
	defer func() {
		if r := recover(); r != nil {
			spans = nil
		}
	}()

	if page < 1 || page > p.numPages {
		return nil
	}
	pg := p.r.Page(page)
	if pg.V.IsNull() {
		return nil
	}

	content := pg.Content()

	var cur strings.Builder
	var curFont string
	var curSize float64
	var curY, lastX, lastW float64
	open := false

	flush := func() {
		if !open {
			return
		}
		text := strings.TrimSpace(cur.String())
		if text != "" {
			spans = append(spans, docmodel.TextSpan{
				Text:     text,
				FontSize: curSize,
				Bold:     isBoldFont(curFont),
				Page:     page,
				Order:    p.nextOrder,
			})
			p.nextOrder++
		}
		cur.Reset()
		open = false
	}

	for _, t := range content.Text {
		sameRun := open &&
			t.Font == curFont &&
			t.FontSize == curSize &&
			math.Abs(t.Y-curY) < 0.5
		if !sameRun {
			flush()
			curFont = t.Font
			curSize = t.FontSize
			curY = t.Y
			open = true
		} else if t.X-(lastX+lastW) > 0.3*curSize {
			// Horizontal gap between glyph runs: emit a space.
			cur.WriteByte(' ')
		}
		cur.WriteString(t.S)
		lastX = t.X
		lastW = t.W
	}
	flush()
	return spans
}

// PageText returns the plain text of one page, falling back to pdfcpu
// content-stream extraction when the primary library comes up empty.
func (p *pdfReader) PageText(page int) string {
	if text, ok := p.textCache[page]; ok {
		return text
	}
	text := p.plainText(page)
	if strings.TrimSpace(text) == "" {
		text = p.fallbackPageText(page)
	}
	p.textCache[page] = text
	return text
}

func (p *pdfReader) plainText(page int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()
	if page < 1 || page > p.numPages {
		return ""
	}
	pg := p.r.Page(page)
	if pg.V.IsNull() {
		return ""
	}
	text, err := pg.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// fallbackPageText extracts page text by parsing the raw content stream
// with pdfcpu. Second strategy in the extraction chain.
func (p *pdfReader) fallbackPageText(page int) string {
	ctx := p.pdfcpuContext()
	if ctx == nil || page < 1 || page > ctx.PageCount {
		return ""
	}
	r, err := pdfcpu.ExtractPageContent(ctx, page)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

func (p *pdfReader) pdfcpuContext() *model.Context {
	if p.cpuTried {
		return p.cpuCtx
	}
	p.cpuTried = true
	if _, err := p.f.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	ctx, err := api.ReadValidateAndOptimize(p.f, model.NewDefaultConfiguration())
	if err != nil {
		return nil
	}
	p.cpuCtx = ctx
	return ctx
}

func isBoldFont(font string) bool {
	lower := strings.ToLower(font)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}
