package parser

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Horizontal gaps between glyphs, in units of font size. A gap wider than
// wordGap is a space; wider than columnGap it is a column break, written
// as two spaces so table columns stay separable.
const (
	wordGap   = 0.15
	columnGap = 1.0
)

// PDFParser extracts the text layer of a PDF. Lines are rebuilt from glyph
// positions, top to bottom and left to right.
type PDFParser struct {
	// MaxPages stops extraction after that many pages; 0 reads all pages.
	MaxPages int
}

func (p *PDFParser) SupportedFormats() []string { return []string{"pdf"} }

func (p *PDFParser) Parse(ctx context.Context, data []byte) (doc *RawDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("reading PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	totalPages := reader.NumPage()
	if p.MaxPages > 0 && totalPages > p.MaxPages {
		totalPages = p.MaxPages
	}

	doc = &RawDocument{Kind: KindPDFText, Pages: totalPages}
	pages := make([]string, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil {
			// Skip pages that fail to extract
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	doc.Text = norm.NFC.String(strings.Join(pages, "\n"))
	if strings.TrimSpace(doc.Text) == "" {
		doc.Warnings = append(doc.Warnings, "no text layer found")
	}
	return doc, nil
}

// pageText lays the glyphs of a page out as lines.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%v", r)
		}
	}()
	if text = layoutLines(page.Content().Text); text != "" {
		return text, nil
	}
	return page.GetPlainText(nil)
}

// layoutLines groups glyphs sharing a baseline into lines, orders lines from
// the top of the page down, and joins each line's glyphs left to right.
func layoutLines(glyphs []pdf.Text) string {
	type line struct {
		y      float64
		glyphs []pdf.Text
	}
	byY := make(map[float64]*line)
	var lines []*line
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		y := math.Round(g.Y)
		l, ok := byY[y]
		if !ok {
			l = &line{y: y}
			byY[y] = l
			lines = append(lines, l)
		}
		l.glyphs = append(l.glyphs, g)
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		sort.SliceStable(l.glyphs, func(i, j int) bool { return l.glyphs[i].X < l.glyphs[j].X })
		if s := strings.TrimSpace(joinGlyphs(l.glyphs)); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

func joinGlyphs(glyphs []pdf.Text) string {
	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			size := g.FontSize
			if size <= 0 {
				size = 10
			}
			gap := (g.X - (prev.X + prev.W)) / size
			switch {
			case gap > columnGap:
				b.WriteString("  ")
			case gap > wordGap:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}
