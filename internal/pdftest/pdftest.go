// Package pdftest builds small single-page PDFs with a text layer for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// FontSize is the size every line is drawn at.
const FontSize = 10

// glyphWidth is the advance of every character, in 1/1000 of the font size.
const glyphWidth = 600

// Line is a run of text drawn with its baseline starting at (X, Y), in
// points from the bottom-left corner of a US Letter page.
type Line struct {
	X, Y float64
	Text string
}

// Lines places texts one below the other, 14pt apart, starting near the
// top of the page.
func Lines(texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = Line{X: 50, Y: float64(750 - 14*i), Text: t}
	}
	return out
}

// Build returns a PDF drawing the lines in Helvetica. Only printable ASCII
// is supported; every glyph has the same width so column gaps are
// predictable.
func Build(lines []Line) []byte {
	var content strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&content, "BT /F1 %d Tf 1 0 0 1 %.2f %.2f Tm (%s) Tj ET\n", FontSize, l.X, l.Y, escape(l.Text))
	}

	widths := strings.TrimSpace(strings.Repeat(fmt.Sprintf("%d ", glyphWidth), 126-32+1))
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [" + widths + "] >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(s)
}
