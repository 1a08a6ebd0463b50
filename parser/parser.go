package parser

import "context"

// Kind tells which variant of RawDocument is populated.
type Kind int

const (
	// KindPDFText carries the concatenated page text of a PDF.
	KindPDFText Kind = iota + 1
	// KindSpreadsheetRows carries the rows of the first sheet of a workbook.
	KindSpreadsheetRows
)

func (k Kind) String() string {
	switch k {
	case KindPDFText:
		return "pdf-text"
	case KindSpreadsheetRows:
		return "spreadsheet-rows"
	}
	return "unknown"
}

// RawDocument is what an extractor produces from a file. It is not
// modified once returned; field parsers only read it.
type RawDocument struct {
	Kind Kind

	// Text is set for KindPDFText: page text in page order, pages joined by
	// a newline, lines top to bottom.
	Text  string
	Pages int

	// Headers and Rows are set for KindSpreadsheetRows. Headers are the raw
	// cells of the first row, in column order; each row maps a header to
	// its cell. Empty cells are absent from the map.
	Headers []string
	Rows    []map[string]string

	// Warnings lists non-fatal extraction problems, such as a page that
	// could not be decoded.
	Warnings []string
}

// Parser turns the bytes of a file into a RawDocument.
type Parser interface {
	Parse(ctx context.Context, data []byte) (*RawDocument, error)
	SupportedFormats() []string
}
