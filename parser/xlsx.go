package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXParser reads the first sheet of an OOXML workbook. The first row is
// taken as the header row as-is; cells are raw values, so numbers and dates
// are not passed through the workbook's display formats.
type XLSXParser struct{}

func (p *XLSXParser) SupportedFormats() []string { return []string{"xlsx"} }

func (p *XLSXParser) Parse(ctx context.Context, data []byte) (*RawDocument, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheet found in XLSX")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sheetDocument(sheets[0], rows), nil
}

// sheetDocument keys every row below the first by the first row's cells.
// Rows come with trailing blanks trimmed, so the header row is padded to
// the widest row: a short title row still yields one key per column.
func sheetDocument(sheet string, rows [][]string) *RawDocument {
	doc := &RawDocument{Kind: KindSpreadsheetRows}
	if len(rows) == 0 {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("sheet %q is empty", sheet))
		return doc
	}

	width := 0
	for _, cells := range rows {
		width = max(width, len(cells))
	}
	header := make([]string, width)
	copy(header, rows[0])
	doc.Headers = headerKeys(header)

	for _, cells := range rows[1:] {
		row := make(map[string]string, len(cells))
		for i, c := range cells {
			if strings.TrimSpace(c) == "" {
				continue
			}
			row[doc.Headers[i]] = c
		}
		if len(row) > 0 {
			doc.Rows = append(doc.Rows, row)
		}
	}
	if len(doc.Rows) == 0 {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("sheet %q has no data rows", sheet))
	}
	return doc
}

// headerKeys makes the first-row cells usable as map keys: blank headers
// become "__EMPTY", "__EMPTY_1", ... and repeated ones get a "_N" suffix.
// A suffixed key never collides with a header written that way in the
// sheet itself.
func headerKeys(cells []string) []string {
	used := make(map[string]bool, len(cells))
	next := make(map[string]int, len(cells))
	keys := make([]string, len(cells))
	for i, c := range cells {
		base := c
		if strings.TrimSpace(base) == "" {
			base = "__EMPTY"
		}
		key := base
		for used[key] {
			next[base]++
			key = fmt.Sprintf("%s_%d", base, next[base])
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}
