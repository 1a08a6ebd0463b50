package parser

import (
	"bytes"
	"context"
	"fmt"

	"github.com/extrame/xls"
)

// zipMagic starts every OOXML package. Browsers often send .xlsx uploads
// as application/vnd.ms-excel.
var zipMagic = []byte("PK\x03\x04")

// XLSParser reads the first sheet of a legacy BIFF workbook (.xls) into the
// same header/rows shape as XLSXParser.
type XLSParser struct{}

func (p *XLSParser) SupportedFormats() []string { return []string{"xls"} }

func (p *XLSParser) Parse(ctx context.Context, data []byte) (doc *RawDocument, err error) {
	if bytes.HasPrefix(data, zipMagic) {
		return (&XLSXParser{}).Parse(ctx, data)
	}

	// The BIFF reader panics on malformed records.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("reading XLS: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening XLS: %w", err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, fmt.Errorf("no sheet found in XLS")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no sheet found in XLS")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		var cells []string
		if row := sheet.Row(i); row != nil {
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
		}
		rows = append(rows, trimBlankCells(cells))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sheetDocument(sheet.Name, rows), nil
}

// trimBlankCells drops trailing empty cells, matching what excelize returns.
func trimBlankCells(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}
