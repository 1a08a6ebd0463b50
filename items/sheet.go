package items

import (
	"strings"

	"github.com/brunobiangulo/docextract/columns"
	"github.com/brunobiangulo/docextract/fields"
	"github.com/brunobiangulo/docextract/invoice"
	"github.com/brunobiangulo/docextract/totals"
)

// Sheet is a column-mapped view over spreadsheet rows. Rows are keyed by
// the extractor's headers, which are the first row of the sheet.
type Sheet struct {
	headers []string
	rows    []map[string]string

	// itemKeys maps extractor headers to item fields for rows[start:].
	itemKeys map[string]columns.Key
	start    int
	found    bool
}

// Meta is the document-level data found in a sheet.
type Meta struct {
	Number *string
	Date   *string
	Client invoice.Client
}

// NewSheet locates the item header row. The extractor's own headers count
// as a row placed before the first data row: when they name a description
// or quantity column every data row is an item candidate. Otherwise the
// first data row whose cells name one becomes the header row and re-keys
// the rows below it.
func NewSheet(headers []string, rows []map[string]string) *Sheet {
	s := &Sheet{headers: headers, rows: rows, start: len(rows)}

	keys := make(map[string]columns.Key)
	for _, h := range headers {
		if k, ok := columns.Lookup(h); ok {
			keys[h] = k
		}
	}
	if namesItemTable(keys) {
		s.itemKeys, s.start, s.found = keys, 0, true
		return s
	}

	for i, row := range rows {
		keys := make(map[string]columns.Key)
		for _, h := range headers {
			if k, ok := columns.Lookup(row[h]); ok {
				keys[h] = k
			}
		}
		if namesItemTable(keys) {
			s.itemKeys, s.start, s.found = keys, i+1, true
			return s
		}
	}
	return s
}

func namesItemTable(keys map[string]columns.Key) bool {
	for _, k := range keys {
		if k == columns.Description || k == columns.Quantity {
			return true
		}
	}
	return false
}

// HasItemTable reports whether an item header row was found.
func (s *Sheet) HasItemTable() bool { return s.found }

// Items maps every row after the header row to a line item. A row is kept
// when it has a description and a quantity or unit price; subtotal rows
// are skipped.
func (s *Sheet) Items() []invoice.LineItem {
	out := []invoice.LineItem{}
	if !s.found {
		return out
	}
	for _, row := range s.rows[s.start:] {
		if item, ok := s.rowItem(row); ok {
			out = append(out, item)
		}
	}
	return out
}

func (s *Sheet) rowItem(row map[string]string) (invoice.LineItem, bool) {
	var it invoice.LineItem
	for _, h := range s.headers {
		key, ok := s.itemKeys[h]
		if !ok {
			continue
		}
		cell := strings.TrimSpace(row[h])
		if cell == "" {
			continue
		}
		switch key {
		case columns.Description:
			if it.Description == nil {
				it.Description = invoice.Ptr(cell)
			}
		case columns.Quantity:
			setNonNegative(&it.Quantity, cell)
		case columns.UnitPrice:
			setNonNegative(&it.UnitPrice, cell)
		case columns.Total:
			if it.Total == nil {
				if v, ok := fields.ParseNumber(cell); ok {
					it.Total = invoice.Ptr(v)
				}
			}
		case columns.TaxRate:
			if it.TaxRate == nil {
				if v, ok := fields.ParseNumber(cell); ok && v >= 0 {
					if v > 0 && v < 1 {
						v = totals.Round(v * 100)
					}
					it.TaxRate = invoice.Ptr(v)
				}
			}
		}
	}
	if it.Description == nil || isSubtotalLabel(*it.Description) {
		return invoice.LineItem{}, false
	}
	if it.Quantity == nil && it.UnitPrice == nil {
		return invoice.LineItem{}, false
	}
	return it, true
}

func setNonNegative(dst **float64, cell string) {
	if *dst != nil {
		return
	}
	if v, ok := fields.ParseNumber(cell); ok && v >= 0 {
		*dst = invoice.Ptr(v)
	}
}

func isSubtotalLabel(desc string) bool {
	d := strings.ToLower(desc)
	for _, p := range []string{"total", "sous-total", "sous total", "subtotal"} {
		if strings.HasPrefix(d, p) {
			return true
		}
	}
	return false
}

// Meta collects the document number, date and client fields. When the
// extractor headers are the item table header, their metadata columns are
// read top to bottom. Otherwise label/value cell pairs ("Client | ACME
// SARL") are read from the header cells and the rows above the item table.
func (s *Sheet) Meta() Meta {
	var m Meta
	if s.found && s.start == 0 {
		for _, h := range s.headers {
			key, ok := columns.Lookup(h)
			if !ok || columns.IsItemKey(key) {
				continue
			}
			for _, row := range s.rows {
				if m.set(key, row[h]) {
					break
				}
			}
		}
		return m
	}

	above := s.rows
	if s.found {
		above = s.rows[:s.start-1]
	}
	m.labelPairs(s.headers)
	for _, row := range above {
		cells := make([]string, len(s.headers))
		for i, h := range s.headers {
			cells[i] = row[h]
		}
		m.labelPairs(cells)
	}
	return m
}

// labelPairs reads adjacent cells as label and value. A value that is
// itself a known label is not taken.
func (m *Meta) labelPairs(cells []string) {
	for i := 0; i+1 < len(cells); i++ {
		key, ok := columns.Lookup(cells[i])
		if !ok || columns.IsItemKey(key) {
			continue
		}
		if _, isLabel := columns.Lookup(cells[i+1]); isLabel {
			continue
		}
		if m.set(key, cells[i+1]) {
			i++
		}
	}
}

// set stores cell under key unless the field is already known. It reports
// whether the cell was used.
func (m *Meta) set(key columns.Key, cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	switch key {
	case columns.Number:
		if m.Number == nil {
			m.Number = invoice.Ptr(cell)
			return true
		}
	case columns.Date:
		if m.Date == nil {
			if iso, ok := fields.CellDate(cell); ok {
				m.Date = invoice.Ptr(iso)
				return true
			}
		}
	case columns.ClientName:
		if m.Client.Name == nil {
			m.Client.Name = invoice.Ptr(cell)
			return true
		}
	case columns.Email:
		if m.Client.Email == nil {
			if v, ok := fields.Email(cell); ok {
				m.Client.Email = invoice.Ptr(v)
				return true
			}
		}
	case columns.Address:
		if m.Client.Address == nil {
			m.Client.Address = invoice.Ptr(cell)
			return true
		}
	case columns.Phone:
		if m.Client.Phone == nil {
			if v, ok := fields.Phone(cell); ok {
				m.Client.Phone = invoice.Ptr(v)
				return true
			}
		}
	}
	return false
}
