package eval

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/brunobiangulo/docextract/parser"
)

// Dataset is a collection of extraction cases.
type Dataset struct {
	Name  string     `yaml:"name" json:"name"`
	Cases []TestCase `yaml:"cases" json:"cases"`
}

// TestCase is one document, given as the text a PDF extractor would return
// or as spreadsheet rows, and the fields expected from it.
type TestCase struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category,omitempty"` // invoice, quote, spreadsheet, ...
	IsQuote  bool   `yaml:"is_quote" json:"is_quote"`

	Text    string              `yaml:"text" json:"text,omitempty"`
	Headers []string            `yaml:"headers" json:"headers,omitempty"`
	Rows    []map[string]string `yaml:"rows" json:"rows,omitempty"`

	Expected Expected `yaml:"expected" json:"expected"`
}

// Expected lists the checked fields. Unset fields are not scored, except
// those named in Absent, which must not be found.
type Expected struct {
	DocumentNumber    *string  `yaml:"document_number" json:"document_number,omitempty"`
	DocumentDate      *string  `yaml:"document_date" json:"document_date,omitempty"`
	DueDate           *string  `yaml:"due_date" json:"due_date,omitempty"`
	ValidUntil        *string  `yaml:"valid_until" json:"valid_until,omitempty"`
	ClientName        *string  `yaml:"client_name" json:"client_name,omitempty"`
	ClientEmail       *string  `yaml:"client_email" json:"client_email,omitempty"`
	ClientAddress     *string  `yaml:"client_address" json:"client_address,omitempty"`
	ClientPhone       *string  `yaml:"client_phone" json:"client_phone,omitempty"`
	Items             *int     `yaml:"items" json:"items,omitempty"`
	TotalHT           *float64 `yaml:"total_ht" json:"total_ht,omitempty"`
	TotalTVA          *float64 `yaml:"total_tva" json:"total_tva,omitempty"`
	TotalTTC          *float64 `yaml:"total_ttc" json:"total_ttc,omitempty"`
	PaymentConditions *string  `yaml:"payment_conditions" json:"payment_conditions,omitempty"`
	Notes             *string  `yaml:"notes" json:"notes,omitempty"`

	Absent []string `yaml:"absent" json:"absent,omitempty"`
}

// RawDocument builds the extractor output the case stands for.
func (tc TestCase) RawDocument() *parser.RawDocument {
	if len(tc.Headers) > 0 {
		return &parser.RawDocument{
			Kind:    parser.KindSpreadsheetRows,
			Headers: tc.Headers,
			Rows:    tc.Rows,
		}
	}
	return &parser.RawDocument{Kind: parser.KindPDFText, Text: tc.Text}
}

// LoadDataset reads a YAML dataset file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a YAML dataset.
func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parsing dataset: %w", err)
	}
	if len(ds.Cases) == 0 {
		return Dataset{}, fmt.Errorf("dataset %q has no cases", ds.Name)
	}
	for i, tc := range ds.Cases {
		if tc.Text == "" && len(tc.Headers) == 0 {
			return Dataset{}, fmt.Errorf("case %d (%s): needs text or headers", i+1, tc.Name)
		}
		for _, f := range tc.Expected.Absent {
			if !knownField(f) {
				return Dataset{}, fmt.Errorf("case %d (%s): unknown field %q in absent", i+1, tc.Name, f)
			}
		}
	}
	return ds, nil
}
