// Package items rebuilds invoice line items from PDF text or spreadsheet
// rows.
package items

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brunobiangulo/docextract/invoice"
	"github.com/brunobiangulo/docextract/totals"
)

// state of the line scanner.
type state int

const (
	searching state = iota // before the items table
	inItems                // inside the items table
)

// headerKeywords mark the first line of an items table.
var headerKeywords = []string{"désignation", "designation", "description", "article", "libellé", "libelle", "quantité", "quantite", "prix", "total"}

var (
	reNumericToken = regexp.MustCompile(`\d+[.,]?\d*`)
	reColumnGap    = regexp.MustCompile(`\s{2,}|\t`)
)

// FromText scans text line by line for an items table. The table starts at
// the first line holding a header keyword and ends at the first later line
// mentioning "total" (but not "quantité"). Rows that do not look like a
// complete item are dropped: a missed item is preferred over a wrong one.
func FromText(text string) []invoice.LineItem {
	out := []invoice.LineItem{}
	st := searching
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch st {
		case searching:
			if containsAny(lower, headerKeywords) {
				st = inItems
			}
		case inItems:
			if strings.Contains(lower, "total") && !strings.Contains(lower, "quantit") {
				return out
			}
			if item, ok := parseRow(line); ok {
				out = append(out, item)
			}
		}
	}
	return out
}

// parseRow reads "description  qty  unit price  total". The numbers are the
// last numeric tokens of the line; the description is every column before
// them. A row with only two numbers gets quantity and unit price, and its
// total is computed.
func parseRow(line string) (invoice.LineItem, bool) {
	tokens := reNumericToken.FindAllString(line, -1)
	if len(tokens) < 2 {
		return invoice.LineItem{}, false
	}
	parts := reColumnGap.Split(line, -1)
	if len(parts) < 3 {
		return invoice.LineItem{}, false
	}

	nums := make([]float64, 0, 3)
	for _, t := range lastN(tokens, 3) {
		t = strings.TrimRight(t, ".,")
		v, err := strconv.ParseFloat(strings.Replace(t, ",", ".", 1), 64)
		if err != nil {
			return invoice.LineItem{}, false
		}
		nums = append(nums, v)
	}
	desc := strings.TrimSpace(strings.Join(parts[:len(parts)-len(nums)], " "))

	qty, price := nums[0], nums[1]
	if desc == "" || qty <= 0 || price <= 0 {
		return invoice.LineItem{}, false
	}
	total := totals.LineTotal(qty, price)
	if len(nums) == 3 {
		total = nums[2]
	}
	return invoice.LineItem{
		Description: invoice.Ptr(desc),
		Quantity:    invoice.Ptr(qty),
		UnitPrice:   invoice.Ptr(price),
		TaxRate:     invoice.Ptr(totals.DefaultTaxRate),
		Total:       invoice.Ptr(total),
	}, true
}

func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
