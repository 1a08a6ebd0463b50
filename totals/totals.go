// Package totals fills in missing HT/TVA/TTC amounts from line items.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/brunobiangulo/docextract/invoice"
)

// DefaultTaxRate is the VAT percentage assumed for an item without one.
const DefaultTaxRate = 20.0

// currencyPlaces is the rounding precision for money amounts.
const currencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Round rounds an amount to currency precision.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(currencyPlaces).Float64()
	return f
}

// LineTotal is quantity * unitPrice rounded to currency precision.
func LineTotal(quantity, unitPrice float64) float64 {
	f, _ := lineTotal(decimal.NewFromFloat(quantity), decimal.NewFromFloat(unitPrice)).Float64()
	return f
}

func lineTotal(q, p decimal.Decimal) decimal.Decimal {
	return q.Mul(p).Round(currencyPlaces)
}

// Subtotal returns the pre-tax amount of an item, rounded: its parsed total
// when present, otherwise quantity * unitPrice. A missing quantity counts
// as 1 and a missing unit price as 0.
func Subtotal(item invoice.LineItem) decimal.Decimal {
	if item.Total != nil {
		return decimal.NewFromFloat(*item.Total).Round(currencyPlaces)
	}
	q := decimal.NewFromInt(1)
	if item.Quantity != nil {
		q = decimal.NewFromFloat(*item.Quantity)
	}
	p := decimal.Zero
	if item.UnitPrice != nil {
		p = decimal.NewFromFloat(*item.UnitPrice)
	}
	return lineTotal(q, p)
}

// Tax returns the VAT owed on an item's subtotal.
func Tax(item invoice.LineItem) decimal.Decimal {
	rate := decimal.NewFromFloat(DefaultTaxRate)
	if item.TaxRate != nil {
		rate = decimal.NewFromFloat(*item.TaxRate)
	}
	return Subtotal(item).Mul(rate).Div(hundred)
}

// Reconcile fills the totals of d that are still nil. Totals already set
// are never overwritten, even when they disagree with the items.
//
// Items are summed first (HT, then TVA, then TTC = HT + TVA). When there
// are no items, a single missing total is derived from the other two.
func Reconcile(d *invoice.ExtractedInvoiceData) {
	if len(d.Items) > 0 {
		if d.TotalHT == nil {
			sum := decimal.Zero
			for _, it := range d.Items {
				sum = sum.Add(Subtotal(it))
			}
			d.TotalHT = toFloat(sum)
		}
		if d.TotalTVA == nil {
			sum := decimal.Zero
			for _, it := range d.Items {
				sum = sum.Add(Tax(it))
			}
			d.TotalTVA = toFloat(sum.Round(currencyPlaces))
		}
	}

	ht, tva, ttc := fromFloat(d.TotalHT), fromFloat(d.TotalTVA), fromFloat(d.TotalTTC)
	switch {
	case ttc == nil && ht != nil && tva != nil:
		d.TotalTTC = toFloat(ht.Add(*tva))
	case tva == nil && ht != nil && ttc != nil:
		d.TotalTVA = toFloat(ttc.Sub(*ht))
	case ht == nil && tva != nil && ttc != nil:
		d.TotalHT = toFloat(ttc.Sub(*tva))
	}
}

func fromFloat(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func toFloat(d decimal.Decimal) *float64 {
	f, _ := d.Round(currencyPlaces).Float64()
	return &f
}
