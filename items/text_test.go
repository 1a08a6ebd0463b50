package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunobiangulo/docextract/invoice"
)

func item(desc string, qty, price, rate, total float64) invoice.LineItem {
	return invoice.LineItem{
		Description: invoice.Ptr(desc),
		Quantity:    invoice.Ptr(qty),
		UnitPrice:   invoice.Ptr(price),
		TaxRate:     invoice.Ptr(rate),
		Total:       invoice.Ptr(total),
	}
}

func TestFromText(t *testing.T) {
	got := FromText("Désignation Quantité Prix Total\nWidget   2   10,50   21,00")
	assert.Equal(t, []invoice.LineItem{item("Widget", 2, 10.5, 20, 21)}, got)
}

func TestFromTextStopsAtTotalLine(t *testing.T) {
	text := "Désignation  Qté  Prix\n" +
		"Quantité totale  3  10,00  30,00\n" +
		"Clou  100  0,10\n" +
		"Total HT  40,00\n" +
		"Ignored  1  1,00"

	got := FromText(text)
	require.Len(t, got, 2)
	assert.Equal(t, item("Quantité totale", 3, 10, 20, 30), got[0])
	// Two numbers: quantity and unit price, total computed.
	assert.Equal(t, item("Clou", 100, 0.1, 20, 10), got[1])
}

func TestFromTextDescriptionWithDigits(t *testing.T) {
	got := FromText("Article  Qté  PU  Total\nCâble 2m  3  4,50  13,50")
	assert.Equal(t, []invoice.LineItem{item("Câble 2m", 3, 4.5, 20, 13.5)}, got)
}

func TestFromTextDropsIncompleteRows(t *testing.T) {
	text := "Désignation  Quantité  Prix  Total\n" +
		"Gratuit  0  5,00  0,00\n" +
		"Remise exceptionnelle\n" +
		"Livraison 1 15,00\n" +
		"Vis  10  0,20  2,00"

	got := FromText(text)
	assert.Equal(t, []invoice.LineItem{item("Vis", 10, 0.2, 20, 2)}, got)
}

func TestFromTextNoHeader(t *testing.T) {
	got := FromText("Bonjour,\nWidget  2  10,50  21,00")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, FromText(""))
}
