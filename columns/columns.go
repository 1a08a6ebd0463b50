// Package columns maps spreadsheet header labels, in French or English, to
// canonical field keys.
package columns

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is a canonical field name a header synonym resolves to.
type Key string

const (
	Description Key = "description"
	Quantity    Key = "quantity"
	UnitPrice   Key = "unit_price"
	TaxRate     Key = "tax_rate"
	Total       Key = "total"
	ClientName  Key = "client_name"
	Email       Key = "email"
	Address     Key = "address"
	Phone       Key = "phone"
	Date        Key = "date"
	Number      Key = "number"
)

// synonyms is keyed by canonical field. Entries are lower-case NFC.
var synonyms = map[Key][]string{
	Description: {"désignation", "designation", "libellé", "libelle", "description", "article", "produit", "prestation", "item", "product", "service"},
	Quantity:    {"quantité", "quantite", "qté", "qte", "quantity", "qty", "nombre", "nb"},
	UnitPrice:   {"prix unitaire", "prix unitaire ht", "prix u. ht", "pu", "p.u.", "pu ht", "prix", "tarif", "unit price", "price"},
	TaxRate:     {"taux tva", "tva", "tva %", "taux", "tax", "tax rate", "vat", "vat rate"},
	Total:       {"total", "total ht", "montant", "montant ht", "amount", "line total"},
	ClientName:  {"client", "nom client", "nom du client", "client name", "customer", "customer name", "raison sociale"},
	Email:       {"email", "e-mail", "mail", "courriel", "adresse email", "adresse e-mail"},
	Address:     {"adresse", "adresse client", "address", "billing address"},
	Phone:       {"téléphone", "telephone", "tél", "tel", "phone", "mobile", "portable"},
	Date:        {"date", "date facture", "date du devis", "date d'émission", "invoice date", "issue date"},
	Number:      {"numéro", "numero", "n°", "numéro facture", "numéro devis", "number", "invoice number", "quote number", "référence", "reference", "ref"},
}

// index is the reverse lookup built once from synonyms.
var index = buildIndex()

func buildIndex() map[string]Key {
	idx := make(map[string]Key)
	for key, words := range synonyms {
		for _, w := range words {
			idx[w] = key
		}
	}
	return idx
}

// Normalize returns the form a header is matched under: NFC, trimmed and
// lower-cased. Matching is exact on that form, there is no partial matching.
func Normalize(header string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(header)))
}

// Lookup resolves a header label to its canonical key.
func Lookup(header string) (Key, bool) {
	k, ok := index[Normalize(header)]
	return k, ok
}

// Synonyms returns a sorted copy of the labels mapped to key.
func Synonyms(key Key) []string {
	out := append([]string(nil), synonyms[key]...)
	sort.Strings(out)
	return out
}

// IsItemKey reports whether key belongs to a line-item column.
func IsItemKey(key Key) bool {
	switch key {
	case Description, Quantity, UnitPrice, TaxRate, Total:
		return true
	}
	return false
}
