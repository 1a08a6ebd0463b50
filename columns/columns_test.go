package columns

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		header string
		want   Key
	}{
		{"Désignation", Description},
		{"description", Description},
		{"Libellé", Description},
		{"  LIBELLÉ ", Description},
		{"Qté", Quantity},
		{"Quantity", Quantity},
		{"Prix unitaire", UnitPrice},
		{"Unit Price", UnitPrice},
		{"Taux TVA", TaxRate},
		{"Montant", Total},
		{"Nom client", ClientName},
		{"E-mail", Email},
		{"Adresse", Address},
		{"Téléphone", Phone},
		{"Date facture", Date},
		{"Numéro", Number},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := Lookup(tt.header)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.header)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestLookupDecomposedAccents(t *testing.T) {
	// "Désignation" with a combining acute accent, as some PDF fonts and
	// spreadsheet exports produce it.
	header := norm.NFD.String("Désignation")
	if got, ok := Lookup(header); !ok || got != Description {
		t.Errorf("Lookup(NFD %q) = %q, %v; want %q", header, got, ok, Description)
	}
}

func TestLookupNoPartialMatch(t *testing.T) {
	for _, h := range []string{"Désignation article", "prix total", "", "Remarques", "qty."} {
		if k, ok := Lookup(h); ok {
			t.Errorf("Lookup(%q) = %q, want no match", h, k)
		}
	}
}

func TestSynonymsComplete(t *testing.T) {
	for key, words := range synonyms {
		if len(words) == 0 {
			t.Errorf("%s has no synonyms", key)
		}
		for _, w := range words {
			if Normalize(w) != w {
				t.Errorf("synonym %q of %s is not in normalised form", w, key)
			}
			if got, _ := Lookup(w); got != key {
				t.Errorf("synonym %q maps to %s, want %s", w, got, key)
			}
		}
	}

	got := Synonyms(Description)
	got[0] = "mutated"
	if Synonyms(Description)[0] == "mutated" {
		t.Error("Synonyms returned the shared slice")
	}
}

func TestIsItemKey(t *testing.T) {
	for _, k := range []Key{Description, Quantity, UnitPrice, TaxRate, Total} {
		if !IsItemKey(k) {
			t.Errorf("IsItemKey(%s) = false", k)
		}
	}
	for _, k := range []Key{ClientName, Email, Address, Phone, Date, Number} {
		if IsItemKey(k) {
			t.Errorf("IsItemKey(%s) = true", k)
		}
	}
}
