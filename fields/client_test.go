package fields

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brunobiangulo/docextract/invoice"
)

func TestClientIndependence(t *testing.T) {
	got := Client("Merci de votre confiance.\nContact : compta@example.fr\n")
	want := invoice.Client{Email: invoice.Ptr("compta@example.fr")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Client() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientBlock(t *testing.T) {
	text := "ACME Formation\n" +
		"Client : Dupont Conseil\n" +
		"12 bis rue des Lilas\n" +
		"75011 Paris\n" +
		"Tél. 01 23 45 67 89 - Mobile 07 11 22 33 44\n" +
		"dupont@conseil.fr\n"

	want := invoice.Client{
		Name:    invoice.Ptr("Dupont Conseil"),
		Email:   invoice.Ptr("dupont@conseil.fr"),
		Address: invoice.Ptr("12 bis rue des Lilas, 75011 Paris"),
		Phone:   invoice.Ptr("0711223344"),
	}
	if diff := cmp.Diff(want, Client(text)); diff != "" {
		t.Errorf("Client() mismatch (-want +got):\n%s", diff)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Tél : 06 12 34 56 78", "0612345678", true},
		{"+33 6 12 34 56 78", "+33612345678", true},
		{"+33 (0)1 23 45 67 89", "+330123456789", true},
		{"01.23.45.67.89", "0123456789", true},
		{"0123456789", "0123456789", true},
		{"Fixe 01 23 45 67 89 / Mobile 07 11 22 33 44", "0711223344", true},
		{"SIRET 123 456 789 00012", "", false},
		{"pas de numéro", "", false},
	}
	for _, tt := range tests {
		got, ok := Phone(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Phone(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClientName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"client label", "Client : ACME Formation SARL\nDate : 01/01/2024", "ACME Formation SARL", true},
		{"attention", "À l'attention de Jean-Marc Dupont", "Jean-Marc Dupont", true},
		{"value on next line", "Destinataire :\nSociété Martin", "Société Martin", true},
		{"column gap ends name", "Client : Globex  Date : 01/01/2024", "Globex", true},
		{"code skipped", "Code client: C-001\nClient : Dupont", "Dupont", true},
		{"client before company", "Société : Alpha SA\nClient : Beta SARL", "Beta SARL", true},
		{"company", "Company: Globex Corporation", "Globex Corporation", true},
		{"lower case ignored", "client : monsieur", "", false},
		{"none", "Bonjour madame", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClientName(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ClientName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"label", "Adresse : 5 avenue Foch, 69006 Lyon\n", "5 avenue Foch, 69006 Lyon", true},
		{"english label", "Address: 1 Main Street, Springfield", "1 Main Street, Springfield", true},
		{"street and town", "Dupont\n12 bis rue des Lilas\n75011 Paris\nFrance", "12 bis rue des Lilas, 75011 Paris", true},
		{"street only", "3 impasse Verte\nTél 0102030405", "3 impasse Verte", true},
		{"allée", "8 Allée des Pins", "8 Allée des Pins", true},
		{"none", "Paris", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Address(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Address(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
