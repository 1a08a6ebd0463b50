package fields

import (
	"fmt"
	"testing"
)

func TestFirstDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"iso unchanged", "Émis le 2024-03-15.", "2024-03-15", true},
		{"iso with slashes", "Date: 2024/3/5", "2024-03-05", true},
		{"day month year", "Date : 15/03/2024", "2024-03-15", true},
		{"dashes", "le 02-05-2024", "2024-05-02", true},
		{"zero padding", "le 5/3/2024", "2024-03-05", true},
		{"two digit year", "Date 15/03/24", "2024-03-15", true},
		{"first wins", "du 01/02/2024 au 28/02/2024", "2024-02-01", true},
		{"invalid day skipped", "32/01/2024 puis 10/02/2024", "2024-02-10", true},
		{"invalid month skipped", "13/13/2024 puis 2024-12-01", "2024-12-01", true},
		{"three digit year", "01/02/202", "", false},
		{"digit before", "ref 123/04/2024", "", false},
		{"digit after", "01/02/20245", "", false},
		{"no date", "Facture FA-2024-001", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstDate(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FirstDate(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFirstDateISOPassThrough(t *testing.T) {
	for _, iso := range []string{"2023-01-01", "2024-02-29", "1999-12-31", "2030-07-14"} {
		for _, wrap := range []string{"%s", "Date: %s\n", "(%s)", "le %s, à Paris"} {
			input := fmt.Sprintf(wrap, iso)
			if got, ok := FirstDate(input); !ok || got != iso {
				t.Errorf("FirstDate(%q) = %q, %v; want %q", input, got, ok, iso)
			}
		}
	}
}

func TestDates(t *testing.T) {
	got := Dates("Date : 01/03/2024\nÉchéance : 31/03/2024\nLivraison 2024-04-02")
	want := []string{"2024-03-01", "2024-03-31", "2024-04-02"}
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"french label", "Date : 01/03/2024\nDate d'échéance : 31/03/2024", "2024-03-31", true},
		{"capitalised", "Date : 01/03/2024\nÉCHÉANCE 15/04/2024", "2024-04-15", true},
		{"next line", "Échéance :\n30/04/2024", "2024-04-30", true},
		{"payable avant", "Payable avant le 30/04/2024", "2024-04-30", true},
		{"quote validity", "Devis valable jusqu'au 01/06/2024", "2024-06-01", true},
		{"english", "Invoice date: 2024-01-31\nDue date: 2024-02-29", "2024-02-29", true},
		{"no label", "Date : 01/03/2024", "", false},
		{"validity as a delay", "Validité de l'offre : 30 jours\nDate : 15/03/2024", "", false},
		{"payment delay", "Échéance : 30 jours fin de mois\nDate : 01/03/2024", "", false},
		{"delay then date on the label line", "Validité : 30 jours, soit le 14/04/2024\nDate : 15/03/2024", "2024-04-14", true},
		{"too far from label", "Échéance :\nvoir conditions\nsignature\n15/04/2024", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DueDate(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DueDate(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCellDate(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"45366", "2024-03-15", true},
		{"45366.5", "2024-03-15", true},
		{"15/03/2024", "2024-03-15", true},
		{" 2024-03-15 ", "2024-03-15", true},
		{"0", "", false},
		{"-3", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CellDate(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CellDate(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
