package fields

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"1 234,56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"1,234,567.89", 1234567.89, true},
		{"1\u00a0234,56", 1234.56, true},
		{"1\u202f234,56", 1234.56, true},
		{"1234,5", 1234.5, true},
		{"12,50", 12.5, true},
		{"1 234", 1234, true},
		{"1.234", 1234, true},
		{"€ 99,00", 99, true},
		{"99,00 €", 99, true},
		{"-15,00", -15, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12,3,4", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"0.2", 0.2, true},
		{"150", 150, true},
		{"20%", 20, true},
		{"5,5 %", 5.5, true},
		{"1 234,50", 1234.5, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
