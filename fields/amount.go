package fields

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches a money amount in French or English notation:
// grouped thousands ("1 234,56", "1.234,56", "1,234.56") or plain digits
// with an optional decimal part ("1234,5").
const amountPattern = `\d{1,3}(?:[ .,\x{00A0}\x{202F}]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?`

var reAmount = regexp.MustCompile(`^(?:` + amountPattern + `)$`)

// ParseAmount normalises a locale-formatted amount. When both separators
// appear the last one is the decimal mark; a lone separator followed by
// exactly three digits is a thousands separator.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if !reAmount.MatchString(s) {
		return 0, false
	}

	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = normalizeSingleSeparator(s, ",")
	case lastDot >= 0:
		s = normalizeSingleSeparator(s, ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	if neg {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f, true
}

func normalizeSingleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	i := strings.Index(s, sep)
	if len(s)-i-1 == 3 {
		return strings.Replace(s, sep, "", 1)
	}
	return strings.Replace(s, sep, ".", 1)
}

// ParseNumber reads a spreadsheet cell as a number. Raw cells are plain
// decimals; formatted ones fall back to ParseAmount. A trailing percent
// sign is dropped.
func ParseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell), "%"))
	if cell == "" {
		return 0, false
	}
	if d, err := decimal.NewFromString(cell); err == nil {
		f, _ := d.Float64()
		return f, true
	}
	return ParseAmount(cell)
}
