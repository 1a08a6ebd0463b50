package fields

import "regexp"

// amountCapture captures an amount after an optional currency sign.
const amountCapture = `[ \t]*:?[ \t]*(?:€|EUR)?[ \t]*(` + amountPattern + `)`

var (
	reTotalHT = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total|montant)[ \t]*(?:h\.?t\.?|hors[ \t]+taxes?)` + amountCapture),
		regexp.MustCompile(`(?i)\b(?:sous[ \-]?total|subtotal|sub-total)\b` + amountCapture),
	}
	reTotalTVA = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total[ \t]+|montant[ \t]+)?\b(?:tva|t\.v\.a\.?|vat)(?:[ \t]*\(?[ \t]*\d{1,2}(?:[.,]\d{1,2})?[ \t]*%[ \t]*\)?)?` + amountCapture),
	}
	reTotalTTC = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total|montant)[ \t]*(?:t\.?t\.?c\.?|toutes[ \t]+taxes[ \t]+comprises)` + amountCapture),
		regexp.MustCompile(`(?i)\bnet[ \t]+[àa][ \t]+payer\b` + amountCapture),
		regexp.MustCompile(`(?i)\b(?:amount[ \t]+due|total[ \t]+due|grand[ \t]+total)\b` + amountCapture),
	}
)

// Totals returns the totals printed in text. Each one is nil when no
// labelled amount was found.
func Totals(text string) (ht, tva, ttc *float64) {
	return labelledAmount(reTotalHT, text), labelledAmount(reTotalTVA, text), labelledAmount(reTotalTTC, text)
}

func labelledAmount(patterns []*regexp.Regexp, text string) *float64 {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := ParseAmount(m[1]); ok {
				return &v
			}
		}
	}
	return nil
}
