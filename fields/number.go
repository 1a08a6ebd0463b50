package fields

import (
	"regexp"
	"strings"
)

// token is the shape of a document identifier: letters, digits, hyphens
// and slashes, holding at least one digit.
const token = `([A-Za-z0-9][A-Za-z0-9/\-]*)`

var (
	reInvoiceNumber = regexp.MustCompile(`(?i)\b(?:facture|invoice)\s*(?:n°|num(?:ber|éro|ero)\.?|n[o°º]\.?|n\s*:|#)?\s*:?\s*` + token)
	reQuoteNumber   = regexp.MustCompile(`(?i)\b(?:devis|quote|quotation)\s*(?:n°|num(?:ber|éro|ero)\.?|n[o°º]\.?|n\s*:|#)?\s*:?\s*` + token)
	reGenericNumber = regexp.MustCompile(`(?i)(?:n°|\bnum(?:ber|éro|ero)?\.?|\br[ée]f(?:[ée]rence)?\.?)\s*:?\s*` + token)
	reYearCode      = regexp.MustCompile(`\b([A-Z]{1,3}[-/]\d{4}[-/]\d{1,4}(?:[-/]\d{1,4})?)\b`)
	reShortCode     = regexp.MustCompile(`\b([A-Z]{1,3}[-/]\d{2,4})\b`)

	// reDateToken is a token that is a date and nothing else.
	reDateToken = regexp.MustCompile(`^(?:\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})$`)
)

// DocumentNumber finds the invoice or quote identifier. Keyword anchored
// patterns win over bare codes; isQuote only decides whether the "devis"
// vocabulary is tried before the "facture" one.
func DocumentNumber(text string, isQuote bool) (string, bool) {
	keyword := []*regexp.Regexp{reInvoiceNumber, reQuoteNumber}
	if isQuote {
		keyword = []*regexp.Regexp{reQuoteNumber, reInvoiceNumber}
	}
	for _, re := range append(keyword, reGenericNumber) {
		if n, ok := firstTokenWithDigit(re, text); ok {
			return n, true
		}
	}
	for _, re := range []*regexp.Regexp{reYearCode, reShortCode} {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// firstTokenWithDigit returns the first capture of re that contains a
// digit, so words like "Facture de prestation" do not yield "de". Dates are
// skipped: "Date de facture : 15/03/2024" is not a number.
func firstTokenWithDigit(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		n := strings.Trim(m[1], "-/")
		if strings.ContainsAny(n, "0123456789") && !reDateToken.MatchString(n) {
			return n, true
		}
	}
	return "", false
}
