package fields

import (
	"regexp"
	"strings"
)

var (
	rePaymentConditions = regexp.MustCompile(`(?i)(?:conditions?[ \t]+de[ \t]+(?:paiement|r[èe]glement)|modalit[ée]s[ \t]+de[ \t]+(?:paiement|r[èe]glement)|payment[ \t]+terms)[ \t]*:?[ \t]*([^\n]*\S)`)
	reNotes             = regexp.MustCompile(`(?i)\b(?:notes?|remarques?|observations?|commentaires?)[ \t]*:[ \t]*([^\n]*\S)`)
)

// PaymentConditions returns the text of a labelled payment-terms line.
func PaymentConditions(text string) (string, bool) {
	return labelledLine(rePaymentConditions, text)
}

// Notes returns the text of a labelled notes or remarks line.
func Notes(text string) (string, bool) {
	return labelledLine(reNotes, text)
}

func labelledLine(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}
