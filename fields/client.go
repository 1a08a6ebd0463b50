package fields

import (
	"regexp"
	"strings"

	"github.com/brunobiangulo/docextract/invoice"
)

// capitalizedRun is a run of capitalised words separated by single blanks,
// such as "ACME Formation SARL" or "Jean-Marc D'Arcy". The first word has
// at least two letters; a column gap (two blanks or more) ends the run.
const capitalizedRun = `(\p{Lu}[\p{L}'’.&\-]*\p{L}(?:[ \t][\p{Lu}\d][\p{L}\d'’.&\-]*)*)`

// labelGap separates a label from its value, which may sit on the next line.
const labelGap = `[ \t]*\n?[ \t]*`

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Mobile numbers are tried before landlines, international prefix first.
	rePhones = []*regexp.Regexp{
		regexp.MustCompile(`\+33[ .]?\(?0?\)?[ .]?[67](?:[ .\-]?\d{2}){4}`),
		regexp.MustCompile(`\b0[67](?:[ .\-]?\d{2}){4}\b`),
		regexp.MustCompile(`\+33[ .]?\(?0?\)?[ .]?[1-589](?:[ .\-]?\d{2}){4}`),
		regexp.MustCompile(`\b0[1-589](?:[ .\-]?\d{2}){4}\b`),
	}

	reNames = []*regexp.Regexp{
		regexp.MustCompile(`(?i:\bclient)[ \t]*:` + labelGap + capitalizedRun),
		regexp.MustCompile(`(?i:[àa][ \t]+l['’][ \t]*attention[ \t]+de|destinataire|b[ée]n[ée]ficiaire)[ \t]*:?` + labelGap + capitalizedRun),
		regexp.MustCompile(`(?i:soci[ée]t[ée]|company|entreprise)[ \t]*:` + labelGap + capitalizedRun),
	}

	reAddressLabel = regexp.MustCompile(`(?i:adresse|address)[ \t]*:[ \t]*([^\n]*\S)`)
	reStreet       = regexp.MustCompile(`(?i)\b\d{1,4}(?:[ \t]*(?:bis|ter))?,?[ \t]+(?:rue|avenue|boulevard|route|impasse|all[ée]e)[ \t][^\n]*\S`)
	rePostalLine   = regexp.MustCompile(`^[ \t]*(\d{5}[ \t]+\p{L}[^\n]*\S)`)
)

var phoneSeparators = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")

// Client extracts the customer contact block. The four sub-fields are
// searched independently; a miss on one never discards the others.
func Client(text string) invoice.Client {
	var c invoice.Client
	if v, ok := Email(text); ok {
		c.Email = invoice.Ptr(v)
	}
	if v, ok := Phone(text); ok {
		c.Phone = invoice.Ptr(v)
	}
	if v, ok := ClientName(text); ok {
		c.Name = invoice.Ptr(v)
	}
	if v, ok := Address(text); ok {
		c.Address = invoice.Ptr(v)
	}
	return c
}

// Email returns the first e-mail address in text.
func Email(text string) (string, bool) {
	m := reEmail.FindString(text)
	return m, m != ""
}

// Phone returns the first French phone number, separators stripped.
func Phone(text string) (string, bool) {
	for _, re := range rePhones {
		if m := re.FindString(text); m != "" {
			return phoneSeparators.Replace(m), true
		}
	}
	return "", false
}

// ClientName tries "client:", then addressee labels, then company labels.
func ClientName(text string) (string, bool) {
	for _, re := range reNames {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// Address tries an "adresse:" label, then a numbered street line. A street
// line followed by a postal-code line gets the town appended.
func Address(text string) (string, bool) {
	if m := reAddressLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	loc := reStreet.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	addr := strings.TrimSpace(text[loc[0]:loc[1]])
	rest := text[loc[1]:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		next := rest[nl+1:]
		if end := strings.IndexByte(next, '\n'); end >= 0 {
			next = next[:end]
		}
		if m := rePostalLine.FindStringSubmatch(next); m != nil {
			addr += ", " + strings.TrimSpace(m[1])
		}
	}
	return addr, true
}
