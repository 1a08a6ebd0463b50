package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var reDate = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})|(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

// Dates returns every well-formed date in text, in order of appearance,
// as zero-padded YYYY-MM-DD. A group of four digits is the year; when it
// comes first the order is year-month-day, otherwise day-month-year.
// Two-digit years are read as 20YY.
func Dates(text string) []string {
	var out []string
	for _, loc := range reDate.FindAllStringSubmatchIndex(text, -1) {
		if digitAt(text, loc[0]-1) || digitAt(text, loc[1]) {
			continue
		}
		var y, m, d string
		if loc[2] >= 0 {
			y, m, d = text[loc[2]:loc[3]], text[loc[4]:loc[5]], text[loc[6]:loc[7]]
		} else {
			d, m, y = text[loc[8]:loc[9]], text[loc[10]:loc[11]], text[loc[12]:loc[13]]
		}
		if iso, ok := isoDate(y, m, d); ok {
			out = append(out, iso)
		}
	}
	return out
}

// FirstDate returns the first date found anywhere in text. Calling it on
// the full text for two different semantic slots yields the same date;
// callers that need a second date slice the text first (see DueDate).
func FirstDate(text string) (string, bool) {
	ds := Dates(text)
	if len(ds) == 0 {
		return "", false
	}
	return ds[0], true
}

func digitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func isoDate(y, m, d string) (string, bool) {
	switch len(y) {
	case 2:
		y = "20" + y
	case 4:
	default:
		return "", false
	}
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// reDueLabel matches the labels introducing the due date of an invoice or
// the validity limit of a quote.
var reDueLabel = regexp.MustCompile(`(?i)date\s+d['’]\s*[ée]ch[ée]ance|[ée]ch[ée]ance|due\s+date|payable\s+(?:avant|le)|[àa]\s+r[ée]gler\s+avant|valable\s+jusqu['’]\s*au|validit[ée]|valid\s+until`)

// reDuration matches a delay given instead of a date ("30 jours").
var reDuration = regexp.MustCompile(`(?i)\d+\s*(?:jours?|j|days?|semaines?|weeks?|mois|months?)\b`)

// dueWindowLines bounds how far after its label a due date may appear: the
// rest of the label's line and the line below it.
const dueWindowLines = 2

// DueDate returns the first date that follows a due-date or validity label.
// Without such a label it reports a miss instead of reusing the document
// date. A label whose own line gives a delay and no date is a miss too; the
// line below it is not searched.
func DueDate(text string) (string, bool) {
	loc := reDueLabel.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	line, _, _ := strings.Cut(rest, "\n")
	if iso, ok := FirstDate(line); ok {
		return iso, true
	}
	if reDuration.MatchString(line) {
		return "", false
	}

	window := strings.SplitN(rest, "\n", dueWindowLines+1)
	if len(window) > dueWindowLines {
		window = window[:dueWindowLines]
	}
	return FirstDate(strings.Join(window, "\n"))
}

// excelEpochMax is the last serial Excel can represent (9999-12-31).
const excelEpochMax = 2958465

// CellDate reads a spreadsheet cell as a date: a written date first, then
// an Excel serial number as stored by raw cell values.
func CellDate(cell string) (string, bool) {
	cell = strings.TrimSpace(cell)
	if iso, ok := FirstDate(cell); ok {
		return iso, true
	}
	serial, err := strconv.ParseFloat(cell, 64)
	if err != nil || serial < 1 || serial > excelEpochMax {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format(time.DateOnly), true
}
