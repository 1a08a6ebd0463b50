package eval

import (
	"fmt"
	"math"
	"slices"

	"github.com/brunobiangulo/docextract/invoice"
)

// Field names used in reports and in Expected.Absent.
const (
	FieldDocumentNumber    = "document_number"
	FieldDocumentDate      = "document_date"
	FieldDueDate           = "due_date"
	FieldValidUntil        = "valid_until"
	FieldClientName        = "client_name"
	FieldClientEmail       = "client_email"
	FieldClientAddress     = "client_address"
	FieldClientPhone       = "client_phone"
	FieldItems             = "items"
	FieldTotalHT           = "total_ht"
	FieldTotalTVA          = "total_tva"
	FieldTotalTTC          = "total_ttc"
	FieldPaymentConditions = "payment_conditions"
	FieldNotes             = "notes"
)

var allFields = []string{
	FieldDocumentNumber, FieldDocumentDate, FieldDueDate, FieldValidUntil,
	FieldClientName, FieldClientEmail, FieldClientAddress, FieldClientPhone,
	FieldItems, FieldTotalHT, FieldTotalTVA, FieldTotalTTC,
	FieldPaymentConditions, FieldNotes,
}

func knownField(f string) bool { return slices.Contains(allFields, f) }

// amountTolerance absorbs float noise on money values.
const amountTolerance = 0.005

// FieldCheck is the outcome of comparing one field.
type FieldCheck struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
	OK       bool   `json:"ok"`
}

// compareFields scores every field the case expects.
func compareFields(exp Expected, got *invoice.ExtractedInvoiceData) []FieldCheck {
	var checks []FieldCheck
	str := func(field string, want, have *string) {
		if want == nil {
			return
		}
		checks = append(checks, FieldCheck{
			Field: field, Expected: *want, Got: show(have),
			OK: have != nil && *have == *want,
		})
	}
	num := func(field string, want, have *float64) {
		if want == nil {
			return
		}
		checks = append(checks, FieldCheck{
			Field: field, Expected: fmt.Sprintf("%.2f", *want), Got: showNum(have),
			OK: have != nil && math.Abs(*have-*want) < amountTolerance,
		})
	}

	str(FieldDocumentNumber, exp.DocumentNumber, got.DocumentNumber)
	str(FieldDocumentDate, exp.DocumentDate, got.DocumentDate)
	str(FieldDueDate, exp.DueDate, got.DueDate)
	str(FieldValidUntil, exp.ValidUntil, got.ValidUntil)
	str(FieldClientName, exp.ClientName, got.Client.Name)
	str(FieldClientEmail, exp.ClientEmail, got.Client.Email)
	str(FieldClientAddress, exp.ClientAddress, got.Client.Address)
	str(FieldClientPhone, exp.ClientPhone, got.Client.Phone)
	if exp.Items != nil {
		checks = append(checks, FieldCheck{
			Field: FieldItems, Expected: fmt.Sprint(*exp.Items), Got: fmt.Sprint(len(got.Items)),
			OK: len(got.Items) == *exp.Items,
		})
	}
	num(FieldTotalHT, exp.TotalHT, got.TotalHT)
	num(FieldTotalTVA, exp.TotalTVA, got.TotalTVA)
	num(FieldTotalTTC, exp.TotalTTC, got.TotalTTC)
	str(FieldPaymentConditions, exp.PaymentConditions, got.PaymentConditions)
	str(FieldNotes, exp.Notes, got.Notes)

	for _, f := range exp.Absent {
		found := foundValue(f, got)
		checks = append(checks, FieldCheck{Field: f, Expected: "<absent>", Got: found, OK: found == "<absent>"})
	}
	return checks
}

// foundValue renders the extracted value of a field, "<absent>" when nil.
func foundValue(field string, d *invoice.ExtractedInvoiceData) string {
	switch field {
	case FieldDocumentNumber:
		return show(d.DocumentNumber)
	case FieldDocumentDate:
		return show(d.DocumentDate)
	case FieldDueDate:
		return show(d.DueDate)
	case FieldValidUntil:
		return show(d.ValidUntil)
	case FieldClientName:
		return show(d.Client.Name)
	case FieldClientEmail:
		return show(d.Client.Email)
	case FieldClientAddress:
		return show(d.Client.Address)
	case FieldClientPhone:
		return show(d.Client.Phone)
	case FieldItems:
		if len(d.Items) == 0 {
			return "<absent>"
		}
		return fmt.Sprint(len(d.Items))
	case FieldTotalHT:
		return showNum(d.TotalHT)
	case FieldTotalTVA:
		return showNum(d.TotalTVA)
	case FieldTotalTTC:
		return showNum(d.TotalTTC)
	case FieldPaymentConditions:
		return show(d.PaymentConditions)
	case FieldNotes:
		return show(d.Notes)
	}
	return "<absent>"
}

func show(s *string) string {
	if s == nil {
		return "<absent>"
	}
	return *s
}

func showNum(f *float64) string {
	if f == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%.2f", *f)
}

func ratio(ok, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(ok) / float64(total)
}
