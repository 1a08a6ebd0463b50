// Package invoice holds the value types produced by a document extraction.
//
// Every field is optional. A nil pointer means the field was not found in
// the source document; the zero value is never used as a "missing" marker.
package invoice

// ExtractedInvoiceData is the structured record built from one invoice or
// quote. It is created per extraction call and owned by the caller.
type ExtractedInvoiceData struct {
	DocumentNumber *string `json:"documentNumber,omitempty"`
	DocumentDate   *string `json:"documentDate,omitempty"` // YYYY-MM-DD
	DueDate        *string `json:"dueDate,omitempty"`      // invoices only, YYYY-MM-DD
	ValidUntil     *string `json:"validUntil,omitempty"`   // quotes only, YYYY-MM-DD

	Client Client     `json:"client"`
	Items  []LineItem `json:"items"`

	TotalHT  *float64 `json:"totalHT,omitempty"`
	TotalTVA *float64 `json:"totalTVA,omitempty"`
	TotalTTC *float64 `json:"totalTTC,omitempty"`

	PaymentConditions *string `json:"paymentConditions,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// Client is the customer contact block. Each sub-field is found
// independently of the others.
type Client struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// IsEmpty reports whether no client sub-field was found.
func (c Client) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.Address == nil && c.Phone == nil
}

// LineItem is one row of the items table, in document order.
type LineItem struct {
	Description *string  `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	TaxRate     *float64 `json:"taxRate,omitempty"` // percent, 20 means 20%
	Total       *float64 `json:"total,omitempty"`
}

// New returns an empty record with a non-nil Items slice so that it
// serialises as "items": [].
func New() *ExtractedInvoiceData {
	return &ExtractedInvoiceData{Items: []LineItem{}}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
