// Package schema checks a serialised ExtractedInvoiceData against the JSON
// contract of the invoice pre-fill payload.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/brunobiangulo/docextract/invoice"
)

const isoDatePattern = `^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func isoDate() map[string]any {
	return map[string]any{"type": "string", "pattern": isoDatePattern}
}

func nonNegative() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}

// Payload returns the JSON Schema of the pre-fill payload.
func Payload() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"documentNumber": nonEmptyString(),
			"documentDate":   isoDate(),
			"dueDate":        isoDate(),
			"validUntil":     isoDate(),
			"client": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    nonEmptyString(),
					"email":   nonEmptyString(),
					"address": nonEmptyString(),
					"phone":   nonEmptyString(),
				},
				"additionalProperties": false,
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": nonEmptyString(),
						"quantity":    nonNegative(),
						"unitPrice":   nonNegative(),
						"taxRate":     nonNegative(),
						"total":       map[string]any{"type": "number"},
					},
					"additionalProperties": false,
				},
			},
			"totalHT":           map[string]any{"type": "number"},
			"totalTVA":          map[string]any{"type": "number"},
			"totalTTC":          map[string]any{"type": "number"},
			"paymentConditions": nonEmptyString(),
			"notes":             nonEmptyString(),
		},
		"required":             []string{"client", "items"},
		"additionalProperties": false,
	}
}

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	b, err := json.Marshal(Payload())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("payload.json")
})

// ValidateJSON validates raw JSON bytes against Payload.
func ValidateJSON(data []byte) error {
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}

// Validate serialises d and validates it against Payload.
func Validate(d *invoice.ExtractedInvoiceData) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return ValidateJSON(b)
}
