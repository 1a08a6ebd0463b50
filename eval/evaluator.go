// Package eval measures field-level extraction accuracy over datasets of
// documents with known expected values.
package eval

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/brunobiangulo/docextract"
	"github.com/brunobiangulo/docextract/invoice"
	"github.com/brunobiangulo/docextract/parser"
)

// ExtractFunc turns an extractor output into a record.
type ExtractFunc func(raw *parser.RawDocument, isQuote bool) *invoice.ExtractedInvoiceData

// Evaluator runs datasets through the field parsers.
type Evaluator struct {
	extract ExtractFunc
	logger  *slog.Logger
}

// NewEvaluator creates an evaluator over docextract.FromRawDocument.
func NewEvaluator() *Evaluator {
	return &Evaluator{extract: docextract.FromRawDocument, logger: slog.Default()}
}

// SetExtractFunc replaces the extraction under test.
func (e *Evaluator) SetExtractFunc(fn ExtractFunc) {
	e.extract = fn
}

// SetLogger sets the logger used for per-case progress.
func (e *Evaluator) SetLogger(l *slog.Logger) {
	e.logger = l
}

// Report holds the results of an evaluation run.
type Report struct {
	Dataset       string             `json:"dataset"`
	TotalTests    int                `json:"total_tests"`
	Passed        int                `json:"passed"`
	Failed        int                `json:"failed"`
	Accuracy      float64            `json:"accuracy"`       // correct checks / all checks
	FieldAccuracy map[string]float64 `json:"field_accuracy"` // per field
	Results       []TestResult       `json:"results"`
	RunTime       time.Duration      `json:"run_time"`
}

// TestResult is the outcome of one case. A case passes when every checked
// field is correct.
type TestResult struct {
	Name     string       `json:"name"`
	Category string       `json:"category,omitempty"`
	Passed   bool         `json:"passed"`
	Checks   []FieldCheck `json:"checks"`
}

// Run evaluates every case of the dataset.
func (e *Evaluator) Run(dataset Dataset) *Report {
	start := time.Now()
	report := &Report{
		Dataset:       dataset.Name,
		TotalTests:    len(dataset.Cases),
		FieldAccuracy: make(map[string]float64),
	}

	fieldOK := make(map[string]int)
	fieldTotal := make(map[string]int)
	okChecks, allChecks := 0, 0

	for i, tc := range dataset.Cases {
		got := e.extract(tc.RawDocument(), tc.IsQuote)
		result := TestResult{
			Name:     tc.Name,
			Category: tc.Category,
			Passed:   true,
			Checks:   compareFields(tc.Expected, got),
		}
		for _, c := range result.Checks {
			allChecks++
			fieldTotal[c.Field]++
			if c.OK {
				okChecks++
				fieldOK[c.Field]++
			} else {
				result.Passed = false
			}
		}
		report.Results = append(report.Results, result)

		status := "PASS"
		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
			status = "FAIL"
		}
		e.logger.Info("eval: case complete",
			"progress", fmt.Sprintf("%d/%d", i+1, len(dataset.Cases)),
			"status", status,
			"case", tc.Name)
	}

	report.Accuracy = ratio(okChecks, allChecks)
	for f, n := range fieldTotal {
		report.FieldAccuracy[f] = ratio(fieldOK[f], n)
	}
	report.RunTime = time.Since(start)
	return report
}

// FormatReport renders a report as text.
func FormatReport(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Evaluation Report: %s ===\n", r.Dataset)
	fmt.Fprintf(&b, "Total: %d | Passed: %d (%.1f%%) | Failed: %d\n",
		r.TotalTests, r.Passed, passRate(r.Passed, r.TotalTests), r.Failed)
	fmt.Fprintf(&b, "Run time: %s\n\n", r.RunTime.Round(time.Microsecond))

	fmt.Fprintf(&b, "Field accuracy: %.2f\n", r.Accuracy)
	// Sorted for deterministic output
	fieldNames := make([]string, 0, len(r.FieldAccuracy))
	for f := range r.FieldAccuracy {
		fieldNames = append(fieldNames, f)
	}
	sort.Strings(fieldNames)
	for _, f := range fieldNames {
		fmt.Fprintf(&b, "  %-20s %.2f\n", f, r.FieldAccuracy[f])
	}
	fmt.Fprintln(&b)

	for i, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "[%s] %d. %s\n", status, i+1, res.Name)
		for _, c := range res.Checks {
			if !c.OK {
				fmt.Fprintf(&b, "  %s: expected %q, got %q\n", c.Field, c.Expected, truncate(c.Got, 60))
			}
		}
	}
	return b.String()
}

func passRate(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
