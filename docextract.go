// Package docextract turns an uploaded invoice or quote, PDF or
// spreadsheet, into a best-effort structured record used to pre-fill an
// invoice creation form.
//
// Extraction is purely heuristic: the file's text or rows are read by a
// parser, independent field parsers look for the document number, dates,
// client contact block, line items and totals, and missing totals are
// computed from the items. A field parser finding nothing is not an error;
// the field is left nil.
package docextract

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brunobiangulo/docextract/fields"
	"github.com/brunobiangulo/docextract/invoice"
	"github.com/brunobiangulo/docextract/items"
	"github.com/brunobiangulo/docextract/parser"
	"github.com/brunobiangulo/docextract/totals"
)

// Extractor is the main entry point of the extraction pipeline.
type Extractor interface {
	// Extract reads an in-memory file. isQuote selects quote vocabulary
	// ("devis") over invoice vocabulary ("facture") for the document number
	// and fills ValidUntil instead of DueDate.
	Extract(ctx context.Context, file File, isQuote bool) (*invoice.ExtractedInvoiceData, error)

	// ExtractFile reads the file at path, guessing its MIME type from the
	// extension.
	ExtractFile(ctx context.Context, path string, isQuote bool) (*invoice.ExtractedInvoiceData, error)
}

// File is an uploaded document.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Option configures an Extractor.
type Option func(*extractor)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *extractor) { e.logger = l }
}

// WithParser replaces the parser used for a format ("pdf", "xlsx", "xls").
func WithParser(format string, p parser.Parser) Option {
	return func(e *extractor) { e.parsers.Register(format, p) }
}

// extractor is the concrete implementation of Extractor.
type extractor struct {
	cfg     Config
	parsers *parser.Registry
	logger  *slog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config, opts ...Option) (Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := parser.NewRegistry()
	reg.Register("pdf", &parser.PDFParser{MaxPages: cfg.MaxPages})

	e := &extractor{
		cfg:     cfg,
		parsers: reg,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// ExtractDocumentData runs a single extraction with DefaultConfig.
func ExtractDocumentData(ctx context.Context, file File, isQuote bool) (*invoice.ExtractedInvoiceData, error) {
	e, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return e.Extract(ctx, file, isQuote)
}

func (e *extractor) Extract(ctx context.Context, file File, isQuote bool) (*invoice.ExtractedInvoiceData, error) {
	start := time.Now()
	log := e.logger.With("call_id", uuid.NewString(), "file", file.Name)

	format, err := detectFormat(file)
	if err != nil {
		log.Info("rejected document", "mime_type", file.MIMEType, "error", err)
		return nil, err
	}
	log.Info("extracting document", "format", format, "bytes", len(file.Data), "quote", isQuote)

	if e.cfg.MaxFileSize > 0 && int64(len(file.Data)) > e.cfg.MaxFileSize {
		return nil, &ExtractionError{
			Format: format,
			Err:    fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(file.Data), e.cfg.MaxFileSize),
		}
	}

	p, err := e.parsers.Get(format)
	if err != nil {
		return nil, &ExtractionError{Format: format, Err: err}
	}
	raw, err := p.Parse(ctx, file.Data)
	if err != nil {
		return nil, &ExtractionError{Format: format, Err: err}
	}
	for _, w := range raw.Warnings {
		log.Warn("extractor warning", "format", format, "warning", w)
	}

	data := assemble(raw, isQuote, e.cfg.ParallelFields, log)

	log.Info("extraction complete",
		"format", format,
		"items", len(data.Items),
		"elapsed", time.Since(start),
	)
	return data, nil
}

func (e *extractor) ExtractFile(ctx context.Context, path string, isQuote bool) (*invoice.ExtractedInvoiceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.Extract(ctx, File{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(filepath.Ext(path)),
		Data:     data,
	}, isQuote)
}

// FromRawDocument runs the field parsers and the totals reconciler over an
// already extracted document. It never fails; fields that cannot be found
// stay nil.
func FromRawDocument(raw *parser.RawDocument, isQuote bool) *invoice.ExtractedInvoiceData {
	return assemble(raw, isQuote, false, slog.New(slog.DiscardHandler))
}

var spreadsheetMIMETypes = map[string]string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": "xlsx",
	"application/vnd.ms-excel":                                          "xls",
}

// detectFormat routes a file to the "pdf", "xlsx" or "xls" parser from its
// MIME type, falling back to its extension.
func detectFormat(file File) (string, error) {
	mt := strings.ToLower(strings.TrimSpace(file.MIMEType))
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}
	ext := strings.ToLower(filepath.Ext(file.Name))

	switch {
	case mt == "application/pdf" || ext == ".pdf":
		return "pdf", nil
	case spreadsheetMIMETypes[mt] != "":
		return spreadsheetMIMETypes[mt], nil
	case ext == ".xlsx" || ext == ".xls":
		return strings.TrimPrefix(ext, "."), nil
	}
	return "", &UnsupportedFormatError{MIMEType: file.MIMEType, Extension: ext}
}

// fieldTask fills one field family of the result. It reports whether
// anything was found. Tasks write disjoint fields, so they may run
// concurrently.
type fieldTask struct {
	name string
	run  func() bool
}

func assemble(raw *parser.RawDocument, isQuote, parallel bool, log *slog.Logger) *invoice.ExtractedInvoiceData {
	data := invoice.New()

	var tasks []fieldTask
	switch raw.Kind {
	case parser.KindPDFText:
		tasks = textTasks(raw.Text, isQuote, data)
	case parser.KindSpreadsheetRows:
		tasks = sheetTasks(raw, data)
	}

	if parallel {
		var g errgroup.Group
		for _, t := range tasks {
			g.Go(func() error {
				runTask(t, log)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, t := range tasks {
			runTask(t, log)
		}
	}

	totals.Reconcile(data)
	return data
}

func runTask(t fieldTask, log *slog.Logger) {
	if !t.run() {
		log.Debug("field not found", "field", t.name)
	}
}

func textTasks(text string, isQuote bool, d *invoice.ExtractedInvoiceData) []fieldTask {
	dueField, due := "dueDate", &d.DueDate
	if isQuote {
		dueField, due = "validUntil", &d.ValidUntil
	}
	return []fieldTask{
		{"documentNumber", func() bool { return setString(&d.DocumentNumber)(fields.DocumentNumber(text, isQuote)) }},
		{"documentDate", func() bool { return setString(&d.DocumentDate)(fields.FirstDate(text)) }},
		{dueField, func() bool { return setString(due)(fields.DueDate(text)) }},
		{"client", func() bool {
			d.Client = fields.Client(text)
			return !d.Client.IsEmpty()
		}},
		{"items", func() bool {
			found := items.FromText(text)
			if len(found) == 0 {
				return false
			}
			d.Items = found
			return true
		}},
		{"totals", func() bool {
			d.TotalHT, d.TotalTVA, d.TotalTTC = fields.Totals(text)
			return d.TotalHT != nil || d.TotalTVA != nil || d.TotalTTC != nil
		}},
		{"paymentConditions", func() bool { return setString(&d.PaymentConditions)(fields.PaymentConditions(text)) }},
		{"notes", func() bool { return setString(&d.Notes)(fields.Notes(text)) }},
	}
}

func sheetTasks(raw *parser.RawDocument, d *invoice.ExtractedInvoiceData) []fieldTask {
	sheet := items.NewSheet(raw.Headers, raw.Rows)
	return []fieldTask{
		{"items", func() bool {
			found := sheet.Items()
			if len(found) == 0 {
				return false
			}
			d.Items = found
			return true
		}},
		{"meta", func() bool {
			m := sheet.Meta()
			d.DocumentNumber = m.Number
			d.DocumentDate = m.Date
			d.Client = m.Client
			return m.Number != nil || m.Date != nil || !m.Client.IsEmpty()
		}},
	}
}

// setString returns a setter storing a parser's (value, ok) result in dst.
func setString(dst **string) func(string, bool) bool {
	return func(v string, ok bool) bool {
		if ok {
			*dst = &v
		}
		return ok
	}
}
