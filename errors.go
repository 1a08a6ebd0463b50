package docextract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when neither the MIME type nor the
	// file extension names a PDF or a spreadsheet.
	ErrUnsupportedFormat = errors.New("docextract: unsupported document format")

	// ErrExtractionFailed is returned when the PDF or spreadsheet extractor
	// cannot read the file.
	ErrExtractionFailed = errors.New("docextract: extraction failed")

	// ErrFileTooLarge is returned when the input exceeds Config.MaxFileSize.
	ErrFileTooLarge = errors.New("docextract: file too large")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("docextract: invalid configuration")
)

// UnsupportedFormatError reports the MIME type and extension that could
// not be routed to an extractor.
type UnsupportedFormatError struct {
	MIMEType  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: mime type %q, extension %q", ErrUnsupportedFormat, e.MIMEType, e.Extension)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// ExtractionError wraps the cause of an extractor failure.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrExtractionFailed, e.Format, e.Err)
}

func (e *ExtractionError) Is(target error) bool { return target == ErrExtractionFailed }

func (e *ExtractionError) Unwrap() error { return e.Err }
