// Package parsererror defines the typed failures returned when a date string
// cannot be parsed, normalized or compared.
package parsererror

import (
	"errors"
	"fmt"
)

// Failure kinds. Every typed error below unwraps to exactly one of them so
// callers can branch with errors.Is.
var (
	ErrFormat   = errors.New("invalid date format")
	ErrRange    = errors.New("date out of range")
	ErrOrdering = errors.New("dates out of order")
)

// FormatError represents a date string that does not have the expected shape
type FormatError struct {
	Input     string
	Separator string
	Reason    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date format '%s' (separator '%s'): %s",
		e.Input, e.Separator, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// RangeError represents a well-formed date whose month or day does not exist
// in the Gregorian calendar.
type RangeError struct {
	Input string
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("date '%s' out of range: %s=%d not in %d-%d",
		e.Input, e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// OrderingError represents a pair of dates where the first one is not
// strictly before the second one.
type OrderingError struct {
	First  string
	Second string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("date '%s' is not before '%s'", e.First, e.Second)
}

func (e *OrderingError) Unwrap() error {
	return ErrOrdering
}

// ParseError represents an error during a conversion
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a batch source.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents an error where specific required data could not be extracted
// from a file, even if the file format itself might be valid.
type DataExtractionError struct {
	FilePath       string
	FieldName      string
	RawDataSnippet string // Optional: a snippet of the raw data where extraction failed
	Reason         string
	Msg            string
}

func (e *DataExtractionError) Error() string {
	if e.RawDataSnippet != "" {
		return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s. Reason: %s. Raw data snippet: '%s'",
			e.FilePath, e.FieldName, e.Msg, e.Reason, e.RawDataSnippet)
	}
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s. Reason: %s",
		e.FilePath, e.FieldName, e.Msg, e.Reason)
}
