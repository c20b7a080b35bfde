package scraper

import "fmt"

// NetworkErrorKind classifies fetch failures.
type NetworkErrorKind string

const (
	Connection NetworkErrorKind = "connection"
	Timeout    NetworkErrorKind = "timeout"
	BadStatus  NetworkErrorKind = "bad_status"
)

// NetworkError is returned when the page could not be retrieved.
// StatusCode and Status are set only for BadStatus.
type NetworkError struct {
	Kind       NetworkErrorKind
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Kind == BadStatus:
		return fmt.Sprintf("network: GET %s: %s", e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("network: GET %s: %s: %v", e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("network: GET %s: %s", e.URL, e.Kind)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ExtractionErrorKind classifies extraction failures.
type ExtractionErrorKind string

const (
	EmptyDocument ExtractionErrorKind = "empty_document"
	NoTableFound  ExtractionErrorKind = "no_table_found"
	NoItemsFound  ExtractionErrorKind = "no_items_found"
	MissingField  ExtractionErrorKind = "missing_field"
)

// ExtractionError is returned when the HTML cannot be turned into records.
// Item is the zero-based item position for MissingField, else -1.
type ExtractionError struct {
	Kind   ExtractionErrorKind
	Detail string
	Item   int
	Err    error
}

func (e *ExtractionError) Error() string {
	msg := "extract: " + string(e.Kind)
	if e.Kind == MissingField {
		msg += fmt.Sprintf(" (item %d)", e.Item)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func extractionErr(kind ExtractionErrorKind, detail string) *ExtractionError {
	return &ExtractionError{Kind: kind, Detail: detail, Item: -1}
}
