package core

import "fmt"

// WarningEmptyResult is set on the envelope when extraction succeeded
// but produced zero retained tables or sections. It is a valid terminal
// state, not an error.
const WarningEmptyResult = "extraction produced no tables"

// ParseError indicates the HTML could not be decomposed into a
// table/row/cell grid. Fatal for the request; no partial extraction is
// returned.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing HTML document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedSourceError indicates the source identifier is outside the
// supported set.
type UnsupportedSourceError struct {
	Source string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported source %q", e.Source)
}
