package record

import (
	"errors"
	"fmt"
)

var (
	// ErrNoName is for a header line without a protein name after '>'
	ErrNoName = errors.New("header has no name")

	// ErrNoRecord is for a domain row that comes before any header
	ErrNoRecord = errors.New("domain row before any header")

	// ErrSpan is for a domain whose left is past its right, or before 1
	ErrSpan = errors.New("invalid domain span")

	// ErrLength is for a protein length below 1
	ErrLength = errors.New("invalid protein length")
)

// FormatError is a malformed line in an annotation file. The record it
// belongs to, if any, is dropped from the Set.
type FormatError struct {
	// Line is the 1-based line number in the file
	Line int

	// Record is the ID of the record being read, empty if there was none
	Record string

	Err error
}

func (e *FormatError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Record, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
