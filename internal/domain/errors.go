package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the dataset file does not exist. It is surfaced
// to the caller, never fatal: the dashboard keeps running with no table.
var ErrNotFound = errors.New("dataset file not found")

// ErrNoDataset reports that an operation needing a table was called before
// any table was loaded. Callers short-circuit to an empty result.
var ErrNoDataset = errors.New("no dataset loaded")

// ParseError reports malformed delimited content: an unterminated quote, a
// row with the wrong column count, a missing header row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse dataset: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse dataset: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
