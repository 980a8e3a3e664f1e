package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmpty is returned when the source has a header but no rows.
	ErrEmpty = errors.New("dataset has no records")

	// ErrUnsupportedEngine is returned for an unknown Options.Engine value.
	ErrUnsupportedEngine = errors.New("unsupported dataset engine")
)

// RowError describes a value that could not be decoded into a LaunchRecord.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d, column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *RowError) Unwrap() error {
	return e.Err
}

func missingColumn(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
