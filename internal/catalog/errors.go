package catalog

import (
	"errors"
	"fmt"
)

// ErrBookNotFound is returned by DeleteBook when the book id does not exist.
var ErrBookNotFound = errors.New("book not found")

// ValidationError indicates a required form field was missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// FormatError indicates a date field did not parse as YYYY-MM-DD.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q for %s: expected YYYY-MM-DD", e.Value, e.Field)
}

// UniquenessError indicates a value that must be unique already exists,
// currently only duplicate ISBNs.
type UniquenessError struct {
	Field string
	Value string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}
