package normalize

import "fmt"

// ParseError is returned when a wire record cannot be turned into a typed value.
type ParseError struct {
	// Record is the kind of record being parsed, e.g. "order" or "asset".
	Record string
	Field  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error parsing %s: missing required field %s", e.Record, e.Field)
	}
	if e.Field == "" {
		return fmt.Sprintf("error parsing %s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("error parsing %s field %s: %v", e.Record, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missing(record, field string) error {
	return &ParseError{Record: record, Field: field}
}

func invalid(record, field string, err error) error {
	return &ParseError{Record: record, Field: field, Err: err}
}
