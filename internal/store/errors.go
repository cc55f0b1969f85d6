package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a rejected create or update: nil input,
	// missing id, missing or unrepresentable fields, or an update that targets
	// an id the file does not contain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a read for an id the file does not contain.
	ErrNotFound = errors.New("subscription not found")

	// ErrMalformed reports backing file content that cannot be decoded.
	ErrMalformed = errors.New("malformed subscription file")

	// ErrDuplicateID reports a generated id that is already in use.
	ErrDuplicateID = errors.New("duplicate subscription id")
)

// ParseErrorCode categorizes decode failures.
type ParseErrorCode string

const (
	// ErrCodeFieldCount indicates a line without exactly four fields.
	ErrCodeFieldCount ParseErrorCode = "field_count"

	// ErrCodeEmptyField indicates an empty id, customer id, or asin.
	ErrCodeEmptyField ParseErrorCode = "empty_field"

	// ErrCodeFrequency indicates a frequency that is not a base-10 integer.
	ErrCodeFrequency ParseErrorCode = "frequency"

	// ErrCodeDuplicateID indicates two lines sharing an id.
	ErrCodeDuplicateID ParseErrorCode = "duplicate_id"
)

// ParseError describes the first malformed line found while decoding.
type ParseError struct {
	Line    int // 1-based line number in the file
	Code    ParseErrorCode
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
}

// Is reports ParseError as ErrMalformed so callers can test with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// unknownIDError is returned by update for an id the file does not contain.
// It matches both ErrInvalidArgument and ErrNotFound.
type unknownIDError struct {
	id string
}

func (e *unknownIDError) Error() string {
	return fmt.Sprintf("%s: no subscription with id %q", ErrInvalidArgument, e.id)
}

func (e *unknownIDError) Is(target error) bool {
	return target == ErrInvalidArgument || target == ErrNotFound
}
