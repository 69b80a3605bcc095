package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"record-importer/core/utils"
)

var (
	// ErrEmptySource is returned when an import fetches no records.
	ErrEmptySource = errors.New("remote source returned no records")

	// ErrInvalidID is returned for an identifier that is not a positive integer.
	ErrInvalidID = errors.New("id must be a positive integer")
)

// MissingFieldError reports a required key absent from a raw record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidFieldError reports a present key whose value has the wrong shape.
type InvalidFieldError struct {
	Field string
	Value any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %v", e.Field, e.Value)
}

// StoreWriteError reports a failed insert, update or delete for one key.
type StoreWriteError struct {
	Table string
	Key   int
	Err   error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write to %s failed for id %d: %v", e.Table, e.Key, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// StoreQueryError reports a failed read.
type StoreQueryError struct {
	Table string
	Err   error
}

func (e *StoreQueryError) Error() string {
	return fmt.Sprintf("query on %s failed: %v", e.Table, e.Err)
}

func (e *StoreQueryError) Unwrap() error { return e.Err }

// ParseID converts user input into an entity id.
func ParseID(s string) (int, error) {
	id, ok := utils.ToPositiveInt(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
