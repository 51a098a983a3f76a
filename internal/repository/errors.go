// Package repository maps clients and service orders to the embedded store.
// Every method takes a context, runs a single statement and is safe for
// concurrent use; the store handle serializes writers.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/oficina/validation"
)

var (
	// ErrNotFound is returned by update and remove operations when no row
	// matched the given id. Lookups return a nil record instead.
	ErrNotFound = errors.New("record not found")

	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("invalid input")
)

// ValidationError reports input rejected before reaching the store.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, f := range e.Violations.Fields() {
		parts = append(parts, f+"="+e.Violations[f])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// StorageError wraps a failure reported by the store, such as a constraint
// violation or a closed handle.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func invalid(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}

// likeEscaper makes a user query match literally inside a LIKE pattern
// declared with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func prefixPattern(q string) string {
	return likeEscaper.Replace(q) + "%"
}
