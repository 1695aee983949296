// Package apperr defines the error taxonomy surfaced by the data layer.
//
// Low-level detail (driver errors, connection failures) never crosses this
// boundary: callers receive a small, stable set of category messages while
// the original cause is written to the operational log at the point of
// failure.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValidationError reports which mutation input fields failed coercion or
// constraint checks. The field map is safe to show to end users.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// NewValidation creates a ValidationError from a field→message map.
func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// DatabaseError is the generic, user-safe failure returned for any store
// error. Op names the failed operation category, e.g. "fetch invoices".
type DatabaseError struct {
	Op string
}

func (e *DatabaseError) Error() string {
	return "failed to " + e.Op
}

// NewDatabase creates a DatabaseError for the given operation category.
func NewDatabase(op string) *DatabaseError {
	return &DatabaseError{Op: op}
}

// TimeoutError reports that a guarded operation missed its deadline. The
// underlying operation is cancelled cooperatively but may still complete in
// the background with its result discarded, so a timed-out write has an
// ambiguous outcome.
type TimeoutError struct {
	Op    string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s; the operation may still complete in the background", e.Op, e.After)
}

// NewTimeout creates a TimeoutError for the given operation.
func NewTimeout(op string, after time.Duration) *TimeoutError {
	return &TimeoutError{Op: op, After: after}
}

// NotFoundError reports a request for a resource (or a page) past what the
// store holds.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFound creates a NotFoundError for the given resource.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsDatabase reports whether err is a DatabaseError.
func IsDatabase(err error) bool {
	var target *DatabaseError
	return errors.As(err, &target)
}

// IsTimeout reports whether err is a TimeoutError.
func IsTimeout(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
