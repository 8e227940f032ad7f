// Package errors provides the failure kinds shared by the adapters that talk
// to external systems (secret store, OAuth endpoint, catalog API).
package errors

import (
	"errors"
	"fmt"
)

// UpstreamError indicates an external dependency was unreachable or answered
// with an error. It is never retried.
type UpstreamError struct {
	Service   string // e.g. "vault", "spotify"
	Operation string // what was attempted
	Cause     error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream %s failed during %s: %v", e.Service, e.Operation, e.Cause)
	}
	return fmt.Sprintf("upstream %s failed during %s", e.Service, e.Operation)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(service, operation string, cause error) *UpstreamError {
	return &UpstreamError{
		Service:   service,
		Operation: operation,
		Cause:     cause,
	}
}

// IsUpstreamError returns true if the error chain contains an UpstreamError.
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// MalformedResponseError indicates an external dependency answered with a
// payload that does not have the expected shape.
type MalformedResponseError struct {
	Service string
	Detail  string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Service, e.Detail)
}

// NewMalformedResponseError creates a MalformedResponseError.
func NewMalformedResponseError(service, detail string) *MalformedResponseError {
	return &MalformedResponseError{
		Service: service,
		Detail:  detail,
	}
}

// IsMalformedResponseError returns true if the error chain contains a
// MalformedResponseError.
func IsMalformedResponseError(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}
