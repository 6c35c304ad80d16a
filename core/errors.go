package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// AuthenticationError indicates a missing, malformed or otherwise invalid credential.
type AuthenticationError struct {
	msg string
}

func NewAuthenticationError(msg string) error {
	return &AuthenticationError{msg: msg}
}

func (err AuthenticationError) Error() string { return err.msg }

func IsAuthenticationError(err error) bool {
	_, ok := errors.Cause(err).(*AuthenticationError)
	return ok
}

// AuthorizationError indicates a valid identity with an insufficient role.
// It carries the denied role and the allowed set for observability.
type AuthorizationError struct {
	Role    string
	Allowed []string
}

func NewAuthorizationError(role string, allowed []string) error {
	return &AuthorizationError{Role: role, Allowed: allowed}
}

func (err AuthorizationError) Error() string {
	return fmt.Sprintf("role %q denied; allowed roles: %s", err.Role, strings.Join(err.Allowed, ", "))
}

func IsAuthorizationError(err error) bool {
	_, ok := errors.Cause(err).(*AuthorizationError)
	return ok
}

// NotFoundError indicates that a referenced entity is absent.
type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (err NotFoundError) Error() string { return err.Resource + " not found" }

func IsNotFoundError(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// UpstreamError indicates that an external collaborator call failed or returned no data.
type UpstreamError struct {
	Op  string
	Err error
}

func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func (err UpstreamError) Error() string {
	if err.Err == nil {
		return err.Op + " failed"
	}
	return err.Op + ": " + err.Err.Error()
}

func (err UpstreamError) Unwrap() error { return err.Err }

func IsUpstreamError(err error) bool {
	_, ok := errors.Cause(err).(*UpstreamError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
