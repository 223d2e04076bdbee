// Package errors provides a lightweight code-classified error type used
// throughout netkit, in the spirit of github.com/nabbar/golib/errors:
// a numeric CodeError similar to an HTTP status, an optional message, and
// an optional parent error chain.
package errors

import (
	"fmt"
	"strings"
)

// CodeError is a small numeric classification for an error, analogous to
// an HTTP status code. Values below 1000 are reserved for future core codes.
type CodeError uint16

const (
	UnknownError CodeError = 0

	// transport / connection
	ErrHeaderTooLarge CodeError = 1000
	ErrBodyTooLarge   CodeError = 1001
	ErrMalformedReq   CodeError = 1002
	ErrReadTimeout    CodeError = 1003
	ErrHandshake      CodeError = 1004
	ErrConnClosed     CodeError = 1005

	// router
	ErrRouteNotFound     CodeError = 1100
	ErrMethodNotAllowed  CodeError = 1101
	ErrArgumentCoercion  CodeError = 1102
	ErrDuplicateQueryArg CodeError = 1103
	ErrDuplicateRoute    CodeError = 1104

	// digest
	ErrDigestParse CodeError = 1200

	// context
	ErrAlreadyResponded CodeError = 1300

	// config
	ErrConfigValidate CodeError = 1400
)

var messages = map[CodeError]string{
	ErrHeaderTooLarge:    "request header exceeds configured limit",
	ErrBodyTooLarge:      "request body exceeds configured limit",
	ErrMalformedReq:      "malformed request",
	ErrReadTimeout:       "read timeout",
	ErrHandshake:         "tls handshake failed",
	ErrConnClosed:        "connection closed",
	ErrRouteNotFound:     "no route matches path",
	ErrMethodNotAllowed:  "method not allowed for path",
	ErrArgumentCoercion:  "argument coercion failed for all candidate routes",
	ErrDuplicateQueryArg: "duplicate query parameter name in route declaration",
	ErrDuplicateRoute:    "route already registered for method and path pattern",
	ErrDigestParse:       "digest header parse failed",
	ErrAlreadyResponded:  "context already produced a response",
	ErrConfigValidate:    "configuration validation failed",
}

// Message returns the registered human message for the code, or a generic
// fallback for unregistered codes.
func (c CodeError) Message() string {
	if c == UnknownError {
		return "unknown error"
	}
	if m, ok := messages[c]; ok {
		return m
	}
	return "unspecified error"
}

func (c CodeError) String() string {
	return fmt.Sprintf("%d", uint16(c))
}

// Error builds a new Error value for this code, chaining the given parents.
func (c CodeError) Error(parents ...error) Error {
	return &codeError{code: c, msg: c.Message(), parents: filterNil(parents)}
}

// Errorf builds a new Error value for this code with a formatted message.
func (c CodeError) Errorf(format string, args ...interface{}) Error {
	return &codeError{code: c, msg: fmt.Sprintf(format, args...)}
}

func filterNil(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Error is the package's error interface: a code, a message, and an
// optional parent chain for hierarchy/context, compatible with errors.Is
// via Unwrap of the first parent.
type Error interface {
	error
	Code() CodeError
	IsCode(c CodeError) bool
	AddParent(parents ...error) Error
	HasParent() bool
	Unwrap() error
}

type codeError struct {
	code    CodeError
	msg     string
	parents []error
}

func (e *codeError) Code() CodeError { return e.code }

func (e *codeError) IsCode(c CodeError) bool { return e.code == c }

func (e *codeError) HasParent() bool { return len(e.parents) > 0 }

func (e *codeError) AddParent(parents ...error) Error {
	e.parents = append(e.parents, filterNil(parents)...)
	return e
}

func (e *codeError) Unwrap() error {
	if len(e.parents) == 0 {
		return nil
	}
	return e.parents[0]
}

func (e *codeError) Error() string {
	if !e.HasParent() {
		return e.msg
	}

	parts := make([]string, 0, len(e.parents)+1)
	parts = append(parts, e.msg)
	for _, p := range e.parents {
		parts = append(parts, p.Error())
	}
	return strings.Join(parts, ": ")
}

// New wraps a plain error under UnknownError, or returns nil for a nil input.
func New(e error) Error {
	if e == nil {
		return nil
	}
	return UnknownError.Error(e)
}
