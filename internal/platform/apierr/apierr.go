// Package apierr is the error taxonomy shared by services and handlers.
// Services return *Error values so callers can branch on Kind without
// parsing message strings.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	// KindValidation marks bad input shape or value.
	KindValidation Kind = "validation"
	// KindConflict marks a uniqueness violation.
	KindConflict Kind = "conflict"
	// KindNotFound marks a referenced id that does not exist.
	KindNotFound Kind = "not_found"
	// KindPersistence marks an unexpected store failure.
	KindPersistence Kind = "persistence"
)

type Error struct {
	Kind    Kind
	Code    string
	Reasons []string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Reasons) > 0 {
		return strings.Join(e.Reasons, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(code string, reasons ...string) *Error {
	return &Error{Kind: KindValidation, Code: code, Reasons: reasons}
}

func Conflict(code string, err error) *Error {
	return &Error{Kind: KindConflict, Code: code, Err: err}
}

func NotFound(code string, err error) *Error {
	return &Error{Kind: KindNotFound, Code: code, Err: err}
}

func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Code: "persistence_failure", Err: err}
}

// KindOf reports the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
