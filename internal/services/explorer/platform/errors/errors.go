// Package errors defines explorer typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed explorer application failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying cause.
func (e Error) Unwrap() error { return e.Err }

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap classifies err under kind. A nil err stays nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the outermost typed error, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
