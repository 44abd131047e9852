// internal/apperrors/errors.go
package apperrors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Metadata describes how a code surfaces at the HTTP boundary. MessageKey is
// the i18n key of the public message used when the error carries none.
type Metadata struct {
	HTTPStatus int
	MessageKey string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation:   {HTTPStatus: http.StatusBadRequest, MessageKey: "validation.invalid"},
	CodeUnauthorized: {HTTPStatus: http.StatusUnauthorized, MessageKey: "auth.required"},
	CodeForbidden:    {HTTPStatus: http.StatusForbidden, MessageKey: "auth.forbidden"},
	CodeNotFound:     {HTTPStatus: http.StatusNotFound, MessageKey: "error.not_found"},
	CodeConflict:     {HTTPStatus: http.StatusConflict, MessageKey: "error.conflict"},
	CodeInternal:     {HTTPStatus: http.StatusInternalServerError, MessageKey: "error.internal"},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Error is the error type returned by services. Message is meant for logs;
// callers render the translated message behind Key instead.
type Error struct {
	code    Code
	key     string
	message string
	cause   error
}

func New(code Code, key, message string) *Error {
	if key == "" {
		key = MetadataFor(code).MessageKey
	}
	return &Error{code: code, key: key, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	e := New(code, "", message)
	e.cause = err
	return e
}

func NotFound(key, message string) *Error {
	return New(CodeNotFound, key, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, "", message)
}

func Forbidden(key, message string) *Error {
	return New(CodeForbidden, key, message)
}

func Conflict(key, message string) *Error {
	return New(CodeConflict, key, message)
}

func Validation(err error, message string) *Error {
	return Wrap(CodeValidation, err, message)
}

// StoreError wraps a failure from the relational store. The cause is kept for
// server-side logging only.
func StoreError(err error, message string) *Error {
	return Wrap(CodeInternal, err, message)
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Key() string {
	if e == nil {
		return MetadataFor(CodeInternal).MessageKey
	}
	return e.key
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) HTTPStatus() int {
	return MetadataFor(e.Code()).HTTPStatus
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	if typed := As(err); typed != nil {
		return typed.Code() == code
	}
	return false
}
