package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	NotFound             ErrorCode = "NOT_FOUND"
	Forbidden            ErrorCode = "FORBIDDEN"
	InsufficientFunds    ErrorCode = "INSUFFICIENT_FUNDS"
	Conflict             ErrorCode = "CONFLICT"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error is returned by the service layer to callers. StatusCode is what an
// API layer in front of the service would surface to the user.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

func NewValidationError(err error) *Error {
	return NewError(http.StatusBadRequest, ValidationError, err)
}

func NewNotFoundError(msg string) *Error {
	return NewErrorWithMsg(http.StatusNotFound, NotFound, msg)
}

// ErrInsufficientFunds is returned when the sender cannot cover a gift.
// Nothing is written to the ledger when it is returned.
var ErrInsufficientFunds = NewErrorWithMsg(
	http.StatusPaymentRequired, InsufficientFunds, "insufficient spendable balance",
)

// HasErrorCode reports whether err (or anything it wraps) is a *Error with the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrorCode == code
	}
	return false
}
