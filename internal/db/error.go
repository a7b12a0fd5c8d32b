package db

import "errors"

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// RoundOutOfOrderError is returned when a round is created with a number
// that is not greater than the latest persisted round of the challenge.
type RoundOutOfOrderError struct {
	ChallengeID   string
	RoundNumber   uint32
	LatestRoundNo uint32
	Message       string
}

func (e *RoundOutOfOrderError) Error() string {
	return e.Message
}

func IsRoundOutOfOrderError(err error) bool {
	var target *RoundOutOfOrderError
	return errors.As(err, &target)
}

// InsufficientBalanceError is returned when a debit would take a wallet
// balance below zero.
type InsufficientBalanceError struct {
	UserID  string
	Amount  int64
	Message string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Message
}

func IsInsufficientBalanceError(err error) bool {
	var target *InsufficientBalanceError
	return errors.As(err, &target)
}
