package database

import "errors"

// Terminal error kinds surfaced to handlers. Each maps to a distinct HTTP
// status; none is retried.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation means the input is malformed (bad enum value, missing
	// field, role mismatch).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount means a payment amount was zero or negative.
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrExceedsBalance means a payment was larger than the outstanding
	// balance on the fee.
	ErrExceedsBalance = errors.New("payment exceeds outstanding balance")

	// ErrAlreadyEnrolled means the student is already on the class roster.
	ErrAlreadyEnrolled = errors.New("student is already in this class")

	// ErrNotEnrolled means the student is not on the class roster.
	ErrNotEnrolled = errors.New("student is not in this class")

	// ErrDuplicate means a unique field (username, email, admission number)
	// is already taken.
	ErrDuplicate = errors.New("record already exists")
)
