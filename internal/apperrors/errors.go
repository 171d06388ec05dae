package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an unexpected failure inside the service.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a monetary value that cannot be represented in minor units.
var ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

// ErrInvalidQuantity indicates a line quantity that is not a positive integer.
var ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)

// ErrInvalidPrice indicates a negative unit price.
var ErrInvalidPrice = fmt.Errorf("%w: invalid price", ErrValidation)

// ErrInvalidInput indicates malformed document input (negative payroll fields, empty account labels, ...).
var ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrValidation)

// ErrEmptyDocument indicates a document draft without any line or movement.
var ErrEmptyDocument = fmt.Errorf("%w: document requires at least one line", ErrValidation)

// ErrUnbalanced indicates that total debit and total credit differ by more than the tolerance.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrSubmissionFailed indicates that the backend rejected or never received a submission.
var ErrSubmissionFailed = errors.New("submission failed")

// ErrBackendUnavailable indicates that a read from the backend failed.
var ErrBackendUnavailable = errors.New("backend request failed")

// AppError is an error with an associated status code, used by the storage layers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UnbalancedError reports the discrepancy of a journal entry that failed the balance check.
// Discrepancy is |total debit - total credit| formatted with two fractional digits.
type UnbalancedError struct {
	TotalDebit  string
	TotalCredit string
	Discrepancy string
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s (difference %s)",
		ErrUnbalanced.Error(), e.TotalDebit, e.TotalCredit, e.Discrepancy)
}

func (e *UnbalancedError) Is(target error) bool {
	return target == ErrUnbalanced
}

// SubmissionError wraps the backend's failure message verbatim.
type SubmissionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	return ErrSubmissionFailed.Error() + ": " + e.Message
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// BackendError carries a failed backend reply that is not tied to a submission.
type BackendError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *BackendError) Error() string {
	return ErrBackendUnavailable.Error() + ": " + e.Message
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
