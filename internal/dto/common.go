package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
)

// DateLayout is the calendar date format accepted and returned by the API.
const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date ("2025-03-14") or a full RFC 3339 timestamp.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, field)
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a date (expected YYYY-MM-DD)", apperrors.ErrInvalidInput, field, value)
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error       string `json:"error"`
	TotalDebit  string `json:"totalDebit,omitempty"`
	TotalCredit string `json:"totalCredit,omitempty"`
	Discrepancy string `json:"discrepancy,omitempty"`
}
