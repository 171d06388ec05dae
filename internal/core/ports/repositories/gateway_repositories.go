package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// DocumentWriter hands finished documents to the backend. Each call is a single
// attempt; the backend assigns ids and folios.
type DocumentWriter interface {
	// SubmitJournalEntry stores a manual journal entry.
	SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error)

	// SubmitInvoice stores a sales or purchase invoice together with its implied journal entry.
	SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error)

	// SubmitPayrollReceipt stores a payroll receipt together with its implied journal entry.
	SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error)

	// SubmitCashMovement stores a customer receipt or supplier payment together with its implied journal entry.
	SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error)
}

// DocumentReader reads the backend's authoritative state.
type DocumentReader interface {
	// Counts returns the number of stored documents per kind.
	Counts(ctx context.Context) (domain.Counts, error)

	// ListJournalEntries returns a page of journal entries, newest first, and a token for the next page.
	ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error)

	// JournalPeriods returns the months that have journal entries, newest first.
	JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error)
}

// DocumentGateway is the backend collaborator the poster talks to.
type DocumentGateway interface {
	DocumentWriter
	DocumentReader
}
