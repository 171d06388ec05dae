package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/events"
)

// JournalPosterSvc submits and lists manual journal entries.
type JournalPosterSvc interface {
	SubmitJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, subject string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
	ListJournalPeriods(ctx context.Context) ([]dto.JournalPeriodResponse, error)
}

// InvoicePosterSvc submits invoices along with their implied journal entries.
type InvoicePosterSvc interface {
	SubmitSaleInvoice(ctx context.Context, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error)
	SubmitPurchaseInvoice(ctx context.Context, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error)
}

// PayrollPosterSvc submits payroll receipts along with their implied journal entries.
type PayrollPosterSvc interface {
	SubmitPayrollReceipt(ctx context.Context, req dto.CreatePayrollReceiptRequest, subject string) (*domain.PayrollReceipt, error)
}

// CashPosterSvc submits customer receipts and supplier payments.
type CashPosterSvc interface {
	SubmitReceipt(ctx context.Context, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error)
	SubmitPayment(ctx context.Context, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error)
}

// CountsSvc reads the document counts shown as navigation badges.
type CountsSvc interface {
	GetCounts(ctx context.Context) (domain.Counts, error)
}

// PosterSvcFacade combines all submission interfaces.
type PosterSvcFacade interface {
	JournalPosterSvc
	InvoicePosterSvc
	PayrollPosterSvc
	CashPosterSvc
	CountsSvc
}

// Notifier is told about every accepted submission.
type Notifier interface {
	Publish(ctx context.Context, evt events.Event)
}

// EventSubscriber hands out event subscriptions, e.g. for server-sent events.
type EventSubscriber interface {
	Subscribe() (<-chan events.Event, func())
}
