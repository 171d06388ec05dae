package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// CalculatorSvc previews the values derived from a draft without submitting anything.
type CalculatorSvc interface {
	// LineSubtotal returns quantity x unit price of a single row.
	LineSubtotal(ctx context.Context, req dto.LineItemRequest) (domain.Money, error)

	// PreviewInvoice recomputes subtotal, tax and total of an invoice draft.
	PreviewInvoice(ctx context.Context, req dto.InvoicePreviewRequest) (domain.InvoiceTotals, error)

	// PreviewPayroll computes gross and net pay of a payroll draft.
	PreviewPayroll(ctx context.Context, req dto.PayrollPreviewRequest) (domain.PayrollTotals, error)

	// CheckJournal aggregates a journal draft and reports whether it balances.
	CheckJournal(ctx context.Context, req dto.JournalCheckRequest) (dto.JournalCheckResponse, error)
}
