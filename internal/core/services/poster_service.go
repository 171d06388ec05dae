package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/events"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// posterService validates drafts, derives their implied journal entries and hands
// them to the backend gateway. It never retries and never mutates the request.
type posterService struct {
	BaseService
	gateway   portsrepo.DocumentGateway
	notifier  portssvc.Notifier
	taxRate   decimal.Decimal
	tolerance domain.Money
	rules     accounting.PostingRules
	now       func() time.Time
}

// PosterOption configures a poster service.
type PosterOption func(*posterService)

// WithTaxRate sets the VAT rate applied to invoices.
func WithTaxRate(rate decimal.Decimal) PosterOption {
	return func(s *posterService) { s.taxRate = rate }
}

// WithBalanceTolerance sets the largest accepted debit/credit difference.
func WithBalanceTolerance(tolerance domain.Money) PosterOption {
	return func(s *posterService) { s.tolerance = tolerance }
}

// WithPostingRules sets the accounts used for implied journal entries.
func WithPostingRules(rules accounting.PostingRules) PosterOption {
	return func(s *posterService) { s.rules = rules.WithDefaults() }
}

// WithNotifier sets who is told about accepted submissions.
func WithNotifier(n portssvc.Notifier) PosterOption {
	return func(s *posterService) { s.notifier = n }
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) PosterOption {
	return func(s *posterService) { s.now = now }
}

// NewPosterService creates a PosterSvcFacade on top of gateway.
func NewPosterService(gateway portsrepo.DocumentGateway, opts ...PosterOption) portssvc.PosterSvcFacade {
	s := &posterService{
		gateway:   gateway,
		taxRate:   accounting.DefaultTaxRate,
		tolerance: accounting.DefaultBalanceTolerance,
		rules:     accounting.DefaultPostingRules(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PosterSvcFacade = (*posterService)(nil)

func (s *posterService) audit(subject string) domain.AuditFields {
	return domain.AuditFields{CreatedAt: s.now(), CreatedBy: subject}
}

// requireBalanced returns an *apperrors.UnbalancedError when the entry's sides differ by more than the tolerance.
func (s *posterService) requireBalanced(totals domain.JournalTotals) error {
	diff, err := accounting.Discrepancy(totals)
	if err != nil {
		return err
	}
	if diff.LessThanOrEqual(s.tolerance) {
		return nil
	}
	return &apperrors.UnbalancedError{
		TotalDebit:  totals.TotalDebit.String(),
		TotalCredit: totals.TotalCredit.String(),
		Discrepancy: diff.String(),
	}
}

// submissionFailed turns any gateway error into an ErrSubmissionFailed carrying the backend's message.
func (s *posterService) submissionFailed(ctx context.Context, kind domain.DocumentKind, err error) error {
	s.LogError(ctx, err, "Backend rejected submission", slog.String("kind", string(kind)))
	var subErr *apperrors.SubmissionError
	if errors.As(err, &subErr) {
		return subErr
	}
	return &apperrors.SubmissionError{Message: err.Error(), Err: err}
}

func (s *posterService) accepted(ctx context.Context, sub domain.Submission, subject string) {
	s.LogInfo(ctx, "Document submitted",
		slog.String("kind", string(sub.Kind)),
		slog.String("id", sub.ID),
		slog.String("folio", sub.Folio))
	if s.notifier != nil {
		s.notifier.Publish(ctx, events.NewCountsChanged(sub, subject))
	}
}

func (s *posterService) SubmitJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, subject string) (*domain.JournalEntry, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	memo := strings.TrimSpace(req.Memo)
	if memo == "" {
		return nil, fmt.Errorf("%w: memo is required", apperrors.ErrInvalidInput)
	}
	if len(req.Movements) == 0 {
		return nil, fmt.Errorf("%w: journal entry has no movements", apperrors.ErrEmptyDocument)
	}
	status := req.Status
	if status == "" {
		status = domain.Posted
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, status)
	}

	movements := dto.ToMovements(req.Movements)
	for i, m := range movements {
		if err := accounting.ValidateMovement(m); err != nil {
			return nil, fmt.Errorf("movement %d: %w", i+1, err)
		}
	}
	totals, err := accounting.Aggregate(movements)
	if err != nil {
		return nil, err
	}
	if err := s.requireBalanced(totals); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		Date:        date,
		Memo:        memo,
		Status:      status,
		Movements:   movements,
		Totals:      totals,
		AuditFields: s.audit(subject),
	}
	sub, err := s.gateway.SubmitJournalEntry(ctx, entry)
	if err != nil {
		return nil, s.submissionFailed(ctx, domain.KindJournalEntry, err)
	}
	entry.ID = sub.ID
	entry.Folio = sub.Folio
	s.accepted(ctx, sub, subject)
	return &entry, nil
}

func (s *posterService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	entries, nextToken, err := s.gateway.ListJournalEntries(ctx, params.ToFilter())
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	resp := dto.ToListJournalEntriesResponse(entries, nextToken)
	return &resp, nil
}

func (s *posterService) ListJournalPeriods(ctx context.Context) ([]dto.JournalPeriodResponse, error) {
	periods, err := s.gateway.JournalPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal periods")
		return nil, err
	}
	return dto.ToJournalPeriodResponses(periods), nil
}

func (s *posterService) SubmitSaleInvoice(ctx context.Context, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error) {
	return s.submitInvoice(ctx, domain.SaleInvoice, req, subject)
}

func (s *posterService) SubmitPurchaseInvoice(ctx context.Context, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error) {
	return s.submitInvoice(ctx, domain.PurchaseInvoice, req, subject)
}

func (s *posterService) submitInvoice(ctx context.Context, kind domain.InvoiceKind, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if req.CounterpartyID <= 0 {
		return nil, fmt.Errorf("%w: counterparty is required", apperrors.ErrInvalidInput)
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice has no lines", apperrors.ErrEmptyDocument)
	}

	lines := dto.ToLineItems(req.Lines)
	totals, err := accounting.AggregateInvoice(lines, s.taxRate)
	if err != nil {
		return nil, err
	}

	var entry domain.JournalEntry
	if kind == domain.PurchaseInvoice {
		entry, err = accounting.PurchaseEntry(s.rules, date, req.CounterpartyID, totals)
	} else {
		entry, err = accounting.SaleEntry(s.rules, date, req.CounterpartyID, totals)
	}
	if err != nil {
		return nil, err
	}
	if err := s.requireBalanced(entry.Totals); err != nil {
		return nil, err
	}

	audit := s.audit(subject)
	entry.AuditFields = audit
	invoice := domain.Invoice{
		Kind:           kind,
		Date:           date,
		CounterpartyID: req.CounterpartyID,
		Status:         domain.InvoicePending,
		Lines:          lines,
		Totals:         totals,
		Entry:          entry,
		AuditFields:    audit,
	}
	sub, err := s.gateway.SubmitInvoice(ctx, invoice)
	if err != nil {
		return nil, s.submissionFailed(ctx, kind.DocumentKind(), err)
	}
	invoice.ID = sub.ID
	invoice.Folio = sub.Folio
	invoice.Entry.ID = sub.JournalID
	s.accepted(ctx, sub, subject)
	return &invoice, nil
}

func (s *posterService) SubmitPayrollReceipt(ctx context.Context, req dto.CreatePayrollReceiptRequest, subject string) (*domain.PayrollReceipt, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	periodStart, err := dto.ParseDate("periodStart", req.PeriodStart)
	if err != nil {
		return nil, err
	}
	periodEnd, err := dto.ParseDate("periodEnd", req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("%w: period ends before it starts", apperrors.ErrInvalidInput)
	}
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employee is required", apperrors.ErrInvalidInput)
	}

	totals, err := accounting.AggregatePayroll(req.BaseSalary, req.OvertimeHours, req.Bonus, req.Deductions)
	if err != nil {
		return nil, err
	}
	entry, err := accounting.PayrollEntry(s.rules, date, req.EmployeeID, totals, req.Deductions)
	if err != nil {
		return nil, err
	}
	if err := s.requireBalanced(entry.Totals); err != nil {
		return nil, err
	}

	audit := s.audit(subject)
	entry.AuditFields = audit
	receipt := domain.PayrollReceipt{
		Date:          date,
		EmployeeID:    req.EmployeeID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		BaseSalary:    req.BaseSalary,
		OvertimeHours: req.OvertimeHours,
		Bonus:         req.Bonus,
		Deductions:    req.Deductions,
		Totals:        totals,
		Entry:         entry,
		AuditFields:   audit,
	}
	sub, err := s.gateway.SubmitPayrollReceipt(ctx, receipt)
	if err != nil {
		return nil, s.submissionFailed(ctx, domain.KindPayrollReceipt, err)
	}
	receipt.ID = sub.ID
	receipt.Folio = sub.Folio
	receipt.Entry.ID = sub.JournalID
	s.accepted(ctx, sub, subject)
	return &receipt, nil
}

func (s *posterService) SubmitReceipt(ctx context.Context, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error) {
	return s.submitCashMovement(ctx, domain.CustomerReceipt, req, subject)
}

func (s *posterService) SubmitPayment(ctx context.Context, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error) {
	return s.submitCashMovement(ctx, domain.SupplierPayment, req, subject)
}

func (s *posterService) submitCashMovement(ctx context.Context, kind domain.CashMovementKind, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if req.CounterpartyID <= 0 {
		return nil, fmt.Errorf("%w: counterparty is required", apperrors.ErrInvalidInput)
	}
	if req.BankAccountID <= 0 {
		return nil, fmt.Errorf("%w: bank account is required", apperrors.ErrInvalidInput)
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount %s must be positive", apperrors.ErrInvalidAmount, req.Amount)
	}
	method := req.Method
	if method == "" {
		method = domain.MethodTransfer
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrInvalidInput, method)
	}

	var entry domain.JournalEntry
	if kind == domain.SupplierPayment {
		entry, err = accounting.PaymentEntry(s.rules, date, req.CounterpartyID, req.Amount)
	} else {
		entry, err = accounting.ReceiptEntry(s.rules, date, req.CounterpartyID, req.Amount)
	}
	if err != nil {
		return nil, err
	}
	if err := s.requireBalanced(entry.Totals); err != nil {
		return nil, err
	}

	audit := s.audit(subject)
	entry.AuditFields = audit
	movement := domain.CashMovement{
		Kind:           kind,
		Date:           date,
		CounterpartyID: req.CounterpartyID,
		InvoiceID:      req.InvoiceID,
		BankAccountID:  req.BankAccountID,
		Amount:         req.Amount,
		Concept:        strings.TrimSpace(req.Concept),
		Method:         method,
		Entry:          entry,
		AuditFields:    audit,
	}
	sub, err := s.gateway.SubmitCashMovement(ctx, movement)
	if err != nil {
		return nil, s.submissionFailed(ctx, kind.DocumentKind(), err)
	}
	movement.ID = sub.ID
	movement.Folio = sub.Folio
	movement.Entry.ID = sub.JournalID
	s.accepted(ctx, sub, subject)
	return &movement, nil
}

func (s *posterService) GetCounts(ctx context.Context) (domain.Counts, error) {
	counts, err := s.gateway.Counts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read document counts")
		return domain.Counts{}, err
	}
	return counts, nil
}
