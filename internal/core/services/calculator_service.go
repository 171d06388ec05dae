package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// calculatorService computes draft previews. It holds no state besides its settings.
type calculatorService struct {
	BaseService
	taxRate   decimal.Decimal
	tolerance domain.Money
}

// NewCalculatorService creates a CalculatorSvc using the given VAT rate and balance tolerance.
func NewCalculatorService(taxRate decimal.Decimal, tolerance domain.Money) portssvc.CalculatorSvc {
	return &calculatorService{taxRate: taxRate, tolerance: tolerance}
}

var _ portssvc.CalculatorSvc = (*calculatorService)(nil)

func (s *calculatorService) LineSubtotal(ctx context.Context, req dto.LineItemRequest) (domain.Money, error) {
	return accounting.ComputeSubtotal(req.Quantity, req.UnitPrice)
}

func (s *calculatorService) PreviewInvoice(ctx context.Context, req dto.InvoicePreviewRequest) (domain.InvoiceTotals, error) {
	return accounting.AggregateInvoice(dto.ToLineItems(req.Lines), s.taxRate)
}

func (s *calculatorService) PreviewPayroll(ctx context.Context, req dto.PayrollPreviewRequest) (domain.PayrollTotals, error) {
	return accounting.AggregatePayroll(req.BaseSalary, req.OvertimeHours, req.Bonus, req.Deductions)
}

// CheckJournal reports the totals of a draft. An unbalanced draft is not an error here;
// malformed movements are.
func (s *calculatorService) CheckJournal(ctx context.Context, req dto.JournalCheckRequest) (dto.JournalCheckResponse, error) {
	movements := dto.ToMovements(req.Movements)
	for i, m := range movements {
		if err := accounting.ValidateMovement(m); err != nil {
			return dto.JournalCheckResponse{}, fmt.Errorf("movement %d: %w", i+1, err)
		}
	}
	totals, err := accounting.Aggregate(movements)
	if err != nil {
		return dto.JournalCheckResponse{}, err
	}
	diff, err := accounting.Discrepancy(totals)
	if err != nil {
		return dto.JournalCheckResponse{}, err
	}
	return dto.JournalCheckResponse{
		TotalDebit:  totals.TotalDebit,
		TotalCredit: totals.TotalCredit,
		Discrepancy: diff,
		Balanced:    diff.LessThanOrEqual(s.tolerance),
	}, nil
}
