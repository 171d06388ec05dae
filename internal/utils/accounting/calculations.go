package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the VAT rate applied to invoice subtotals (15%).
var DefaultTaxRate = decimal.RequireFromString("0.15")

// DefaultBalanceTolerance is the largest accepted |debit - credit| difference (one cent).
var DefaultBalanceTolerance = domain.NewMoneyFromMinor(1)

// ComputeSubtotal returns quantity x unitPrice exactly.
// The quantity must be a positive integer and the price must not be negative.
func ComputeSubtotal(quantity decimal.Decimal, unitPrice domain.Money) (domain.Money, error) {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return domain.Zero, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrInvalidQuantity, quantity.String())
	}
	if unitPrice.IsNegative() {
		return domain.Zero, fmt.Errorf("%w: %s must not be negative", apperrors.ErrInvalidPrice, unitPrice.String())
	}
	q := quantity.BigInt()
	if !q.IsInt64() {
		return domain.Zero, fmt.Errorf("%w: %s is out of range", apperrors.ErrInvalidQuantity, quantity.String())
	}
	return unitPrice.MulInt(q.Int64())
}

// ComputeTax returns subtotal x rate rounded half-up to the minor unit.
func ComputeTax(subtotal domain.Money, rate decimal.Decimal) (domain.Money, error) {
	return subtotal.MulRate(rate)
}

// ComputeTotal returns subtotal + tax.
func ComputeTotal(subtotal, tax domain.Money) (domain.Money, error) {
	return subtotal.Add(tax)
}

// ValidateMovement checks a single movement: it needs an account label and neither side may be negative.
func ValidateMovement(m domain.Movement) error {
	if strings.TrimSpace(m.Account) == "" {
		return fmt.Errorf("%w: movement account is required", apperrors.ErrInvalidInput)
	}
	if m.Debit.IsNegative() {
		return fmt.Errorf("%w: debit %s for account %q must not be negative", apperrors.ErrInvalidInput, m.Debit, m.Account)
	}
	if m.Credit.IsNegative() {
		return fmt.Errorf("%w: credit %s for account %q must not be negative", apperrors.ErrInvalidInput, m.Credit, m.Account)
	}
	return nil
}

// Aggregate sums the debit and credit sides of movements independently.
// A side whose sum leaves the Money range fails with ErrInvalidAmount.
func Aggregate(movements []domain.Movement) (domain.JournalTotals, error) {
	totals := domain.JournalTotals{}
	var err error
	for i, m := range movements {
		if totals.TotalDebit, err = totals.TotalDebit.Add(m.Debit); err != nil {
			return domain.JournalTotals{}, fmt.Errorf("total debit at movement %d: %w", i+1, err)
		}
		if totals.TotalCredit, err = totals.TotalCredit.Add(m.Credit); err != nil {
			return domain.JournalTotals{}, fmt.Errorf("total credit at movement %d: %w", i+1, err)
		}
	}
	return totals, nil
}

// Discrepancy returns |total debit - total credit|.
func Discrepancy(totals domain.JournalTotals) (domain.Money, error) {
	diff, err := totals.TotalDebit.Sub(totals.TotalCredit)
	if err != nil {
		return domain.Zero, err
	}
	return diff.Abs(), nil
}

// IsBalanced reports whether the two sides differ by no more than tolerance.
// A zero tolerance demands exact equality. Sides too far apart to subtract are unbalanced.
func IsBalanced(totalDebit, totalCredit, tolerance domain.Money) bool {
	diff, err := Discrepancy(domain.JournalTotals{TotalDebit: totalDebit, TotalCredit: totalCredit})
	return err == nil && diff.LessThanOrEqual(tolerance)
}

// AggregateInvoice recomputes subtotal, tax and total from the lines.
// An empty list yields zero totals; rejecting it is up to the caller.
func AggregateInvoice(lines []domain.LineItem, rate decimal.Decimal) (domain.InvoiceTotals, error) {
	subtotal := domain.Zero
	for i, line := range lines {
		lineSubtotal, err := ComputeSubtotal(line.Quantity, line.UnitPrice)
		if err != nil {
			return domain.InvoiceTotals{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if subtotal, err = subtotal.Add(lineSubtotal); err != nil {
			return domain.InvoiceTotals{}, fmt.Errorf("subtotal at line %d: %w", i+1, err)
		}
	}
	tax, err := ComputeTax(subtotal, rate)
	if err != nil {
		return domain.InvoiceTotals{}, fmt.Errorf("tax: %w", err)
	}
	total, err := ComputeTotal(subtotal, tax)
	if err != nil {
		return domain.InvoiceTotals{}, fmt.Errorf("total: %w", err)
	}
	return domain.InvoiceTotals{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// AggregatePayroll computes gross and net pay.
//
//	gross = base + overtimeHours x base / 8 + bonus
//	net   = gross - deductions
//
// Net may be negative when deductions exceed gross; it is reported, not clamped.
func AggregatePayroll(base domain.Money, overtimeHours decimal.Decimal, bonus, deductions domain.Money) (domain.PayrollTotals, error) {
	switch {
	case base.IsNegative():
		return domain.PayrollTotals{}, fmt.Errorf("%w: base salary %s must not be negative", apperrors.ErrInvalidInput, base)
	case overtimeHours.IsNegative():
		return domain.PayrollTotals{}, fmt.Errorf("%w: overtime hours %s must not be negative", apperrors.ErrInvalidInput, overtimeHours)
	case bonus.IsNegative():
		return domain.PayrollTotals{}, fmt.Errorf("%w: bonus %s must not be negative", apperrors.ErrInvalidInput, bonus)
	case deductions.IsNegative():
		return domain.PayrollTotals{}, fmt.Errorf("%w: deductions %s must not be negative", apperrors.ErrInvalidInput, deductions)
	}

	overtimeMinor := decimal.NewFromInt(base.Minor()).
		Mul(overtimeHours).
		Div(decimal.NewFromInt(domain.OvertimeHoursPerDay)).
		Round(0)
	if !overtimeMinor.BigInt().IsInt64() {
		return domain.PayrollTotals{}, fmt.Errorf("%w: overtime pay is out of range", apperrors.ErrInvalidInput)
	}
	overtime := domain.NewMoneyFromMinor(overtimeMinor.IntPart())

	gross, err := base.Add(overtime)
	if err == nil {
		gross, err = gross.Add(bonus)
	}
	if err != nil {
		return domain.PayrollTotals{}, fmt.Errorf("gross pay: %w", err)
	}
	net, err := gross.Sub(deductions)
	if err != nil {
		return domain.PayrollTotals{}, fmt.Errorf("net pay: %w", err)
	}
	return domain.PayrollTotals{Gross: gross, Net: net}, nil
}
