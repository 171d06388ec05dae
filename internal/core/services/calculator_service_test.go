package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCalculatorService(accounting.DefaultTaxRate, accounting.DefaultBalanceTolerance)

	subtotal, err := svc.LineSubtotal(ctx, dto.LineItemRequest{Quantity: decimal.NewFromInt(3), UnitPrice: money("0.10")})
	require.NoError(t, err)
	assert.Equal(t, "0.30", subtotal.String())

	totals, err := svc.PreviewInvoice(ctx, dto.InvoicePreviewRequest{Lines: []dto.LineItemRequest{
		{Quantity: decimal.NewFromInt(2), UnitPrice: money("100.00")},
		{Quantity: decimal.NewFromInt(1), UnitPrice: money("50.00")},
	}})
	require.NoError(t, err)
	assert.Equal(t, "287.50", totals.Total.String())

	payroll, err := svc.PreviewPayroll(ctx, dto.PayrollPreviewRequest{
		BaseSalary: money("300.00"), OvertimeHours: decimal.NewFromInt(4), Bonus: money("50.00"), Deductions: money("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "400.00", payroll.Net.String())
}

func TestCalculatorService_CheckJournal(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCalculatorService(accounting.DefaultTaxRate, accounting.DefaultBalanceTolerance)

	check, err := svc.CheckJournal(ctx, dto.JournalCheckRequest{Movements: []dto.MovementRequest{
		{Account: "Cash", Debit: money("100")},
		{Account: "Sales", Credit: money("80")},
	}})
	require.NoError(t, err)
	assert.False(t, check.Balanced)
	assert.Equal(t, "20.00", check.Discrepancy.String())

	check, err = svc.CheckJournal(ctx, dto.JournalCheckRequest{Movements: []dto.MovementRequest{
		{Account: "Cash", Debit: money("500.00")},
		{Account: "Sales", Credit: money("499.99")},
	}})
	require.NoError(t, err)
	assert.True(t, check.Balanced)

	_, err = svc.CheckJournal(ctx, dto.JournalCheckRequest{Movements: []dto.MovementRequest{{Account: "", Debit: money("1")}}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "movement 1")
}

func TestCalculatorService_CheckJournalOverflow(t *testing.T) {
	svc := services.NewCalculatorService(accounting.DefaultTaxRate, accounting.DefaultBalanceTolerance)
	largest := domain.NewMoneyFromMinor(domain.MaxMinorUnits)

	_, err := svc.CheckJournal(context.Background(), dto.JournalCheckRequest{Movements: []dto.MovementRequest{
		{Account: "Cash", Debit: largest},
		{Account: "Cash", Debit: money("0.01")},
	}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
