package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/events"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentGateway ---
type MockGateway struct {
	mock.Mock
}

var _ portsrepo.DocumentGateway = (*MockGateway)(nil)

func (m *MockGateway) SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockGateway) SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockGateway) SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error) {
	args := m.Called(ctx, receipt)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockGateway) SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error) {
	args := m.Called(ctx, movement)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockGateway) Counts(ctx context.Context) (domain.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Counts), args.Error(1)
}

func (m *MockGateway) ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockGateway) JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalPeriod), args.Error(1)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) Publish(ctx context.Context, evt events.Event) {
	m.Called(ctx, evt)
}

// --- Test Suite Setup ---
type PosterServiceTestSuite struct {
	suite.Suite
	gateway  *MockGateway
	notifier *MockNotifier
	service  portssvc.PosterSvcFacade
	now      time.Time
	subject  string
}

func (suite *PosterServiceTestSuite) SetupTest() {
	suite.gateway = new(MockGateway)
	suite.notifier = new(MockNotifier)
	suite.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.subject = "billing-ui"
	suite.service = services.NewPosterService(suite.gateway,
		services.WithNotifier(suite.notifier),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func money(s string) domain.Money { return domain.MustMoney(s) }

func (suite *PosterServiceTestSuite) expectPublished(kind domain.DocumentKind, folio string) {
	suite.notifier.On("Publish", mock.Anything, mock.MatchedBy(func(evt events.Event) bool {
		return evt.Type == events.CountsChanged && evt.Kind == kind && evt.Folio == folio && evt.Subject == suite.subject
	})).Return().Once()
}

func (suite *PosterServiceTestSuite) assertNothingSent() {
	suite.gateway.AssertNotCalled(suite.T(), "SubmitJournalEntry", mock.Anything, mock.Anything)
	suite.gateway.AssertNotCalled(suite.T(), "SubmitInvoice", mock.Anything, mock.Anything)
	suite.gateway.AssertNotCalled(suite.T(), "SubmitPayrollReceipt", mock.Anything, mock.Anything)
	suite.gateway.AssertNotCalled(suite.T(), "SubmitCashMovement", mock.Anything, mock.Anything)
	suite.notifier.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

// --- Journal entries ---

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_Success() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: "2025-03-14",
		Memo: "Owner contribution",
		Movements: []dto.MovementRequest{
			{Account: "Bank", Debit: money("1000.00")},
			{Account: "Capital", Credit: money("1000.00")},
		},
	}
	suite.gateway.On("SubmitJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Memo == "Owner contribution" && e.Status == domain.Posted && len(e.Movements) == 2 &&
			e.Totals.TotalDebit.Equal(money("1000.00")) && e.CreatedBy == suite.subject && e.CreatedAt.Equal(suite.now)
	})).Return(domain.Submission{Kind: domain.KindJournalEntry, ID: "17", Folio: "AC20250314001"}, nil).Once()
	suite.expectPublished(domain.KindJournalEntry, "AC20250314001")

	entry, err := suite.service.SubmitJournalEntry(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.Equal("17", entry.ID)
	suite.Equal("AC20250314001", entry.Folio)
	suite.Equal(2025, entry.Date.Year())
	suite.gateway.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_WithinTolerance() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: "2025-03-14",
		Memo: "Rounding",
		Movements: []dto.MovementRequest{
			{Account: "Cash", Debit: money("500.00")},
			{Account: "Sales", Credit: money("499.99")},
		},
	}
	suite.gateway.On("SubmitJournalEntry", ctx, mock.Anything).Return(domain.Submission{Kind: domain.KindJournalEntry, ID: "1", Folio: "AC20250314001"}, nil).Once()
	suite.expectPublished(domain.KindJournalEntry, "AC20250314001")

	_, err := suite.service.SubmitJournalEntry(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_Unbalanced() {
	req := dto.CreateJournalEntryRequest{
		Date: "2025-03-14",
		Memo: "Broken",
		Movements: []dto.MovementRequest{
			{Account: "Cash", Debit: money("100")},
			{Account: "Sales", Credit: money("80")},
		},
	}

	_, err := suite.service.SubmitJournalEntry(context.Background(), req, suite.subject)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	var unbalanced *apperrors.UnbalancedError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.Equal("20.00", unbalanced.Discrepancy)
	suite.Equal("100.00", unbalanced.TotalDebit)
	suite.Equal("80.00", unbalanced.TotalCredit)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_ValidationErrors() {
	valid := []dto.MovementRequest{{Account: "Cash", Debit: money("1")}, {Account: "Sales", Credit: money("1")}}
	tests := map[string]struct {
		req     dto.CreateJournalEntryRequest
		wantErr error
	}{
		"missing memo":    {dto.CreateJournalEntryRequest{Date: "2025-03-14", Memo: "  ", Movements: valid}, apperrors.ErrInvalidInput},
		"bad date":        {dto.CreateJournalEntryRequest{Date: "14/03/2025", Memo: "x", Movements: valid}, apperrors.ErrInvalidInput},
		"no movements":    {dto.CreateJournalEntryRequest{Date: "2025-03-14", Memo: "x"}, apperrors.ErrEmptyDocument},
		"unknown status":  {dto.CreateJournalEntryRequest{Date: "2025-03-14", Memo: "x", Status: "OPEN", Movements: valid}, apperrors.ErrInvalidInput},
		"negative debit":  {dto.CreateJournalEntryRequest{Date: "2025-03-14", Memo: "x", Movements: []dto.MovementRequest{{Account: "Cash", Debit: money("-1")}}}, apperrors.ErrInvalidInput},
		"missing account": {dto.CreateJournalEntryRequest{Date: "2025-03-14", Memo: "x", Movements: []dto.MovementRequest{{Debit: money("1")}}}, apperrors.ErrInvalidInput},
	}
	for name, tt := range tests {
		suite.Run(name, func() {
			_, err := suite.service.SubmitJournalEntry(context.Background(), tt.req, suite.subject)
			suite.ErrorIs(err, tt.wantErr)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_OverflowingDebitsAreRejected() {
	largest := domain.NewMoneyFromMinor(domain.MaxMinorUnits)
	req := dto.CreateJournalEntryRequest{
		Date: "2025-03-14",
		Memo: "Wraparound",
		Movements: []dto.MovementRequest{
			{Account: "Cash", Debit: largest},
			{Account: "Cash", Debit: largest},
			{Account: "Cash", Debit: money("0.02")},
		},
	}
	_, err := suite.service.SubmitJournalEntry(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_BackendFailure() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:      "2025-03-14",
		Memo:      "Owner contribution",
		Movements: []dto.MovementRequest{{Account: "Bank", Debit: money("1")}, {Account: "Capital", Credit: money("1")}},
	}
	backendErr := &apperrors.SubmissionError{StatusCode: http.StatusBadRequest, Message: "La cuenta Capital no existe"}
	suite.gateway.On("SubmitJournalEntry", ctx, mock.Anything).Return(domain.Submission{}, backendErr).Once()

	_, err := suite.service.SubmitJournalEntry(ctx, req, suite.subject)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSubmissionFailed)
	suite.Contains(err.Error(), "La cuenta Capital no existe")
	suite.gateway.AssertNumberOfCalls(suite.T(), "SubmitJournalEntry", 1)
	suite.notifier.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *PosterServiceTestSuite) TestSubmitJournalEntry_TransportFailureIsWrapped() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date:      "2025-03-14",
		Memo:      "Owner contribution",
		Movements: []dto.MovementRequest{{Account: "Bank", Debit: money("1")}, {Account: "Capital", Credit: money("1")}},
	}
	suite.gateway.On("SubmitJournalEntry", ctx, mock.Anything).Return(domain.Submission{}, errors.New("connection refused")).Once()

	_, err := suite.service.SubmitJournalEntry(ctx, req, suite.subject)

	suite.ErrorIs(err, apperrors.ErrSubmissionFailed)
	suite.Contains(err.Error(), "connection refused")
	suite.notifier.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

// --- Invoices ---

func (suite *PosterServiceTestSuite) TestSubmitSaleInvoice_ScenarioA() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Date:           "2025-03-14",
		CounterpartyID: 7,
		Lines: []dto.LineItemRequest{
			{ArticleID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: money("100.00")},
			{ArticleID: 2, Quantity: decimal.NewFromInt(1), UnitPrice: money("50.00")},
		},
	}
	suite.gateway.On("SubmitInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Kind == domain.SaleInvoice && inv.CounterpartyID == 7 &&
			inv.Totals.Total.Equal(money("287.50")) && len(inv.Entry.Movements) == 3 &&
			inv.Entry.Totals.TotalDebit.Equal(inv.Entry.Totals.TotalCredit)
	})).Return(domain.Submission{Kind: domain.KindSaleInvoice, ID: "5", Folio: "FV20250314001", JournalID: "40"}, nil).Once()
	suite.expectPublished(domain.KindSaleInvoice, "FV20250314001")

	invoice, err := suite.service.SubmitSaleInvoice(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.Equal("250.00", invoice.Totals.Subtotal.String())
	suite.Equal("37.50", invoice.Totals.Tax.String())
	suite.Equal("287.50", invoice.Totals.Total.String())
	suite.Equal("FV20250314001", invoice.Folio)
	suite.Equal("40", invoice.Entry.ID)
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.gateway.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitPurchaseInvoice_UsesConfiguredRate() {
	ctx := context.Background()
	service := services.NewPosterService(suite.gateway,
		services.WithTaxRate(decimal.RequireFromString("0.16")),
		services.WithPostingRules(accounting.PostingRules{Purchases: "Compras"}),
	)
	req := dto.CreateInvoiceRequest{
		Date:           "2025-03-14",
		CounterpartyID: 3,
		Lines:          []dto.LineItemRequest{{ArticleID: 1, Quantity: decimal.NewFromInt(1), UnitPrice: money("100.00")}},
	}
	suite.gateway.On("SubmitInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Kind == domain.PurchaseInvoice && inv.Entry.Movements[0].Account == "Compras"
	})).Return(domain.Submission{Kind: domain.KindPurchaseInvoice, ID: "9", Folio: "FC20250314001"}, nil).Once()

	invoice, err := service.SubmitPurchaseInvoice(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.Equal("16.00", invoice.Totals.Tax.String())
	suite.Equal("116.00", invoice.Totals.Total.String())
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitSaleInvoice_Empty() {
	_, err := suite.service.SubmitSaleInvoice(context.Background(), dto.CreateInvoiceRequest{Date: "2025-03-14", CounterpartyID: 1}, suite.subject)
	suite.ErrorIs(err, apperrors.ErrEmptyDocument)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitSaleInvoice_AllLinesFree() {
	req := dto.CreateInvoiceRequest{
		Date:           "2025-03-14",
		CounterpartyID: 1,
		Lines:          []dto.LineItemRequest{{ArticleID: 1, Quantity: decimal.NewFromInt(1), UnitPrice: money("0.00")}},
	}
	_, err := suite.service.SubmitSaleInvoice(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrEmptyDocument)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitPurchaseInvoice_SubtotalOverflow() {
	half := domain.NewMoneyFromMinor(domain.MaxMinorUnits/2 + 1)
	req := dto.CreateInvoiceRequest{
		Date:           "2025-03-14",
		CounterpartyID: 1,
		Lines: []dto.LineItemRequest{
			{ArticleID: 1, Quantity: decimal.NewFromInt(1), UnitPrice: half},
			{ArticleID: 2, Quantity: decimal.NewFromInt(1), UnitPrice: half},
		},
	}
	_, err := suite.service.SubmitPurchaseInvoice(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitSaleInvoice_BadLine() {
	req := dto.CreateInvoiceRequest{
		Date:           "2025-03-14",
		CounterpartyID: 1,
		Lines: []dto.LineItemRequest{
			{Quantity: decimal.NewFromInt(1), UnitPrice: money("10")},
			{Quantity: decimal.NewFromInt(1), UnitPrice: money("-10")},
		},
	}
	_, err := suite.service.SubmitSaleInvoice(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidPrice)
	suite.Contains(err.Error(), "line 2")
	suite.assertNothingSent()
}

// --- Payroll ---

func (suite *PosterServiceTestSuite) TestSubmitPayrollReceipt_ScenarioC() {
	ctx := context.Background()
	req := dto.CreatePayrollReceiptRequest{
		Date:          "2025-03-15",
		EmployeeID:    4,
		PeriodStart:   "2025-03-01",
		PeriodEnd:     "2025-03-15",
		BaseSalary:    money("300.00"),
		OvertimeHours: decimal.NewFromInt(4),
		Bonus:         money("50.00"),
		Deductions:    money("100.00"),
	}
	suite.gateway.On("SubmitPayrollReceipt", ctx, mock.MatchedBy(func(r domain.PayrollReceipt) bool {
		return r.EmployeeID == 4 && r.Totals.Gross.Equal(money("500.00")) && r.Totals.Net.Equal(money("400.00"))
	})).Return(domain.Submission{Kind: domain.KindPayrollReceipt, ID: "2", Folio: "RN20250315001"}, nil).Once()
	suite.expectPublished(domain.KindPayrollReceipt, "RN20250315001")

	receipt, err := suite.service.SubmitPayrollReceipt(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.Equal("500.00", receipt.Totals.Gross.String())
	suite.Equal("400.00", receipt.Totals.Net.String())
	suite.Equal("RN20250315001", receipt.Folio)
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitPayrollReceipt_InvalidPeriod() {
	req := dto.CreatePayrollReceiptRequest{
		Date: "2025-03-15", EmployeeID: 4, PeriodStart: "2025-03-15", PeriodEnd: "2025-03-01",
		BaseSalary: money("300.00"),
	}
	_, err := suite.service.SubmitPayrollReceipt(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitPayrollReceipt_NegativeDeductions() {
	req := dto.CreatePayrollReceiptRequest{
		Date: "2025-03-15", EmployeeID: 4, PeriodStart: "2025-03-01", PeriodEnd: "2025-03-15",
		BaseSalary: money("300.00"), Deductions: money("-1.00"),
	}
	_, err := suite.service.SubmitPayrollReceipt(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitPayrollReceipt_AllZero() {
	req := dto.CreatePayrollReceiptRequest{
		Date: "2025-03-15", EmployeeID: 4, PeriodStart: "2025-03-01", PeriodEnd: "2025-03-15",
	}
	_, err := suite.service.SubmitPayrollReceipt(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrEmptyDocument)
	suite.assertNothingSent()
}

func (suite *PosterServiceTestSuite) TestSubmitPayrollReceipt_GrossOverflow() {
	req := dto.CreatePayrollReceiptRequest{
		Date: "2025-03-15", EmployeeID: 4, PeriodStart: "2025-03-01", PeriodEnd: "2025-03-15",
		BaseSalary: domain.NewMoneyFromMinor(domain.MaxMinorUnits - 10), Bonus: money("1.00"),
	}
	_, err := suite.service.SubmitPayrollReceipt(context.Background(), req, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.assertNothingSent()
}

// --- Receipts and payments ---

func (suite *PosterServiceTestSuite) TestSubmitReceipt_Success() {
	ctx := context.Background()
	invoiceID := int64(5)
	req := dto.CreateCashMovementRequest{
		Date: "2025-03-20", CounterpartyID: 7, InvoiceID: &invoiceID, BankAccountID: 1,
		Amount: money("287.50"), Concept: " Invoice FV20250314001 ",
	}
	suite.gateway.On("SubmitCashMovement", ctx, mock.MatchedBy(func(m domain.CashMovement) bool {
		return m.Kind == domain.CustomerReceipt && m.Method == domain.MethodTransfer &&
			m.Concept == "Invoice FV20250314001" && m.Entry.Movements[0].Account == accounting.DefaultPostingRules().Bank
	})).Return(domain.Submission{Kind: domain.KindReceipt, ID: "3", Folio: "RC20250320001"}, nil).Once()
	suite.expectPublished(domain.KindReceipt, "RC20250320001")

	movement, err := suite.service.SubmitReceipt(ctx, req, suite.subject)

	suite.Require().NoError(err)
	suite.Equal("RC20250320001", movement.Folio)
	suite.gateway.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *PosterServiceTestSuite) TestSubmitPayment_Validation() {
	base := dto.CreateCashMovementRequest{Date: "2025-03-20", CounterpartyID: 3, BankAccountID: 1, Amount: money("10")}

	zero := base
	zero.Amount = domain.Zero
	_, err := suite.service.SubmitPayment(context.Background(), zero, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	noBank := base
	noBank.BankAccountID = 0
	_, err = suite.service.SubmitPayment(context.Background(), noBank, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)

	badMethod := base
	badMethod.Method = "BITCOIN"
	_, err = suite.service.SubmitPayment(context.Background(), badMethod, suite.subject)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)

	suite.assertNothingSent()
}

// --- Reads ---

func (suite *PosterServiceTestSuite) TestGetCounts() {
	ctx := context.Background()
	counts := domain.Counts{JournalEntries: 3, SaleInvoices: 2}
	suite.gateway.On("Counts", ctx).Return(counts, nil).Once()

	got, err := suite.service.GetCounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(counts, got)
}

func (suite *PosterServiceTestSuite) TestListJournalEntries() {
	ctx := context.Background()
	params := dto.ListJournalEntriesParams{Month: 3, Year: 2025, Limit: 10}
	entries := []domain.JournalEntry{{ID: "1", Folio: "AC20250314001", Date: suite.now, Memo: "x", Status: domain.Posted}}
	suite.gateway.On("ListJournalEntries", ctx, params.ToFilter()).Return(entries, "next", nil).Once()

	resp, err := suite.service.ListJournalEntries(ctx, params)

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Equal("2025-03-14", resp.Entries[0].Date)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *PosterServiceTestSuite) TestListJournalPeriods() {
	ctx := context.Background()
	periods := []domain.JournalPeriod{{Year: 2025, Month: 3, Count: 4}, {Year: 2024, Month: 12, Count: 1}}
	suite.gateway.On("JournalPeriods", ctx).Return(periods, nil).Once()

	got, err := suite.service.ListJournalPeriods(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("March", got[0].MonthName)
	suite.Equal(int64(4), got[0].Count)
	suite.Equal("December", got[1].MonthName)
}

func (suite *PosterServiceTestSuite) TestListJournalPeriods_Error() {
	ctx := context.Background()
	suite.gateway.On("JournalPeriods", ctx).Return(nil, errors.New("boom")).Once()

	_, err := suite.service.ListJournalPeriods(ctx)

	suite.Error(err)
}

func TestPosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PosterServiceTestSuite))
}
