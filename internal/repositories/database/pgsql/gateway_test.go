package pgsql_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_engine/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GatewayTestSuite runs against a disposable database named by LEDGER_TEST_DATABASE_URL.
type GatewayTestSuite struct {
	suite.Suite
	gateway portsrepo.DocumentGateway
	now     time.Time
}

func (suite *GatewayTestSuite) SetupSuite() {
	url := os.Getenv("LEDGER_TEST_DATABASE_URL")
	if url == "" {
		suite.T().Skip("LEDGER_TEST_DATABASE_URL not set")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	suite.Require().NoError(database.RunMigrations(url, "../../../../migrations", logger))

	pool, err := database.NewPgxPool(context.Background(), url, true)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { database.ClosePgxPool(pool) })

	_, err = pool.Exec(context.Background(),
		`TRUNCATE cash_movements, payroll_receipts, invoice_lines, invoices, journal_movements, journal_entries`)
	suite.Require().NoError(err)

	suite.gateway = pgsql.NewDocumentGateway(pool)
	suite.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func (suite *GatewayTestSuite) audit() domain.AuditFields {
	suite.now = suite.now.Add(time.Second)
	return domain.AuditFields{CreatedAt: suite.now, CreatedBy: "tester"}
}

func (suite *GatewayTestSuite) TestDocumentsRoundTrip() {
	ctx := context.Background()
	rules := accounting.DefaultPostingRules()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	manual := domain.JournalEntry{
		Date:   date,
		Memo:   "Opening balance",
		Status: domain.Posted,
		Movements: []domain.Movement{
			{Account: "Cash", Debit: domain.MustMoney("500")},
			{Account: "Equity", Credit: domain.MustMoney("500")},
		},
		Totals:      domain.JournalTotals{TotalDebit: domain.MustMoney("500"), TotalCredit: domain.MustMoney("500")},
		AuditFields: suite.audit(),
	}
	first, err := suite.gateway.SubmitJournalEntry(ctx, manual)
	suite.Require().NoError(err)
	suite.Equal("AC20250314001", first.Folio)

	totals := domain.InvoiceTotals{Subtotal: domain.MustMoney("250"), Tax: domain.MustMoney("37.50"), Total: domain.MustMoney("287.50")}
	invoice := domain.Invoice{
		Kind:           domain.SaleInvoice,
		Date:           date,
		CounterpartyID: 7,
		Status:         domain.InvoicePending,
		Lines:          []domain.LineItem{{ArticleID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: domain.MustMoney("125")}},
		Totals:         totals,
		Entry:          mustEntry(accounting.SaleEntry(rules, date, 7, totals)),
		AuditFields:    suite.audit(),
	}
	sale, err := suite.gateway.SubmitInvoice(ctx, invoice)
	suite.Require().NoError(err)
	suite.Equal("FV20250314001", sale.Folio)
	suite.NotEmpty(sale.JournalID)

	amount := domain.MustMoney("100")
	payment, err := suite.gateway.SubmitCashMovement(ctx, domain.CashMovement{
		Kind:           domain.SupplierPayment,
		Date:           date,
		CounterpartyID: 3,
		BankAccountID:  1,
		Amount:         amount,
		Method:         domain.MethodTransfer,
		Entry:          mustEntry(accounting.PaymentEntry(rules, date, 3, amount)),
		AuditFields:    suite.audit(),
	})
	suite.Require().NoError(err)
	suite.Equal("PG20250314001", payment.Folio)

	counts, err := suite.gateway.Counts(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), counts.JournalEntries)
	suite.Equal(int64(1), counts.SaleInvoices)
	suite.Equal(int64(1), counts.Payments)

	page, next, err := suite.gateway.ListJournalEntries(ctx, domain.JournalFilter{Month: 3, Year: 2025, Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Require().NotNil(next)
	suite.True(strings.HasPrefix(page[0].Memo, "Supplier payment PG20250314001"))
	suite.Len(page[1].Movements, 3)

	rest, next, err := suite.gateway.ListJournalEntries(ctx, domain.JournalFilter{Month: 3, Year: 2025, Limit: 2, NextToken: next})
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Nil(next)
	suite.Equal(first.ID, rest[0].ID)
	suite.Equal("500.00", rest[0].Totals.TotalDebit.String())

	periods, err := suite.gateway.JournalPeriods(ctx)
	suite.Require().NoError(err)
	suite.Equal([]domain.JournalPeriod{{Year: 2025, Month: 3, Count: 3}}, periods)
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

// mustEntry unwraps an implied journal entry built from known-good totals.
func mustEntry(entry domain.JournalEntry, err error) domain.JournalEntry {
	if err != nil {
		panic(err)
	}
	return entry
}
