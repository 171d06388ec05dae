package boltdb_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/boltdb"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *boltdb.Store {
	t.Helper()
	store, err := boltdb.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func at(day, sec int) domain.AuditFields {
	return domain.AuditFields{CreatedAt: time.Date(2025, 3, day, 12, 0, sec, 0, time.UTC), CreatedBy: "tester"}
}

func manualEntry(day int, audit domain.AuditFields) domain.JournalEntry {
	return domain.JournalEntry{
		Date:   time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		Memo:   "Manual",
		Status: domain.Posted,
		Movements: []domain.Movement{
			{Account: "Cash", Debit: domain.MustMoney("10")},
			{Account: "Equity", Credit: domain.MustMoney("10")},
		},
		Totals:      domain.JournalTotals{TotalDebit: domain.MustMoney("10"), TotalCredit: domain.MustMoney("10")},
		AuditFields: audit,
	}
}

func TestSubmitJournalEntry_AllocatesDailyFolios(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first, err := store.SubmitJournalEntry(ctx, manualEntry(14, at(14, 1)))
	require.NoError(t, err)
	second, err := store.SubmitJournalEntry(ctx, manualEntry(14, at(14, 2)))
	require.NoError(t, err)
	nextDay, err := store.SubmitJournalEntry(ctx, manualEntry(15, at(15, 1)))
	require.NoError(t, err)

	assert.Equal(t, "AC20250314001", first.Folio)
	assert.Equal(t, "AC20250314002", second.Folio)
	assert.Equal(t, "AC20250315001", nextDay.Folio)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.KindJournalEntry, first.Kind)
}

func TestSubmitInvoice_StoresImpliedEntry(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	totals := domain.InvoiceTotals{Subtotal: domain.MustMoney("250"), Tax: domain.MustMoney("37.50"), Total: domain.MustMoney("287.50")}

	sub, err := store.SubmitInvoice(ctx, domain.Invoice{
		Kind:           domain.PurchaseInvoice,
		Date:           date,
		CounterpartyID: 2,
		Status:         domain.InvoicePending,
		Lines:          []domain.LineItem{{ArticleID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: domain.MustMoney("125")}},
		Totals:         totals,
		Entry:          mustEntry(accounting.PurchaseEntry(accounting.DefaultPostingRules(), date, 2, totals)),
		AuditFields:    at(14, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindPurchaseInvoice, sub.Kind)
	assert.Equal(t, "FC20250314001", sub.Folio)
	require.NotEmpty(t, sub.JournalID)

	entries, _, err := store.ListJournalEntries(ctx, domain.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, sub.JournalID, entries[0].ID)
	assert.Equal(t, "AC20250314001", entries[0].Folio)
	assert.Equal(t, "Purchase invoice FC20250314001", entries[0].Memo)
	assert.Equal(t, "287.50", entries[0].Totals.TotalCredit.String())
	assert.Len(t, entries[0].Movements, 3)
}

func TestCounts(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	rules := accounting.DefaultPostingRules()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	amount := domain.MustMoney("20")

	_, err := store.SubmitJournalEntry(ctx, manualEntry(14, at(14, 1)))
	require.NoError(t, err)
	_, err = store.SubmitCashMovement(ctx, domain.CashMovement{
		Kind: domain.CustomerReceipt, Date: date, CounterpartyID: 1, BankAccountID: 1, Amount: amount,
		Method: domain.MethodCash, Entry: mustEntry(accounting.ReceiptEntry(rules, date, 1, amount)), AuditFields: at(14, 2),
	})
	require.NoError(t, err)
	payroll := domain.PayrollTotals{Gross: domain.MustMoney("500"), Net: domain.MustMoney("400")}
	_, err = store.SubmitPayrollReceipt(ctx, domain.PayrollReceipt{
		Date: date, EmployeeID: 9, PeriodStart: date, PeriodEnd: date,
		BaseSalary: domain.MustMoney("500"), Deductions: domain.MustMoney("100"), Totals: payroll,
		Entry: mustEntry(accounting.PayrollEntry(rules, date, 9, payroll, domain.MustMoney("100"))), AuditFields: at(14, 3),
	})
	require.NoError(t, err)

	counts, err := store.Counts(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.Counts{JournalEntries: 3, Receipts: 1, PayrollReceipts: 1}, counts)
}

func TestListJournalEntries_FilterAndPages(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	for day := 1; day <= 5; day++ {
		_, err := store.SubmitJournalEntry(ctx, manualEntry(day, at(day, 0)))
		require.NoError(t, err)
	}
	april := manualEntry(1, at(20, 0))
	april.Date = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := store.SubmitJournalEntry(ctx, april)
	require.NoError(t, err)

	page, next, err := store.ListJournalEntries(ctx, domain.JournalFilter{Month: 3, Year: 2025, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, 5, page[0].Date.Day())
	assert.Equal(t, 3, page[2].Date.Day())
	require.NotNil(t, next)

	page, next, err = store.ListJournalEntries(ctx, domain.JournalFilter{Month: 3, Year: 2025, Limit: 3, NextToken: next})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 1, page[1].Date.Day())
	assert.Nil(t, next)

	periods, err := store.JournalPeriods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.JournalPeriod{{Year: 2025, Month: 4, Count: 1}, {Year: 2025, Month: 3, Count: 5}}, periods)
}

func TestListJournalEntries_BadToken(t *testing.T) {
	store := openStore(t)
	bad := "not-a-token"
	_, _, err := store.ListJournalEntries(context.Background(), domain.JournalFilter{NextToken: &bad})
	assert.Error(t, err)
}

// mustEntry unwraps an implied journal entry built from known-good totals.
func mustEntry(entry domain.JournalEntry, err error) domain.JournalEntry {
	if err != nil {
		panic(err)
	}
	return entry
}
