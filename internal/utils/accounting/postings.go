package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// PostingRules names the ledger accounts used by the journal entries implied by documents.
type PostingRules struct {
	AccountsReceivable  string `yaml:"accounts_receivable"`
	Sales               string `yaml:"sales"`
	VATPayable          string `yaml:"vat_payable"`
	Purchases           string `yaml:"purchases"`
	VATCreditable       string `yaml:"vat_creditable"`
	AccountsPayable     string `yaml:"accounts_payable"`
	SalariesExpense     string `yaml:"salaries_expense"`
	PayrollWithholdings string `yaml:"payroll_withholdings"`
	SalariesPayable     string `yaml:"salaries_payable"`
	Bank                string `yaml:"bank"`
}

// DefaultPostingRules returns the chart of accounts used when no rules file is configured.
func DefaultPostingRules() PostingRules {
	return PostingRules{
		AccountsReceivable:  "Accounts Receivable",
		Sales:               "Sales",
		VATPayable:          "VAT Payable",
		Purchases:           "Purchases",
		VATCreditable:       "VAT Creditable",
		AccountsPayable:     "Accounts Payable",
		SalariesExpense:     "Salaries Expense",
		PayrollWithholdings: "Payroll Withholdings",
		SalariesPayable:     "Salaries Payable",
		Bank:                "Bank",
	}
}

// WithDefaults fills empty account names from DefaultPostingRules.
func (r PostingRules) WithDefaults() PostingRules {
	d := DefaultPostingRules()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&r.AccountsReceivable, d.AccountsReceivable)
	fill(&r.Sales, d.Sales)
	fill(&r.VATPayable, d.VATPayable)
	fill(&r.Purchases, d.Purchases)
	fill(&r.VATCreditable, d.VATCreditable)
	fill(&r.AccountsPayable, d.AccountsPayable)
	fill(&r.SalariesExpense, d.SalariesExpense)
	fill(&r.PayrollWithholdings, d.PayrollWithholdings)
	fill(&r.SalariesPayable, d.SalariesPayable)
	fill(&r.Bank, d.Bank)
	return r
}

type entryBuilder struct {
	movements []domain.Movement
}

// debit and credit skip zero amounts so derived entries only carry meaningful lines.
func (b *entryBuilder) debit(account string, amount domain.Money, memo string) {
	if amount.IsZero() {
		return
	}
	b.movements = append(b.movements, domain.Movement{Account: account, Debit: amount, Memo: memo})
}

func (b *entryBuilder) credit(account string, amount domain.Money, memo string) {
	if amount.IsZero() {
		return
	}
	b.movements = append(b.movements, domain.Movement{Account: account, Credit: amount, Memo: memo})
}

// build fails with ErrEmptyDocument when every amount was zero.
func (b *entryBuilder) build(date time.Time, memo string) (domain.JournalEntry, error) {
	if len(b.movements) == 0 {
		return domain.JournalEntry{}, fmt.Errorf("%w: %s has no non-zero amount to post", apperrors.ErrEmptyDocument, memo)
	}
	totals, err := Aggregate(b.movements)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%s: %w", memo, err)
	}
	return domain.JournalEntry{
		Date:      date,
		Memo:      memo,
		Status:    domain.Posted,
		Movements: b.movements,
		Totals:    totals,
	}, nil
}

// SaleEntry books a sales invoice: the client owes the total, split into sales and VAT.
func SaleEntry(rules PostingRules, date time.Time, clientID int64, totals domain.InvoiceTotals) (domain.JournalEntry, error) {
	b := &entryBuilder{}
	b.debit(rules.AccountsReceivable, totals.Total, fmt.Sprintf("Pending collection - client %d", clientID))
	b.credit(rules.Sales, totals.Subtotal, "Sale of goods")
	b.credit(rules.VATPayable, totals.Tax, "VAT on sale")
	return b.build(date, "Sales invoice")
}

// PurchaseEntry books a purchase invoice: purchases and creditable VAT against the supplier payable.
func PurchaseEntry(rules PostingRules, date time.Time, supplierID int64, totals domain.InvoiceTotals) (domain.JournalEntry, error) {
	b := &entryBuilder{}
	b.debit(rules.Purchases, totals.Subtotal, "Purchase of goods")
	b.debit(rules.VATCreditable, totals.Tax, "VAT on purchase")
	b.credit(rules.AccountsPayable, totals.Total, fmt.Sprintf("Pending payment - supplier %d", supplierID))
	return b.build(date, "Purchase invoice")
}

// PayrollEntry books a payroll receipt: gross salary expense against withholdings and the net owed
// to the employee. A negative net is booked as a debit, the employee owes the difference.
func PayrollEntry(rules PostingRules, date time.Time, employeeID int64, totals domain.PayrollTotals, deductions domain.Money) (domain.JournalEntry, error) {
	b := &entryBuilder{}
	b.debit(rules.SalariesExpense, totals.Gross, "Gross salary")
	b.credit(rules.PayrollWithholdings, deductions, "Payroll deductions")
	memo := fmt.Sprintf("Net pay - employee %d", employeeID)
	if totals.Net.IsNegative() {
		b.debit(rules.SalariesPayable, totals.Net.Abs(), memo)
	} else {
		b.credit(rules.SalariesPayable, totals.Net, memo)
	}
	return b.build(date, "Payroll receipt")
}

// ReceiptEntry books money received from a client into the bank.
func ReceiptEntry(rules PostingRules, date time.Time, clientID int64, amount domain.Money) (domain.JournalEntry, error) {
	b := &entryBuilder{}
	b.debit(rules.Bank, amount, "Deposit")
	b.credit(rules.AccountsReceivable, amount, fmt.Sprintf("Collection - client %d", clientID))
	return b.build(date, "Customer receipt")
}

// PaymentEntry books money paid from the bank to a supplier.
func PaymentEntry(rules PostingRules, date time.Time, supplierID int64, amount domain.Money) (domain.JournalEntry, error) {
	b := &entryBuilder{}
	b.debit(rules.AccountsPayable, amount, fmt.Sprintf("Payment - supplier %d", supplierID))
	b.credit(rules.Bank, amount, "Withdrawal")
	return b.build(date, "Supplier payment")
}
