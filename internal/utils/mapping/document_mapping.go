package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. The entry id is
// filled in by the repository once the implied entry is stored.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.ID,
		Kind:           string(d.Kind),
		Folio:          d.Folio,
		InvoiceDate:    d.Date,
		CounterpartyID: d.CounterpartyID,
		Status:         string(d.Status),
		Subtotal:       d.Totals.Subtotal.Decimal(),
		Tax:            d.Totals.Tax.Decimal(),
		Total:          d.Totals.Total.Decimal(),
		EntryID:        d.Entry.ID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToModelInvoiceLines converts the lines of an invoice, storing each derived subtotal.
func ToModelInvoiceLines(invoiceID string, lines []domain.LineItem) []models.InvoiceLine {
	out := make([]models.InvoiceLine, len(lines))
	for i, l := range lines {
		out[i] = models.InvoiceLine{
			InvoiceID: invoiceID,
			LineNo:    i + 1,
			ArticleID: l.ArticleID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Decimal(),
			Subtotal:  l.UnitPrice.Decimal().Mul(l.Quantity),
		}
	}
	return out
}

// ToModelPayrollReceipt converts a domain PayrollReceipt to a model PayrollReceipt
func ToModelPayrollReceipt(d domain.PayrollReceipt) models.PayrollReceipt {
	return models.PayrollReceipt{
		ReceiptID:     d.ID,
		Folio:         d.Folio,
		ReceiptDate:   d.Date,
		EmployeeID:    d.EmployeeID,
		PeriodStart:   d.PeriodStart,
		PeriodEnd:     d.PeriodEnd,
		BaseSalary:    d.BaseSalary.Decimal(),
		OvertimeHours: d.OvertimeHours,
		Bonus:         d.Bonus.Decimal(),
		Deductions:    d.Deductions.Decimal(),
		Gross:         d.Totals.Gross.Decimal(),
		Net:           d.Totals.Net.Decimal(),
		EntryID:       d.Entry.ID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToModelCashMovement converts a domain CashMovement to a model CashMovement
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:     d.ID,
		Kind:           string(d.Kind),
		Folio:          d.Folio,
		MovementDate:   d.Date,
		CounterpartyID: d.CounterpartyID,
		InvoiceID:      d.InvoiceID,
		BankAccountID:  d.BankAccountID,
		Amount:         d.Amount.Decimal(),
		Concept:        d.Concept,
		Method:         string(d.Method),
		EntryID:        d.Entry.ID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoiceTotals reads the stored totals of an invoice row.
func ToDomainInvoiceTotals(m models.Invoice) domain.InvoiceTotals {
	return domain.InvoiceTotals{
		Subtotal: ToDomainMoney(m.Subtotal),
		Tax:      ToDomainMoney(m.Tax),
		Total:    ToDomainMoney(m.Total),
	}
}

// ToDomainLineItems converts stored invoice lines back to line items.
func ToDomainLineItems(rows []models.InvoiceLine) []domain.LineItem {
	out := make([]domain.LineItem, len(rows))
	for i, r := range rows {
		out[i] = domain.LineItem{
			ArticleID: r.ArticleID,
			Quantity:  r.Quantity,
			UnitPrice: ToDomainMoney(r.UnitPrice),
		}
	}
	return out
}
