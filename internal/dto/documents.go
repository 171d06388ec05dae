package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest defines a manual journal entry.
type CreateJournalEntryRequest struct {
	Date      string               `json:"date" binding:"required"` // YYYY-MM-DD
	Memo      string               `json:"memo" binding:"required"`
	Status    domain.JournalStatus `json:"status"` // Defaults to POSTED
	Movements []MovementRequest    `json:"movements" binding:"required,min=1,dive"`
}

// CreateInvoiceRequest defines a sales or purchase invoice. CounterpartyID is the
// client for sales and the supplier for purchases.
type CreateInvoiceRequest struct {
	Date           string            `json:"date" binding:"required"`
	CounterpartyID int64             `json:"counterpartyID" binding:"required,gt=0"`
	Lines          []LineItemRequest `json:"lines"`
}

// CreatePayrollReceiptRequest defines a payroll receipt.
type CreatePayrollReceiptRequest struct {
	Date          string          `json:"date" binding:"required"`
	EmployeeID    int64           `json:"employeeID" binding:"required,gt=0"`
	PeriodStart   string          `json:"periodStart" binding:"required"`
	PeriodEnd     string          `json:"periodEnd" binding:"required"`
	BaseSalary    domain.Money    `json:"baseSalary"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	Bonus         domain.Money    `json:"bonus"`
	Deductions    domain.Money    `json:"deductions"`
}

// CreateCashMovementRequest defines a customer receipt or a supplier payment.
type CreateCashMovementRequest struct {
	Date           string               `json:"date" binding:"required"`
	CounterpartyID int64                `json:"counterpartyID" binding:"required,gt=0"`
	InvoiceID      *int64               `json:"invoiceID"`
	BankAccountID  int64                `json:"bankAccountID" binding:"required,gt=0"`
	Amount         domain.Money         `json:"amount"`
	Concept        string               `json:"concept"`
	Method         domain.PaymentMethod `json:"method"` // Defaults to TRANSFER
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Month     int     `form:"month" binding:"omitempty,min=1,max=12"`
	Year      int     `form:"year" binding:"omitempty,min=1900,max=9999"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain.JournalFilter.
func (p ListJournalEntriesParams) ToFilter() domain.JournalFilter {
	return domain.JournalFilter{Month: p.Month, Year: p.Year, Limit: p.Limit, NextToken: p.NextToken}
}

// MovementResponse is one line of a journal entry.
type MovementResponse struct {
	Account string       `json:"account"`
	Debit   domain.Money `json:"debit"`
	Credit  domain.Money `json:"credit"`
	Memo    string       `json:"memo,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID          string               `json:"id,omitempty"`
	Folio       string               `json:"folio,omitempty"`
	Date        string               `json:"date"`
	Memo        string               `json:"memo"`
	Status      domain.JournalStatus `json:"status"`
	Movements   []MovementResponse   `json:"movements"`
	TotalDebit  domain.Money         `json:"totalDebit"`
	TotalCredit domain.Money         `json:"totalCredit"`
	CreatedAt   *time.Time           `json:"createdAt,omitempty"`
	CreatedBy   string               `json:"createdBy,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	movements := make([]MovementResponse, len(e.Movements))
	for i, m := range e.Movements {
		movements[i] = MovementResponse{Account: m.Account, Debit: m.Debit, Credit: m.Credit, Memo: m.Memo}
	}
	resp := JournalEntryResponse{
		ID:          e.ID,
		Folio:       e.Folio,
		Date:        e.Date.Format(DateLayout),
		Memo:        e.Memo,
		Status:      e.Status,
		Movements:   movements,
		TotalDebit:  e.Totals.TotalDebit,
		TotalCredit: e.Totals.TotalCredit,
		CreatedBy:   e.CreatedBy,
	}
	if !e.CreatedAt.IsZero() {
		createdAt := e.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ListJournalEntriesResponse is one page of journal entries, newest first.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToListJournalEntriesResponse converts a page of domain entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	res := ListJournalEntriesResponse{Entries: make([]JournalEntryResponse, len(entries)), NextToken: nextToken}
	for i := range entries {
		res.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// JournalPeriodResponse is a month with journal entries, as offered by the period picker.
type JournalPeriodResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	Count     int64  `json:"count"`
}

// ToJournalPeriodResponses converts domain periods, keeping their order.
func ToJournalPeriodResponses(periods []domain.JournalPeriod) []JournalPeriodResponse {
	res := make([]JournalPeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = JournalPeriodResponse{Year: p.Year, Month: p.Month, MonthName: time.Month(p.Month).String(), Count: p.Count}
	}
	return res
}

// LineItemResponse is an invoice row together with its derived subtotal.
type LineItemResponse struct {
	ArticleID int64           `json:"articleID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice domain.Money    `json:"unitPrice"`
	Subtotal  domain.Money    `json:"subtotal"`
}

// InvoiceResponse defines the data returned for a submitted invoice.
type InvoiceResponse struct {
	ID             string               `json:"id"`
	Folio          string               `json:"folio"`
	Kind           domain.InvoiceKind   `json:"kind"`
	Date           string               `json:"date"`
	CounterpartyID int64                `json:"counterpartyID"`
	Status         domain.InvoiceStatus `json:"status"`
	Lines          []LineItemResponse   `json:"lines"`
	Subtotal       domain.Money         `json:"subtotal"`
	Tax            domain.Money         `json:"tax"`
	Total          domain.Money         `json:"total"`
	Entry          JournalEntryResponse `json:"entry"`
}

// ToInvoiceResponse converts a domain.Invoice. Line subtotals are recomputed with the line reducer.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]LineItemResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		subtotal, _ := accounting.ComputeSubtotal(l.Quantity, l.UnitPrice)
		lines[i] = LineItemResponse{ArticleID: l.ArticleID, Quantity: l.Quantity, UnitPrice: l.UnitPrice, Subtotal: subtotal}
	}
	return InvoiceResponse{
		ID:             inv.ID,
		Folio:          inv.Folio,
		Kind:           inv.Kind,
		Date:           inv.Date.Format(DateLayout),
		CounterpartyID: inv.CounterpartyID,
		Status:         inv.Status,
		Lines:          lines,
		Subtotal:       inv.Totals.Subtotal,
		Tax:            inv.Totals.Tax,
		Total:          inv.Totals.Total,
		Entry:          ToJournalEntryResponse(&inv.Entry),
	}
}

// PayrollReceiptResponse defines the data returned for a submitted payroll receipt.
type PayrollReceiptResponse struct {
	ID            string               `json:"id"`
	Folio         string               `json:"folio"`
	Date          string               `json:"date"`
	EmployeeID    int64                `json:"employeeID"`
	PeriodStart   string               `json:"periodStart"`
	PeriodEnd     string               `json:"periodEnd"`
	BaseSalary    domain.Money         `json:"baseSalary"`
	OvertimeHours decimal.Decimal      `json:"overtimeHours"`
	Bonus         domain.Money         `json:"bonus"`
	Deductions    domain.Money         `json:"deductions"`
	Gross         domain.Money         `json:"gross"`
	Net           domain.Money         `json:"net"`
	Entry         JournalEntryResponse `json:"entry"`
}

// ToPayrollReceiptResponse converts a domain.PayrollReceipt.
func ToPayrollReceiptResponse(r *domain.PayrollReceipt) PayrollReceiptResponse {
	return PayrollReceiptResponse{
		ID:            r.ID,
		Folio:         r.Folio,
		Date:          r.Date.Format(DateLayout),
		EmployeeID:    r.EmployeeID,
		PeriodStart:   r.PeriodStart.Format(DateLayout),
		PeriodEnd:     r.PeriodEnd.Format(DateLayout),
		BaseSalary:    r.BaseSalary,
		OvertimeHours: r.OvertimeHours,
		Bonus:         r.Bonus,
		Deductions:    r.Deductions,
		Gross:         r.Totals.Gross,
		Net:           r.Totals.Net,
		Entry:         ToJournalEntryResponse(&r.Entry),
	}
}

// CashMovementResponse defines the data returned for a submitted receipt or payment.
type CashMovementResponse struct {
	ID             string                  `json:"id"`
	Folio          string                  `json:"folio"`
	Kind           domain.CashMovementKind `json:"kind"`
	Date           string                  `json:"date"`
	CounterpartyID int64                   `json:"counterpartyID"`
	InvoiceID      *int64                  `json:"invoiceID,omitempty"`
	BankAccountID  int64                   `json:"bankAccountID"`
	Amount         domain.Money            `json:"amount"`
	Concept        string                  `json:"concept,omitempty"`
	Method         domain.PaymentMethod    `json:"method"`
	Entry          JournalEntryResponse    `json:"entry"`
}

// ToCashMovementResponse converts a domain.CashMovement.
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:             m.ID,
		Folio:          m.Folio,
		Kind:           m.Kind,
		Date:           m.Date.Format(DateLayout),
		CounterpartyID: m.CounterpartyID,
		InvoiceID:      m.InvoiceID,
		BankAccountID:  m.BankAccountID,
		Amount:         m.Amount,
		Concept:        m.Concept,
		Method:         m.Method,
		Entry:          ToJournalEntryResponse(&m.Entry),
	}
}
