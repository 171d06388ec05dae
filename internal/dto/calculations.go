package dto

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one row of an invoice draft. Quantity and price accept JSON strings or numbers.
type LineItemRequest struct {
	ArticleID int64           `json:"articleID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice domain.Money    `json:"unitPrice"`
}

// ToDomain converts the request row to a domain.LineItem.
func (r LineItemRequest) ToDomain() domain.LineItem {
	return domain.LineItem{ArticleID: r.ArticleID, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}

// ToLineItems converts request rows to domain line items.
func ToLineItems(rows []LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(rows))
	for i, r := range rows {
		items[i] = r.ToDomain()
	}
	return items
}

// LineSubtotalResponse is the result of quantity x unit price.
type LineSubtotalResponse struct {
	Subtotal domain.Money `json:"subtotal"`
}

// InvoicePreviewRequest holds the lines of an invoice draft.
type InvoicePreviewRequest struct {
	Lines []LineItemRequest `json:"lines"`
}

// PayrollPreviewRequest holds the inputs of a payroll receipt draft.
type PayrollPreviewRequest struct {
	BaseSalary    domain.Money    `json:"baseSalary"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	Bonus         domain.Money    `json:"bonus"`
	Deductions    domain.Money    `json:"deductions"`
}

// MovementRequest is one debit-or-credit line of a journal entry draft.
type MovementRequest struct {
	Account string       `json:"account" binding:"required"`
	Debit   domain.Money `json:"debit"`
	Credit  domain.Money `json:"credit"`
	Memo    string       `json:"memo"`
}

// ToMovements converts request rows to domain movements.
func ToMovements(rows []MovementRequest) []domain.Movement {
	movements := make([]domain.Movement, len(rows))
	for i, r := range rows {
		movements[i] = domain.Movement{Account: r.Account, Debit: r.Debit, Credit: r.Credit, Memo: r.Memo}
	}
	return movements
}

// JournalCheckRequest holds the movements of a journal entry draft.
type JournalCheckRequest struct {
	Movements []MovementRequest `json:"movements"`
}

// JournalCheckResponse reports the totals of a draft and whether it may be saved.
type JournalCheckResponse struct {
	TotalDebit  domain.Money `json:"totalDebit"`
	TotalCredit domain.Money `json:"totalCredit"`
	Discrepancy domain.Money `json:"discrepancy"`
	Balanced    bool         `json:"balanced"`
}
