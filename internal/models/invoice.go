package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of invoices; Kind separates sales from purchases.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID" db:"invoice_id"`
	Kind           string          `json:"kind" db:"kind"`
	Folio          string          `json:"folio" db:"folio"`
	InvoiceDate    time.Time       `json:"invoiceDate" db:"invoice_date"`
	CounterpartyID int64           `json:"counterpartyID" db:"counterparty_id"`
	Status         string          `json:"status" db:"status"`
	Subtotal       decimal.Decimal `json:"subtotal" db:"subtotal"`
	Tax            decimal.Decimal `json:"tax" db:"tax"`
	Total          decimal.Decimal `json:"total" db:"total"`
	EntryID        string          `json:"entryID" db:"entry_id"`
	AuditFields
}

// InvoiceLine is a row of invoice_lines. Subtotal is stored for reporting only.
type InvoiceLine struct {
	LineID    string          `json:"lineID" db:"line_id"`
	InvoiceID string          `json:"invoiceID" db:"invoice_id"`
	LineNo    int             `json:"lineNo" db:"line_no"`
	ArticleID int64           `json:"articleID" db:"article_id"`
	Quantity  decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal" db:"subtotal"`
}
