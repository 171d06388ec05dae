package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales from purchase invoices.
type InvoiceKind string

const (
	SaleInvoice     InvoiceKind = "SALE"
	PurchaseInvoice InvoiceKind = "PURCHASE"
)

// InvoiceStatus mirrors the backend's payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// LineItem is one row of an invoice draft. The subtotal is always derived, never stored.
type LineItem struct {
	ArticleID int64           `json:"articleID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice Money           `json:"unitPrice"`
}

// InvoiceTotals are the derived amounts of an invoice: subtotal + tax = total.
type InvoiceTotals struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

// Invoice is a sales or purchase invoice draft together with the values derived from it.
type Invoice struct {
	ID             string        `json:"id,omitempty"`
	Folio          string        `json:"folio,omitempty"`
	Kind           InvoiceKind   `json:"kind"`
	Date           time.Time     `json:"date"`
	CounterpartyID int64         `json:"counterpartyID"` // Client for sales, supplier for purchases
	Status         InvoiceStatus `json:"status"`
	Lines          []LineItem    `json:"lines"`
	Totals         InvoiceTotals `json:"totals"`
	Entry          JournalEntry  `json:"entry"` // Implied journal entry
	AuditFields
}
