package domain

import "time"

// DocumentKind names the kinds of documents handed to the backend.
type DocumentKind string

const (
	KindJournalEntry    DocumentKind = "journal_entry"
	KindSaleInvoice     DocumentKind = "sale_invoice"
	KindPurchaseInvoice DocumentKind = "purchase_invoice"
	KindPayrollReceipt  DocumentKind = "payroll_receipt"
	KindReceipt         DocumentKind = "receipt"
	KindPayment         DocumentKind = "payment"
)

// Submission is what the backend returns for an accepted document.
type Submission struct {
	Kind        DocumentKind `json:"kind"`
	ID          string       `json:"id"`
	Folio       string       `json:"folio"`
	JournalID   string       `json:"journalID,omitempty"` // Implied journal entry, when the backend reports it
	SubmittedAt time.Time    `json:"submittedAt"`
}

// Counts are the authoritative number of documents per kind, shown as navigation badges.
type Counts struct {
	JournalEntries   int64 `json:"journalEntries"`
	SaleInvoices     int64 `json:"saleInvoices"`
	PurchaseInvoices int64 `json:"purchaseInvoices"`
	PayrollReceipts  int64 `json:"payrollReceipts"`
	Receipts         int64 `json:"receipts"`
	Payments         int64 `json:"payments"`
}

// Add adds n to the count of kind. Unknown kinds are ignored.
func (c *Counts) Add(kind DocumentKind, n int64) {
	switch kind {
	case KindJournalEntry:
		c.JournalEntries += n
	case KindSaleInvoice:
		c.SaleInvoices += n
	case KindPurchaseInvoice:
		c.PurchaseInvoices += n
	case KindPayrollReceipt:
		c.PayrollReceipts += n
	case KindReceipt:
		c.Receipts += n
	case KindPayment:
		c.Payments += n
	}
}

// DocumentKind maps an invoice kind to the document kind used for counts and folios.
func (k InvoiceKind) DocumentKind() DocumentKind {
	if k == PurchaseInvoice {
		return KindPurchaseInvoice
	}
	return KindSaleInvoice
}

// DocumentKind maps a cash movement kind to the document kind used for counts and folios.
func (k CashMovementKind) DocumentKind() DocumentKind {
	if k == SupplierPayment {
		return KindPayment
	}
	return KindReceipt
}
