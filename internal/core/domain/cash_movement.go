package domain

import "time"

// CashMovementKind distinguishes money received from clients and money paid to suppliers.
type CashMovementKind string

const (
	CustomerReceipt CashMovementKind = "RECEIPT"
	SupplierPayment CashMovementKind = "PAYMENT"
)

// PaymentMethod is how the money changed hands.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCheque   PaymentMethod = "CHEQUE"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCheque:
		return true
	}
	return false
}

// CashMovement is a customer receipt or a supplier payment against a bank account.
type CashMovement struct {
	ID             string           `json:"id,omitempty"`
	Folio          string           `json:"folio,omitempty"`
	Kind           CashMovementKind `json:"kind"`
	Date           time.Time        `json:"date"`
	CounterpartyID int64            `json:"counterpartyID"`
	InvoiceID      *int64           `json:"invoiceID,omitempty"`
	BankAccountID  int64            `json:"bankAccountID"`
	Amount         Money            `json:"amount"`
	Concept        string           `json:"concept,omitempty"`
	Method         PaymentMethod    `json:"method"`
	Entry          JournalEntry     `json:"entry"`
	AuditFields
}
