package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement is a row of cash_movements; Kind separates receipts from payments.
type CashMovement struct {
	MovementID     string          `json:"movementID" db:"movement_id"`
	Kind           string          `json:"kind" db:"kind"`
	Folio          string          `json:"folio" db:"folio"`
	MovementDate   time.Time       `json:"movementDate" db:"movement_date"`
	CounterpartyID int64           `json:"counterpartyID" db:"counterparty_id"`
	InvoiceID      *int64          `json:"invoiceID,omitempty" db:"invoice_ref"`
	BankAccountID  int64           `json:"bankAccountID" db:"bank_account_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Concept        string          `json:"concept" db:"concept"`
	Method         string          `json:"method" db:"method"`
	EntryID        string          `json:"entryID" db:"entry_id"`
	AuditFields
}
