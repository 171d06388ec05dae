package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries. SourceKind and SourceID point at the
// document that implied the entry and are nil for manual entries.
type JournalEntry struct {
	EntryID     string          `json:"entryID" db:"entry_id"`
	Folio       string          `json:"folio" db:"folio"`
	EntryDate   time.Time       `json:"entryDate" db:"entry_date"`
	Memo        string          `json:"memo" db:"memo"`
	Status      string          `json:"status" db:"status"`
	TotalDebit  decimal.Decimal `json:"totalDebit" db:"total_debit"`
	TotalCredit decimal.Decimal `json:"totalCredit" db:"total_credit"`
	SourceKind  *string         `json:"sourceKind,omitempty" db:"source_kind"`
	SourceID    *string         `json:"sourceID,omitempty" db:"source_id"`
	AuditFields
}

// Movement is a row of journal_movements.
type Movement struct {
	MovementID string          `json:"movementID" db:"movement_id"`
	EntryID    string          `json:"entryID" db:"entry_id"`
	LineNo     int             `json:"lineNo" db:"line_no"`
	Account    string          `json:"account" db:"account"`
	Debit      decimal.Decimal `json:"debit" db:"debit"`
	Credit     decimal.Decimal `json:"credit" db:"credit"`
	Memo       string          `json:"memo" db:"memo"`
}

// JournalPeriod is one row of the per-month entry count.
type JournalPeriod struct {
	Year  int   `db:"year"`
	Month int   `db:"month"`
	Count int64 `db:"count"`
}
