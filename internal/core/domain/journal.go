package domain

import "time"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft     JournalStatus = "DRAFT"
	Posted    JournalStatus = "POSTED"
	Cancelled JournalStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known statuses.
func (s JournalStatus) IsValid() bool {
	switch s {
	case Draft, Posted, Cancelled:
		return true
	}
	return false
}

// Movement is a single debit-or-credit line within a journal entry.
// Conventionally only one side is non-zero, but only the aggregate is constrained.
type Movement struct {
	Account string `json:"account"`
	Debit   Money  `json:"debit"`
	Credit  Money  `json:"credit"`
	Memo    string `json:"memo,omitempty"`
}

// JournalEntry is a double-entry record whose debit and credit movements must sum to equal totals.
type JournalEntry struct {
	ID        string        `json:"id,omitempty"`    // Assigned by the backend
	Folio     string        `json:"folio,omitempty"` // Assigned by the backend
	Date      time.Time     `json:"date"`
	Memo      string        `json:"memo"`
	Status    JournalStatus `json:"status"`
	Movements []Movement    `json:"movements"`
	Totals    JournalTotals `json:"totals"`
	AuditFields
}

// Period returns the accounting month (1-12) and year of the entry.
func (e JournalEntry) Period() (month int, year int) {
	return int(e.Date.Month()), e.Date.Year()
}

// JournalTotals is the aggregate of a movement sequence.
type JournalTotals struct {
	TotalDebit  Money `json:"totalDebit"`
	TotalCredit Money `json:"totalCredit"`
}

// JournalFilter narrows journal listings. Zero Month/Year means no filter on that field.
type JournalFilter struct {
	Month     int
	Year      int
	Limit     int
	NextToken *string
}

// JournalPeriod is a month that has at least one journal entry.
type JournalPeriod struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}
