package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.ID,
		Folio:       d.Folio,
		EntryDate:   d.Date,
		Memo:        d.Memo,
		Status:      string(d.Status),
		TotalDebit:  d.Totals.TotalDebit.Decimal(),
		TotalCredit: d.Totals.TotalCredit.Decimal(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelMovements converts the movements of an entry, numbering them from 1.
func ToModelMovements(entryID string, movements []domain.Movement) []models.Movement {
	out := make([]models.Movement, len(movements))
	for i, m := range movements {
		out[i] = models.Movement{
			EntryID: entryID,
			LineNo:  i + 1,
			Account: m.Account,
			Debit:   m.Debit.Decimal(),
			Credit:  m.Credit.Decimal(),
			Memo:    m.Memo,
		}
	}
	return out
}

// ToDomainJournalEntry converts a model JournalEntry and its movements to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, movements []models.Movement) domain.JournalEntry {
	entry := domain.JournalEntry{
		ID:     m.EntryID,
		Folio:  m.Folio,
		Date:   m.EntryDate,
		Memo:   m.Memo,
		Status: domain.JournalStatus(m.Status),
		Totals: domain.JournalTotals{
			TotalDebit:  ToDomainMoney(m.TotalDebit),
			TotalCredit: ToDomainMoney(m.TotalCredit),
		},
		Movements:   make([]domain.Movement, len(movements)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for i, mv := range movements {
		entry.Movements[i] = domain.Movement{
			Account: mv.Account,
			Debit:   ToDomainMoney(mv.Debit),
			Credit:  ToDomainMoney(mv.Credit),
			Memo:    mv.Memo,
		}
	}
	return entry
}

// ToDomainJournalPeriods converts per-month counts.
func ToDomainJournalPeriods(rows []models.JournalPeriod) []domain.JournalPeriod {
	out := make([]domain.JournalPeriod, len(rows))
	for i, r := range rows {
		out[i] = domain.JournalPeriod{Year: r.Year, Month: r.Month, Count: r.Count}
	}
	return out
}
