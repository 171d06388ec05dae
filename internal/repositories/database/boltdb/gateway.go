package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/utils/folio"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	bolt "go.etcd.io/bbolt"
)

var _ portsrepo.DocumentGateway = (*Store)(nil)

// journalRecord is a stored entry; Source* link implied entries to their document.
type journalRecord struct {
	domain.JournalEntry
	SourceKind domain.DocumentKind `json:"sourceKind,omitempty"`
	SourceID   string              `json:"sourceID,omitempty"`
}

// kindRecord reads just the kind of an invoice or cash movement.
type kindRecord struct {
	Kind string `json:"kind"`
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func (s *Store) insertEntry(tx *bolt.Tx, entry domain.JournalEntry, kind domain.DocumentKind, sourceID string) (domain.JournalEntry, error) {
	f, err := nextFolio(tx, folio.PrefixJournalEntry, entry.CreatedAt)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry.Folio = f
	_, err = insert(tx, BucketJournalEntries, func(id uint64) any {
		entry.ID = formatID(id)
		return journalRecord{JournalEntry: entry, SourceKind: kind, SourceID: sourceID}
	})
	return entry, err
}

func (s *Store) SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error) {
	var sub domain.Submission
	err := s.db.Update(func(tx *bolt.Tx) error {
		stored, err := s.insertEntry(tx, entry, "", "")
		if err != nil {
			return err
		}
		sub = domain.Submission{Kind: domain.KindJournalEntry, ID: stored.ID, Folio: stored.Folio, SubmittedAt: stored.CreatedAt}
		return nil
	})
	return sub, err
}

// submitDocument allocates the document folio, stores the document built by
// record and then its implied entry, all in one transaction.
func (s *Store) submitDocument(kind domain.DocumentKind, bucketName string, entry domain.JournalEntry, audit domain.AuditFields, record func(id, folio string) any) (domain.Submission, error) {
	prefix, err := folio.PrefixFor(kind)
	if err != nil {
		return domain.Submission{}, apperrors.NewAppError(500, "unknown document kind", err)
	}

	var sub domain.Submission
	err = s.db.Update(func(tx *bolt.Tx) error {
		docFolio, err := nextFolio(tx, prefix, audit.CreatedAt)
		if err != nil {
			return err
		}
		b, err := bucket(tx, bucketName)
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return apperrors.NewAppError(500, "failed to allocate id in "+bucketName, err)
		}
		docID := formatID(seq)

		entry.AuditFields = audit
		entry.Memo = entry.Memo + " " + docFolio
		stored, err := s.insertEntry(tx, entry, kind, docID)
		if err != nil {
			return err
		}

		data, err := marshalRecord(record(docID, docFolio), stored)
		if err != nil {
			return err
		}
		if err := b.Put(itob(seq), data); err != nil {
			return apperrors.NewAppError(500, "failed to store record in "+bucketName, err)
		}
		sub = domain.Submission{Kind: kind, ID: docID, Folio: docFolio, JournalID: stored.ID, SubmittedAt: audit.CreatedAt}
		return nil
	})
	return sub, err
}

func (s *Store) SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error) {
	return s.submitDocument(invoice.Kind.DocumentKind(), BucketInvoices, invoice.Entry, invoice.AuditFields, func(id, f string) any {
		invoice.ID, invoice.Folio = id, f
		return &invoice
	})
}

func (s *Store) SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error) {
	return s.submitDocument(domain.KindPayrollReceipt, BucketPayrollReceipts, receipt.Entry, receipt.AuditFields, func(id, f string) any {
		receipt.ID, receipt.Folio = id, f
		return &receipt
	})
}

func (s *Store) SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error) {
	return s.submitDocument(movement.Kind.DocumentKind(), BucketCashMovements, movement.Entry, movement.AuditFields, func(id, f string) any {
		movement.ID, movement.Folio = id, f
		return &movement
	})
}

// marshalRecord stores the document with the entry as it was booked.
func marshalRecord(doc any, entry domain.JournalEntry) ([]byte, error) {
	switch d := doc.(type) {
	case *domain.Invoice:
		d.Entry = entry
	case *domain.PayrollReceipt:
		d.Entry = entry
	case *domain.CashMovement:
		d.Entry = entry
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to marshal document", err)
	}
	return data, nil
}

func (s *Store) Counts(ctx context.Context) (domain.Counts, error) {
	var counts domain.Counts
	err := s.db.View(func(tx *bolt.Tx) error {
		journals, err := bucket(tx, BucketJournalEntries)
		if err != nil {
			return err
		}
		counts.JournalEntries = int64(journals.Stats().KeyN)

		payroll, err := bucket(tx, BucketPayrollReceipts)
		if err != nil {
			return err
		}
		counts.PayrollReceipts = int64(payroll.Stats().KeyN)

		if err := each(tx, BucketInvoices, func(r kindRecord) error {
			counts.Add(domain.InvoiceKind(r.Kind).DocumentKind(), 1)
			return nil
		}); err != nil {
			return err
		}
		return each(tx, BucketCashMovements, func(r kindRecord) error {
			counts.Add(domain.CashMovementKind(r.Kind).DocumentKind(), 1)
			return nil
		})
	})
	return counts, err
}

func (s *Store) journalEntries(match func(domain.JournalEntry) bool) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		return each(tx, BucketJournalEntries, func(r journalRecord) error {
			if match(r.JournalEntry) {
				entries = append(entries, r.JournalEntry)
			}
			return nil
		})
	})
	return entries, err
}

func (s *Store) ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error) {
	entries, err := s.journalEntries(func(e domain.JournalEntry) bool {
		month, year := e.Period()
		return (filter.Month == 0 || filter.Month == month) && (filter.Year == 0 || filter.Year == year)
	})
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	page, next, err := pagination.Slice(entries, func(e domain.JournalEntry) (time.Time, time.Time) {
		return e.Date, e.CreatedAt
	}, filter.Limit, filter.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return page, next, nil
}

func (s *Store) JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error) {
	byMonth := map[[2]int]int64{}
	_, err := s.journalEntries(func(e domain.JournalEntry) bool {
		month, year := e.Period()
		byMonth[[2]int{year, month}]++
		return false
	})
	if err != nil {
		return nil, err
	}

	periods := make([]domain.JournalPeriod, 0, len(byMonth))
	for k, n := range byMonth {
		periods = append(periods, domain.JournalPeriod{Year: k[0], Month: k[1], Count: n})
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Month > periods[j].Month
	})
	return periods, nil
}
