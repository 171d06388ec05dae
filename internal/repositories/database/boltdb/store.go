package boltdb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/utils/folio"
	bolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketJournalEntries  = "journal_entries"
	BucketInvoices        = "invoices"
	BucketPayrollReceipts = "payroll_receipts"
	BucketCashMovements   = "cash_movements"
	BucketFolios          = "folios"
)

var buckets = []string{BucketJournalEntries, BucketInvoices, BucketPayrollReceipts, BucketCashMovements, BucketFolios}

// Store is a single-file DocumentGateway for local use and demos. Each submission
// is written in one bbolt transaction together with its implied journal entry.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and initializes buckets.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, apperrors.NewAppError(500, "bucket "+name+" not found", nil)
	}
	return b, nil
}

// insert stores value under the bucket's next sequence and returns that sequence.
func insert(tx *bolt.Tx, name string, value func(id uint64) any) (uint64, error) {
	b, err := bucket(tx, name)
	if err != nil {
		return 0, err
	}
	id, err := b.NextSequence()
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate id in "+name, err)
	}
	data, err := json.Marshal(value(id))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to marshal record for "+name, err)
	}
	if err := b.Put(itob(id), data); err != nil {
		return 0, apperrors.NewAppError(500, "failed to store record in "+name, err)
	}
	return id, nil
}

// nextFolio bumps the per-day counter of prefix and formats the folio.
func nextFolio(tx *bolt.Tx, prefix string, at time.Time) (string, error) {
	b, err := bucket(tx, BucketFolios)
	if err != nil {
		return "", err
	}
	key := []byte(folio.DayPrefix(prefix, at))
	var seq uint64
	if raw := b.Get(key); raw != nil {
		seq = binary.BigEndian.Uint64(raw)
	}
	seq++
	if err := b.Put(key, itob(seq)); err != nil {
		return "", apperrors.NewAppError(500, "failed to store folio counter", err)
	}
	return folio.Format(prefix, at, int(seq)), nil
}

// each decodes every record of a bucket into a fresh T.
func each[T any](tx *bolt.Tx, name string, fn func(T) error) error {
	b, err := bucket(tx, name)
	if err != nil {
		return err
	}
	return b.ForEach(func(_, v []byte) error {
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return apperrors.NewAppError(500, "corrupt record in "+name, err)
		}
		return fn(rec)
	})
}

// itob converts a sequence to a byte slice for use as a bbolt key.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
