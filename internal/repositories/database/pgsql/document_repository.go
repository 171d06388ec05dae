package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/folio"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentRepository stores invoices, payroll receipts and cash movements, each
// in the same transaction as the journal entry it implies.
type PgxDocumentRepository struct {
	BaseRepository
	journals *PgxJournalRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool, journals *PgxJournalRepository) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}, journals: journals}
}

// withImpliedEntry runs store inside a transaction after allocating the document id
// and folio, then stores the implied entry linked back to the document.
func (r *PgxDocumentRepository) withImpliedEntry(
	ctx context.Context,
	kind domain.DocumentKind,
	table string,
	entry domain.JournalEntry,
	store func(tx pgx.Tx, id, folio, entryID string) error,
) (domain.Submission, error) {
	prefix, err := folio.PrefixFor(kind)
	if err != nil {
		return domain.Submission{}, apperrors.NewAppError(500, "unknown document kind", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Submission{}, err
	}
	defer r.Rollback(ctx, tx)

	id := uuid.NewString()
	docFolio, err := r.nextFolio(ctx, tx, table, prefix, entry.CreatedAt)
	if err != nil {
		return domain.Submission{}, err
	}
	entry.Memo = entry.Memo + " " + docFolio
	entryRow, err := r.journals.insertEntry(ctx, tx, entry, &entrySource{kind: kind, id: id})
	if err != nil {
		return domain.Submission{}, err
	}
	if err := store(tx, id, docFolio, entryRow.EntryID); err != nil {
		return domain.Submission{}, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return domain.Submission{}, err
	}
	return domain.Submission{
		Kind:        kind,
		ID:          id,
		Folio:       docFolio,
		JournalID:   entryRow.EntryID,
		SubmittedAt: entryRow.CreatedAt,
	}, nil
}

func (r *PgxDocumentRepository) SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error) {
	entry := invoice.Entry
	entry.AuditFields = invoice.AuditFields
	return r.withImpliedEntry(ctx, invoice.Kind.DocumentKind(), "invoices", entry, func(tx pgx.Tx, id, docFolio, entryID string) error {
		row := mapping.ToModelInvoice(invoice)
		row.InvoiceID, row.Folio, row.EntryID = id, docFolio, entryID

		query := `
			INSERT INTO invoices (
				invoice_id, kind, folio, invoice_date, counterparty_id, status,
				subtotal, tax, total, entry_id, created_at, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		if _, err := tx.Exec(ctx, query,
			row.InvoiceID,
			row.Kind,
			row.Folio,
			row.InvoiceDate,
			row.CounterpartyID,
			row.Status,
			row.Subtotal,
			row.Tax,
			row.Total,
			row.EntryID,
			row.CreatedAt,
			row.CreatedBy,
		); err != nil {
			return apperrors.NewAppError(500, "failed to insert invoice "+row.Folio, err)
		}

		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO invoice_lines (line_id, invoice_id, line_no, article_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		for _, l := range mapping.ToModelInvoiceLines(row.InvoiceID, invoice.Lines) {
			batch.Queue(lineQuery, uuid.NewString(), l.InvoiceID, l.LineNo, l.ArticleID, l.Quantity, l.UnitPrice, l.Subtotal)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert lines of invoice "+row.Folio, err)
		}
		return nil
	})
}

func (r *PgxDocumentRepository) SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error) {
	entry := receipt.Entry
	entry.AuditFields = receipt.AuditFields
	return r.withImpliedEntry(ctx, domain.KindPayrollReceipt, "payroll_receipts", entry, func(tx pgx.Tx, id, docFolio, entryID string) error {
		row := mapping.ToModelPayrollReceipt(receipt)
		row.ReceiptID, row.Folio, row.EntryID = id, docFolio, entryID

		query := `
			INSERT INTO payroll_receipts (
				receipt_id, folio, receipt_date, employee_id, period_start, period_end,
				base_salary, overtime_hours, bonus, deductions, gross, net,
				entry_id, created_at, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
		`
		if _, err := tx.Exec(ctx, query,
			row.ReceiptID,
			row.Folio,
			row.ReceiptDate,
			row.EmployeeID,
			row.PeriodStart,
			row.PeriodEnd,
			row.BaseSalary,
			row.OvertimeHours,
			row.Bonus,
			row.Deductions,
			row.Gross,
			row.Net,
			row.EntryID,
			row.CreatedAt,
			row.CreatedBy,
		); err != nil {
			return apperrors.NewAppError(500, "failed to insert payroll receipt "+row.Folio, err)
		}
		return nil
	})
}

func (r *PgxDocumentRepository) SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error) {
	entry := movement.Entry
	entry.AuditFields = movement.AuditFields
	return r.withImpliedEntry(ctx, movement.Kind.DocumentKind(), "cash_movements", entry, func(tx pgx.Tx, id, docFolio, entryID string) error {
		row := mapping.ToModelCashMovement(movement)
		row.MovementID, row.Folio, row.EntryID = id, docFolio, entryID

		query := `
			INSERT INTO cash_movements (
				movement_id, kind, folio, movement_date, counterparty_id, invoice_ref,
				bank_account_id, amount, concept, method, entry_id, created_at, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
		`
		if _, err := tx.Exec(ctx, query,
			row.MovementID,
			row.Kind,
			row.Folio,
			row.MovementDate,
			row.CounterpartyID,
			row.InvoiceID,
			row.BankAccountID,
			row.Amount,
			row.Concept,
			row.Method,
			row.EntryID,
			row.CreatedAt,
			row.CreatedBy,
		); err != nil {
			return apperrors.NewAppError(500, "failed to insert cash movement "+row.Folio, err)
		}
		return nil
	})
}

// Counts returns the number of stored documents per kind.
func (r *PgxDocumentRepository) Counts(ctx context.Context) (domain.Counts, error) {
	query := `
		SELECT 'journal_entry' AS kind, COUNT(*) FROM journal_entries
		UNION ALL
		SELECT CASE kind WHEN 'SALE' THEN 'sale_invoice' ELSE 'purchase_invoice' END, COUNT(*) FROM invoices GROUP BY kind
		UNION ALL
		SELECT 'payroll_receipt', COUNT(*) FROM payroll_receipts
		UNION ALL
		SELECT CASE kind WHEN 'RECEIPT' THEN 'receipt' ELSE 'payment' END, COUNT(*) FROM cash_movements GROUP BY kind;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return domain.Counts{}, apperrors.NewAppError(500, "failed to count documents", err)
	}
	defer rows.Close()

	var counts domain.Counts
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return domain.Counts{}, apperrors.NewAppError(500, "failed to scan document count", err)
		}
		counts.Add(domain.DocumentKind(kind), n)
	}
	if err := rows.Err(); err != nil {
		return domain.Counts{}, apperrors.NewAppError(500, "error iterating document counts", err)
	}
	return counts, nil
}
