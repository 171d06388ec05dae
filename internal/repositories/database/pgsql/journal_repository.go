package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/folio"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their movements.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// entrySource links an implied entry to the document it was derived from.
type entrySource struct {
	kind domain.DocumentKind
	id   string
}

// insertEntry stores entry and its movements inside tx, assigning id and folio.
func (r *PgxJournalRepository) insertEntry(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, source *entrySource) (models.JournalEntry, error) {
	row := mapping.ToModelJournalEntry(entry)
	row.EntryID = uuid.NewString()
	var err error
	row.Folio, err = r.nextFolio(ctx, tx, "journal_entries", folio.PrefixJournalEntry, row.CreatedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if source != nil {
		kind := string(source.kind)
		row.SourceKind = &kind
		row.SourceID = &source.id
	}

	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, folio, entry_date, memo, status, total_debit, total_credit,
			source_kind, source_id, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, entryQuery,
		row.EntryID,
		row.Folio,
		row.EntryDate,
		row.Memo,
		row.Status,
		row.TotalDebit,
		row.TotalCredit,
		row.SourceKind,
		row.SourceID,
		row.CreatedAt,
		row.CreatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, apperrors.NewAppError(500, "failed to insert journal entry "+row.Folio, err)
	}

	batch := &pgx.Batch{}
	movementQuery := `
		INSERT INTO journal_movements (movement_id, entry_id, line_no, account, debit, credit, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, m := range mapping.ToModelMovements(row.EntryID, entry.Movements) {
		batch.Queue(movementQuery, uuid.NewString(), m.EntryID, m.LineNo, m.Account, m.Debit, m.Credit, m.Memo)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return models.JournalEntry{}, apperrors.NewAppError(500, "failed to insert movements of journal entry "+row.Folio, err)
	}
	return row, nil
}

// SubmitJournalEntry stores a manual journal entry in its own transaction.
func (r *PgxJournalRepository) SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Submission{}, err
	}
	defer r.Rollback(ctx, tx)

	row, err := r.insertEntry(ctx, tx, entry, nil)
	if err != nil {
		return domain.Submission{}, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return domain.Submission{}, err
	}
	return domain.Submission{
		Kind:        domain.KindJournalEntry,
		ID:          row.EntryID,
		Folio:       row.Folio,
		SubmittedAt: row.CreatedAt,
	}, nil
}

// ListJournalEntries retrieves a page of journal entries, newest first, using token-based pagination.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error) {
	limit := pagination.NormalizeLimit(filter.Limit)
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	query := `
		SELECT entry_id, folio, entry_date, memo, status, total_debit, total_credit, created_at, created_by
		FROM journal_entries
		WHERE TRUE
	`
	args := []interface{}{}
	if filter.Month > 0 {
		args = append(args, filter.Month)
		query += ` AND EXTRACT(MONTH FROM entry_date) = $` + strconv.Itoa(len(args))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		query += ` AND EXTRACT(YEAR FROM entry_date) = $` + strconv.Itoa(len(args))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (entry_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.Folio,
			&e.EntryDate,
			&e.Memo,
			&e.Status,
			&e.TotalDebit,
			&e.TotalCredit,
			&e.CreatedAt,
			&e.CreatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextToken *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextToken = &token
		entries = entries[:limit]
	}

	movements, err := r.movementsOf(ctx, entries)
	if err != nil {
		return nil, nil, err
	}
	result := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		result[i] = mapping.ToDomainJournalEntry(e, movements[e.EntryID])
	}
	return result, nextToken, nil
}

func (r *PgxJournalRepository) movementsOf(ctx context.Context, entries []models.JournalEntry) (map[string][]models.Movement, error) {
	out := make(map[string][]models.Movement, len(entries))
	if len(entries) == 0 {
		return out, nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}

	query := `
		SELECT movement_id, entry_id, line_no, account, debit, credit, memo
		FROM journal_movements
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal movements", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.MovementID, &m.EntryID, &m.LineNo, &m.Account, &m.Debit, &m.Credit, &m.Memo); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal movement row", err)
		}
		out[m.EntryID] = append(out[m.EntryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal movement rows", err)
	}
	return out, nil
}

// JournalPeriods counts entries per accounting month, newest first.
func (r *PgxJournalRepository) JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error) {
	query := `
		SELECT EXTRACT(YEAR FROM entry_date)::int AS year, EXTRACT(MONTH FROM entry_date)::int AS month, COUNT(*) AS count
		FROM journal_entries
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal periods", err)
	}
	periods, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalPeriod])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal periods", err)
	}
	return mapping.ToDomainJournalPeriods(periods), nil
}
