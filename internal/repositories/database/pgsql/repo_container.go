package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentGateway routes each DocumentGateway call to the repository that owns it.
type documentGateway struct {
	journals  *PgxJournalRepository
	documents *PgxDocumentRepository
}

// NewDocumentGateway builds the Postgres-backed DocumentGateway on top of dbPool.
func NewDocumentGateway(dbPool *pgxpool.Pool) portsrepo.DocumentGateway {
	journals := newPgxJournalRepository(dbPool)
	return &documentGateway{
		journals:  journals,
		documents: newPgxDocumentRepository(dbPool, journals),
	}
}

var _ portsrepo.DocumentGateway = (*documentGateway)(nil)

func (g *documentGateway) SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error) {
	return g.journals.SubmitJournalEntry(ctx, entry)
}

func (g *documentGateway) SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error) {
	return g.documents.SubmitInvoice(ctx, invoice)
}

func (g *documentGateway) SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error) {
	return g.documents.SubmitPayrollReceipt(ctx, receipt)
}

func (g *documentGateway) SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error) {
	return g.documents.SubmitCashMovement(ctx, movement)
}

func (g *documentGateway) Counts(ctx context.Context) (domain.Counts, error) {
	return g.documents.Counts(ctx)
}

func (g *documentGateway) ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error) {
	return g.journals.ListJournalEntries(ctx, filter)
}

func (g *documentGateway) JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error) {
	return g.journals.JournalPeriods(ctx)
}
