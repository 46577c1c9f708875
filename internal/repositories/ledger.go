package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// LedgerRepository appends immutable balance-mutation entries. Appends take
// an executor so the entry commits or aborts together with the balance
// change it records. Entries are never updated or deleted; the display
// queries are capped but the full history stays for reconciliation.
type LedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append inserts one ledger entry and returns its row id.
func (r *LedgerRepository) Append(ctx context.Context, exec sqlx.ExtContext, entry models.LedgerEntry) (int64, error) {
	query := `
		INSERT INTO ledger_entries (entry_id, user_id, currency, delta, type, source, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query,
		entry.EntryID, entry.UserID, entry.Currency, entry.Delta,
		entry.Type, entry.Source, entry.Description,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entry.UserID, entry.Currency, entry.Delta, entry.Type, entry.Source},
		"result", id,
		"error", err,
	)

	return id, err
}

// ListRecent returns the user's most recent entries, newest first.
func (r *LedgerRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	const query = `
		SELECT id, entry_id, user_id, currency, delta, type, source, description, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	var entries []models.LedgerEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// SumDeltas returns the ledger sum for a (user, currency) pair. Used by the
// reconciliation check: the sum must equal the account balance.
func (r *LedgerRepository) SumDeltas(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(delta), 0)
		FROM ledger_entries
		WHERE user_id = $1 AND currency = $2
	`

	var sum float64
	err := r.db.GetContext(ctx, &sum, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", sum,
		"error", err,
	)

	return sum, err
}
