package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"casino-ledger-backend/internal/logger"
)

// AccountRepository owns the (user_id, currency, balance) rows. Accounts are
// created lazily by UPSERT on first touch. Mutating methods take an executor
// so the caller can run them inside its own transaction.
type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetBalance returns the current balance, 0 for unknown accounts. Pure read.
func (r *AccountRepository) GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	const query = `
		SELECT balance
		FROM accounts
		WHERE user_id = $1 AND currency = $2
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

// GetBalanceForUpdate locks the account row and returns its balance,
// 0 for unknown accounts (no row is created). Must run inside a transaction.
func (r *AccountRepository) GetBalanceForUpdate(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string) (float64, error) {
	const query = `
		SELECT balance
		FROM accounts
		WHERE user_id = $1 AND currency = $2
		FOR UPDATE
	`

	var balance float64
	err := sqlx.GetContext(ctx, exec, &balance, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

// AddToBalance performs an UPSERT: creates the account if not exists,
// otherwise increases the balance. Returns the new balance.
func (r *AccountRepository) AddToBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, amount float64) (float64, error) {
	query := `
		INSERT INTO accounts (account_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, exec, &balance, query, uuid.New(), userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// SubtractFromBalance decreases the balance in a single conditional UPDATE.
// A missing account or an insufficient balance both leave the condition
// unmatched and return sql.ErrNoRows without any mutation. Callers treat
// sql.ErrNoRows as insufficient funds.
func (r *AccountRepository) SubtractFromBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, amount float64) (float64, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, exec, &balance, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, sql.ErrNoRows
	}
	return balance, err
}

// SetBalance overwrites the balance of an existing account. Used only by the
// withdrawal approval flow to zero a balance under a row lock already taken
// with GetBalanceForUpdate.
func (r *AccountRepository) SetBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, balance float64) error {
	query := `
		UPDATE accounts
		SET balance = $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2
	`

	res, err := exec.ExecContext(ctx, query, userID, currency, balance)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, balance},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
