package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// WithdrawalRepository persists payout requests and their single terminal
// transition. GetForUpdate plus MarkProcessed inside one transaction is what
// makes concurrent approve/reject races have exactly one winner.
type WithdrawalRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Insert creates a pending request and returns it with id and created_at set.
func (r *WithdrawalRepository) Insert(ctx context.Context, req models.WithdrawalRequest) (models.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests
			(user_id, amount, destination_address, referrals_count, total_earnings, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_id, amount, destination_address, referrals_count, total_earnings,
		          status, created_at, processed_at, processed_by, admin_comment
	`

	var created models.WithdrawalRequest
	err := sqlx.GetContext(ctx, r.db, &created, query,
		req.UserID, req.Amount, req.DestinationAddress,
		req.ReferralsCount, req.TotalEarnings, models.WithdrawalStatusPending,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{req.UserID, req.Amount, req.DestinationAddress},
		"result", created.ID,
		"error", err,
	)

	return created, err
}

// GetForUpdate locks the request row for the duration of the transaction.
// Returns sql.ErrNoRows when the request does not exist.
func (r *WithdrawalRepository) GetForUpdate(ctx context.Context, exec sqlx.ExtContext, requestID int64) (models.WithdrawalRequest, error) {
	const query = `
		SELECT id, user_id, amount, destination_address, referrals_count, total_earnings,
		       status, created_at, processed_at, processed_by, admin_comment
		FROM withdrawal_requests
		WHERE id = $1
		FOR UPDATE
	`

	var req models.WithdrawalRequest
	err := sqlx.GetContext(ctx, exec, &req, query, requestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"result", req.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.WithdrawalRequest{}, sql.ErrNoRows
	}
	return req, err
}

// MarkProcessed writes the terminal status. The row must already be locked
// by GetForUpdate in the same transaction.
func (r *WithdrawalRepository) MarkProcessed(ctx context.Context, exec sqlx.ExtContext, requestID int64, status models.WithdrawalStatus, processedBy, comment string) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $2, processed_at = NOW(), processed_by = $3, admin_comment = NULLIF($4, '')
		WHERE id = $1
	`

	res, err := exec.ExecContext(ctx, query, requestID, status, processedBy, comment)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, status, processedBy},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ListByUser returns the user's requests, newest first, capped at limit.
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.WithdrawalRequest, error) {
	const query = `
		SELECT id, user_id, amount, destination_address, referrals_count, total_earnings,
		       status, created_at, processed_at, processed_by, admin_comment
		FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	var reqs []models.WithdrawalRequest
	err := r.db.SelectContext(ctx, &reqs, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}
