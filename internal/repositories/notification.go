package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// NotificationRepository stores withdrawal result notifications. The row is
// the durable source of truth; outbound pushes are best-effort on top of it.
type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Insert creates a notification row, normally inside the approval transaction.
func (r *NotificationRepository) Insert(ctx context.Context, exec sqlx.ExtContext, n models.WithdrawalNotification) (int64, error) {
	query := `
		INSERT INTO withdrawal_notifications (user_id, request_id, status, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query, n.UserID, n.RequestID, n.Status, n.Message)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{n.UserID, n.RequestID, n.Status},
		"result", id,
		"error", err,
	)

	return id, err
}

// ListUnread returns the user's unread notifications, newest first.
func (r *NotificationRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalNotification, error) {
	const query = `
		SELECT id, user_id, request_id, status, message, is_read, created_at
		FROM withdrawal_notifications
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC, id DESC
	`

	var notifications []models.WithdrawalNotification
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

// MarkRead flips is_read for one of the user's notifications. Idempotent.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, notificationID int64) error {
	query := `
		UPDATE withdrawal_notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, notificationID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{notificationID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkAllRead flips is_read for every unread notification of the user. Idempotent.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE withdrawal_notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
