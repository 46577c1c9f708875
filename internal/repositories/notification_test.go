package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/models"
)

func TestNotificationLifecycle(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "notif1")
	withdrawals := NewWithdrawalRepository(db)
	repo := NewNotificationRepository(db)

	req, err := withdrawals.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             3000,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
	})
	assert.NoError(t, err)

	firstID, err := repo.Insert(ctx, db, models.WithdrawalNotification{
		UserID:    userID,
		RequestID: req.ID,
		Status:    models.WithdrawalStatusApproved,
		Message:   "Your withdrawal request has been approved.",
	})
	assert.NoError(t, err)
	assert.Greater(t, firstID, int64(0))

	secondID, err := repo.Insert(ctx, db, models.WithdrawalNotification{
		UserID:    userID,
		RequestID: req.ID,
		Status:    models.WithdrawalStatusRejected,
		Message:   "Your withdrawal request has been rejected.",
	})
	assert.NoError(t, err)

	t.Run("ListUnread newest first", func(t *testing.T) {
		notifications, err := repo.ListUnread(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, notifications, 2)
		assert.Equal(t, secondID, notifications[0].ID)
		assert.False(t, notifications[0].IsRead)
	})

	t.Run("MarkRead hides one", func(t *testing.T) {
		err := repo.MarkRead(ctx, userID, firstID)
		assert.NoError(t, err)

		notifications, err := repo.ListUnread(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		assert.Equal(t, secondID, notifications[0].ID)
	})

	t.Run("MarkRead ignores other users", func(t *testing.T) {
		err := repo.MarkRead(ctx, uuid.New(), secondID)
		assert.NoError(t, err)

		notifications, err := repo.ListUnread(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("MarkAllRead drains the list", func(t *testing.T) {
		err := repo.MarkAllRead(ctx, userID)
		assert.NoError(t, err)

		notifications, err := repo.ListUnread(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, notifications)
	})
}
