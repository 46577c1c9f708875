package services

import (
	"context"

	"github.com/google/uuid"

	"casino-ledger-backend/internal/models"
)

// NotificationReader defines the notification reads and read-flag flips the
// service needs.
type NotificationReader interface {
	ListUnread(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalNotification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NotificationService exposes the user-facing notification inbox.
type NotificationService struct {
	repo NotificationReader
}

func NewNotificationService(repo NotificationReader) *NotificationService {
	return &NotificationService{repo: repo}
}

// Unread returns the caller's unread notifications, newest first.
func (s *NotificationService) Unread(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalNotification, error) {
	return s.repo.ListUnread(ctx, userID)
}

// MarkRead flips a single notification to read. Idempotent; marking a
// notification that is already read or does not belong to the caller is a
// no-op.
func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, notificationID int64) error {
	return s.repo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead flips all of the caller's notifications to read. Idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
