package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

var (
	// ErrAlreadyProcessed is returned when a request already has a terminal status.
	ErrAlreadyProcessed = errors.New("request already processed")
	// ErrRequestNotFound is returned when no request exists for the given id.
	ErrRequestNotFound = errors.New("request not found")
)

// ApprovalStore defines the request persistence the state machine needs.
type ApprovalStore interface {
	GetForUpdate(ctx context.Context, exec sqlx.ExtContext, requestID int64) (models.WithdrawalRequest, error)
	MarkProcessed(ctx context.Context, exec sqlx.ExtContext, requestID int64, status models.WithdrawalStatus, processedBy, comment string) error
}

// NotificationStore persists the durable notification row.
type NotificationStore interface {
	Insert(ctx context.Context, exec sqlx.ExtContext, n models.WithdrawalNotification) (int64, error)
}

// BalanceZeroer is the slice of the balance service the approval flow needs.
type BalanceZeroer interface {
	ZeroBalanceInTx(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, meta models.EntryMeta) (float64, *models.LedgerEntry, error)
	PublishCommitted(ctx context.Context, userID uuid.UUID, currency string, balance float64, entry *models.LedgerEntry)
}

// ApprovalResult reports the outcome of a processed decision.
type ApprovalResult struct {
	RequestID  int64
	UserID     uuid.UUID
	Status     models.WithdrawalStatus
	OldBalance float64
	NewBalance float64
}

// ApprovalService processes exactly one human decision per request, exactly
// once. The status flip, the balance zeroing and the notification row are a
// single transaction guarded by the request row lock: a concurrent
// approve/reject race has one winner, the loser observes ErrAlreadyProcessed.
//
// Approval zeroes the entire primary balance rather than debiting the
// requested amount: the off-platform settlement covers the whole balance.
type ApprovalService struct {
	db            TxBeginner
	requests      ApprovalStore
	notifications NotificationStore
	balance       BalanceZeroer
	users         UserGetter
	userSender    UserSender
	dispatcher    Dispatcher
}

// NewApprovalService creates a new ApprovalService. userSender and
// dispatcher may be nil; the user push is then skipped (the notification row
// stays visible through the unread endpoint).
func NewApprovalService(
	db TxBeginner,
	requests ApprovalStore,
	notifications NotificationStore,
	balance BalanceZeroer,
	users UserGetter,
	userSender UserSender,
	dispatcher Dispatcher,
) *ApprovalService {
	return &ApprovalService{
		db:            db,
		requests:      requests,
		notifications: notifications,
		balance:       balance,
		users:         users,
		userSender:    userSender,
		dispatcher:    dispatcher,
	}
}

// Approve marks the request approved, zeroes the user's primary balance and
// writes the notification row, all in one transaction.
func (s *ApprovalService) Approve(ctx context.Context, requestID int64, reviewer string) (*ApprovalResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin approval transaction", "request_id", requestID, "error", err)
		return nil, err
	}
	defer tx.Rollback()

	req, err := s.requests.GetForUpdate(ctx, tx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status != models.WithdrawalStatusPending {
		return nil, ErrAlreadyProcessed
	}

	if err := s.requests.MarkProcessed(ctx, tx, requestID, models.WithdrawalStatusApproved, reviewer, ""); err != nil {
		logger.Log.Errorw("failed to mark request approved", "request_id", requestID, "error", err)
		return nil, err
	}

	oldBalance, entry, err := s.balance.ZeroBalanceInTx(ctx, tx, req.UserID, models.CurrencyRUB, models.EntryMeta{
		Type:        models.EntryTypeSubtract,
		Source:      "admin",
		Description: fmt.Sprintf("withdrawal request #%d approved by %s", requestID, reviewer),
	})
	if err != nil {
		logger.Log.Errorw("failed to zero balance on approval", "request_id", requestID, "userID", req.UserID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("Your withdrawal request #%d for %.2f RUB has been approved. The payout is on its way to %s.",
		requestID, req.Amount, req.DestinationAddress)
	if _, err := s.notifications.Insert(ctx, tx, models.WithdrawalNotification{
		UserID:    req.UserID,
		RequestID: requestID,
		Status:    models.WithdrawalStatusApproved,
		Message:   message,
	}); err != nil {
		logger.Log.Errorw("failed to insert approval notification", "request_id", requestID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit approval", "request_id", requestID, "error", err)
		return nil, err
	}

	s.balance.PublishCommitted(ctx, req.UserID, models.CurrencyRUB, 0, entry)
	s.pushToUser(req.UserID, message)

	logger.Log.Infow("withdrawal approved", "request_id", requestID, "userID", req.UserID, "reviewer", reviewer, "old_balance", oldBalance)
	return &ApprovalResult{
		RequestID:  requestID,
		UserID:     req.UserID,
		Status:     models.WithdrawalStatusApproved,
		OldBalance: oldBalance,
		NewBalance: 0,
	}, nil
}

// Reject marks the request rejected and writes the notification row. No
// balance is touched.
func (s *ApprovalService) Reject(ctx context.Context, requestID int64, reviewer, comment string) (*ApprovalResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin rejection transaction", "request_id", requestID, "error", err)
		return nil, err
	}
	defer tx.Rollback()

	req, err := s.requests.GetForUpdate(ctx, tx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status != models.WithdrawalStatusPending {
		return nil, ErrAlreadyProcessed
	}

	if err := s.requests.MarkProcessed(ctx, tx, requestID, models.WithdrawalStatusRejected, reviewer, comment); err != nil {
		logger.Log.Errorw("failed to mark request rejected", "request_id", requestID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("Your withdrawal request #%d for %.2f RUB has been rejected.", requestID, req.Amount)
	if comment != "" {
		message += " Reason: " + comment
	}
	if _, err := s.notifications.Insert(ctx, tx, models.WithdrawalNotification{
		UserID:    req.UserID,
		RequestID: requestID,
		Status:    models.WithdrawalStatusRejected,
		Message:   message,
	}); err != nil {
		logger.Log.Errorw("failed to insert rejection notification", "request_id", requestID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit rejection", "request_id", requestID, "error", err)
		return nil, err
	}

	s.pushToUser(req.UserID, message)

	logger.Log.Infow("withdrawal rejected", "request_id", requestID, "userID", req.UserID, "reviewer", reviewer)
	return &ApprovalResult{
		RequestID: requestID,
		UserID:    req.UserID,
		Status:    models.WithdrawalStatusRejected,
	}, nil
}

// pushToUser delivers the resolution message to the user's linked Telegram
// chat, best-effort. Users without a linked chat rely on the unread
// notifications endpoint.
func (s *ApprovalService) pushToUser(userID uuid.UUID, message string) {
	if s.userSender == nil || s.dispatcher == nil {
		return
	}
	s.dispatcher.Go("user-result", func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil || !user.TelegramChatID.Valid {
			return nil
		}
		return s.userSender.SendUserResult(ctx, user.TelegramChatID.Int64, message)
	})
}
