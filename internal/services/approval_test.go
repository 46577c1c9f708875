package services_test

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casino-ledger-backend/internal/models"
	"casino-ledger-backend/internal/services"
)

type approvalFixture struct {
	svc           *services.ApprovalService
	requests      *services.MockApprovalStore
	notifications *services.MockNotificationStore
	balance       *services.MockBalanceZeroer
}

func newApprovalFixture(t *testing.T, ctrl *gomock.Controller) (*approvalFixture, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTxMockDB(t)

	f := &approvalFixture{
		requests:      services.NewMockApprovalStore(ctrl),
		notifications: services.NewMockNotificationStore(ctrl),
		balance:       services.NewMockBalanceZeroer(ctrl),
	}
	f.svc = services.NewApprovalService(db, f.requests, f.notifications, f.balance, services.NewMockUserGetter(ctrl), nil, nil)
	return f, mock
}

func TestApprovalService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mock := newApprovalFixture(t, ctrl)

	userID := uuid.New()
	pending := models.WithdrawalRequest{
		ID:                 7,
		UserID:             userID,
		Amount:             3000,
		DestinationAddress: "Taddr",
		Status:             models.WithdrawalStatusPending,
	}

	mock.ExpectBegin()
	f.requests.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(7)).Return(pending, nil)
	f.requests.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), int64(7), models.WithdrawalStatusApproved, "ops", "").Return(nil)

	entry := &models.LedgerEntry{EntryID: uuid.NewString(), UserID: userID, Delta: -4500}
	f.balance.EXPECT().
		ZeroBalanceInTx(gomock.Any(), gomock.Any(), userID, models.CurrencyRUB, gomock.Any()).
		Return(4500.0, entry, nil)

	f.notifications.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, n models.WithdrawalNotification) (int64, error) {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, int64(7), n.RequestID)
			assert.Equal(t, models.WithdrawalStatusApproved, n.Status)
			assert.Contains(t, n.Message, "approved")
			return 1, nil
		})
	mock.ExpectCommit()
	f.balance.EXPECT().PublishCommitted(gomock.Any(), userID, models.CurrencyRUB, 0.0, entry)

	result, err := f.svc.Approve(context.Background(), 7, "ops")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusApproved, result.Status)
	assert.Equal(t, 4500.0, result.OldBalance)
	assert.Equal(t, 0.0, result.NewBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalService_Approve_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mock := newApprovalFixture(t, ctrl)

	mock.ExpectBegin()
	f.requests.EXPECT().
		GetForUpdate(gomock.Any(), gomock.Any(), int64(7)).
		Return(models.WithdrawalRequest{ID: 7, Status: models.WithdrawalStatusApproved}, nil)
	mock.ExpectRollback()

	// The loser of an approve/reject race must not touch the balance.
	_, err := f.svc.Approve(context.Background(), 7, "ops")
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalService_Approve_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mock := newApprovalFixture(t, ctrl)

	mock.ExpectBegin()
	f.requests.EXPECT().
		GetForUpdate(gomock.Any(), gomock.Any(), int64(99)).
		Return(models.WithdrawalRequest{}, sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := f.svc.Approve(context.Background(), 99, "ops")
	assert.ErrorIs(t, err, services.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mock := newApprovalFixture(t, ctrl)

	userID := uuid.New()
	pending := models.WithdrawalRequest{
		ID:     8,
		UserID: userID,
		Amount: 2500,
		Status: models.WithdrawalStatusPending,
	}

	mock.ExpectBegin()
	f.requests.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(8)).Return(pending, nil)
	f.requests.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), int64(8), models.WithdrawalStatusRejected, "ops", "address flagged").Return(nil)
	f.notifications.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, n models.WithdrawalNotification) (int64, error) {
			assert.Equal(t, models.WithdrawalStatusRejected, n.Status)
			assert.Contains(t, n.Message, "rejected")
			assert.Contains(t, n.Message, "address flagged")
			return 2, nil
		})
	mock.ExpectCommit()

	// Rejection never touches the balance: no ZeroBalanceInTx expectation.
	result, err := f.svc.Reject(context.Background(), 8, "ops", "address flagged")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusRejected, result.Status)
	assert.Equal(t, userID, result.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalService_Reject_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mock := newApprovalFixture(t, ctrl)

	mock.ExpectBegin()
	f.requests.EXPECT().
		GetForUpdate(gomock.Any(), gomock.Any(), int64(8)).
		Return(models.WithdrawalRequest{ID: 8, Status: models.WithdrawalStatusRejected}, nil)
	mock.ExpectRollback()

	_, err := f.svc.Reject(context.Background(), 8, "ops", "")
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
