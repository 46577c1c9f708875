package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

var (
	// ErrBelowMinimum is returned when the requested amount is under the policy minimum.
	ErrBelowMinimum = errors.New("amount below minimum withdrawal")
	// ErrInvalidAddress is returned when the destination address fails the format check.
	ErrInvalidAddress = errors.New("invalid destination address")
)

// WithdrawalStore defines the request persistence the service needs.
type WithdrawalStore interface {
	Insert(ctx context.Context, req models.WithdrawalRequest) (models.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.WithdrawalRequest, error)
}

// UserGetter loads user records for request snapshots.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// BalanceReader is the read-only balance surface. *BalanceService implements it.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
}

// WithdrawalPolicy holds the payout policy constants. All of it is
// configuration, not code.
type WithdrawalPolicy struct {
	MinAmount     float64 // e.g. 2000
	AddressPrefix string  // e.g. "T"
	AddressLength int     // e.g. 34, prefix included
	HistoryLimit  int     // cap for the history endpoint, e.g. 50
}

// WithdrawalService creates payout requests. Creation only checks the
// balance, it does not debit: the balance is touched on approval alone.
type WithdrawalService struct {
	balance    BalanceReader
	requests   WithdrawalStore
	users      UserGetter
	reviewer   ReviewSender
	dispatcher Dispatcher
	policy     WithdrawalPolicy
}

// NewWithdrawalService creates a new WithdrawalService. reviewer and
// dispatcher may be nil; the reviewer push is then skipped (reviewers poll).
func NewWithdrawalService(
	balance BalanceReader,
	requests WithdrawalStore,
	users UserGetter,
	reviewer ReviewSender,
	dispatcher Dispatcher,
	policy WithdrawalPolicy,
) *WithdrawalService {
	return &WithdrawalService{
		balance:    balance,
		requests:   requests,
		users:      users,
		reviewer:   reviewer,
		dispatcher: dispatcher,
		policy:     policy,
	}
}

func (s *WithdrawalService) validAddress(address string) bool {
	if len(address) != s.policy.AddressLength {
		return false
	}
	return strings.HasPrefix(address, s.policy.AddressPrefix)
}

// CreateRequest validates and persists a pending withdrawal request, then
// pushes it to the reviewer pool. The push is decoupled: its failure never
// fails the request.
func (s *WithdrawalService) CreateRequest(ctx context.Context, userID uuid.UUID, amount float64, destinationAddress string) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !s.validAddress(destinationAddress) {
		return nil, ErrInvalidAddress
	}
	if amount < s.policy.MinAmount {
		return nil, ErrBelowMinimum
	}

	balance, err := s.balance.GetBalance(ctx, userID, models.CurrencyRUB)
	if err != nil {
		logger.Log.Errorw("failed to read balance for withdrawal request", "userID", userID, "error", err)
		return nil, err
	}
	if balance < amount {
		return nil, ErrInsufficientFunds
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for withdrawal request", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	created, err := s.requests.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             amount,
		DestinationAddress: destinationAddress,
		ReferralsCount:     user.ReferralsCount,
		TotalEarnings:      user.TotalEarnings,
	})
	if err != nil {
		logger.Log.Errorw("failed to persist withdrawal request", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	logger.Log.Infow("withdrawal request created", "request_id", created.ID, "userID", userID, "amount", amount)

	if s.reviewer != nil && s.dispatcher != nil {
		req, u := created, *user
		s.dispatcher.Go("review-request", func(ctx context.Context) error {
			return s.reviewer.SendReviewRequest(ctx, req, u)
		})
	}

	return &created, nil
}

// History returns the caller's requests, newest first, capped by policy.
func (s *WithdrawalService) History(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalRequest, error) {
	return s.requests.ListByUser(ctx, userID, s.policy.HistoryLimit)
}
