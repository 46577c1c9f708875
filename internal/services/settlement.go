package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

var (
	// ErrBetBelowMinimum is returned when the stake is under the configured minimum.
	ErrBetBelowMinimum = errors.New("bet below minimum")
	// ErrRoundNotFound is returned when no open round exists for the given id.
	ErrRoundNotFound = errors.New("round not found")
	// ErrRoundSettled is returned when a round has already been resolved.
	ErrRoundSettled = errors.New("round already settled")
)

// roundState is the per-round settlement lifecycle:
// Idle -> BetReserved -> Resolved. A round never re-enters BetReserved.
type roundState int

const (
	roundBetReserved roundState = iota
	roundResolved
)

// Round tracks one game round from bet reservation to settlement.
type Round struct {
	ID       uuid.UUID `json:"round_id"`
	UserID   uuid.UUID `json:"user_id"`
	Game     string    `json:"game"`
	Currency string    `json:"currency"`
	Bet      float64   `json:"bet"`

	state roundState
}

// BalanceOperator is the balance surface the settlement adapter consumes.
// *BalanceService implements it.
type BalanceOperator interface {
	GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
	HasSufficient(ctx context.Context, userID uuid.UUID, currency string, amount float64) (bool, error)
	Debit(ctx context.Context, userID uuid.UUID, currency string, amount float64, meta models.EntryMeta) (bool, error)
	Credit(ctx context.Context, userID uuid.UUID, currency string, amount float64, meta models.EntryMeta) (float64, error)
}

// SettlementService is the single betting contract all games use. A bet is
// reserved (debited) before a round starts and settled exactly once when it
// ends; the round table enforces the at-most-one-settlement rule, the
// balance service's atomicity makes a retried settlement safe.
//
// Open rounds are held in memory until settled. Round liveness is owned by
// the game layer: every round it opens must end in a PayWinnings call, with
// a zero win amount for a loss and the stake as the win amount for a
// cancelled round. The win amount is not validated against game outcomes;
// the game layer is the authority on what a round pays.
type SettlementService struct {
	balance BalanceOperator
	minBet  float64

	mu     sync.Mutex
	rounds map[uuid.UUID]*Round
}

// NewSettlementService creates a new SettlementService with the configured
// minimum bet policy.
func NewSettlementService(balance BalanceOperator, minBet float64) *SettlementService {
	return &SettlementService{
		balance: balance,
		minBet:  minBet,
		rounds:  make(map[uuid.UUID]*Round),
	}
}

// CanPlaceBet reports whether a bet of amount is currently allowed: it must
// meet the minimum-bet policy and the balance must cover it. The answer is
// advisory; PlaceBet re-checks under the row lock.
func (s *SettlementService) CanPlaceBet(ctx context.Context, userID uuid.UUID, currency string, amount float64) (bool, error) {
	if err := validateMutation(currency, amount); err != nil {
		return false, err
	}
	if amount < s.minBet {
		return false, nil
	}
	return s.balance.HasSufficient(ctx, userID, currency, amount)
}

// PlaceBet reserves the stake and opens a round. Returns ErrInsufficientFunds
// when the debit fails; the round must not start in that case.
func (s *SettlementService) PlaceBet(ctx context.Context, userID uuid.UUID, game, currency string, amount float64) (*Round, error) {
	if err := validateMutation(currency, amount); err != nil {
		return nil, err
	}
	if amount < s.minBet {
		return nil, ErrBetBelowMinimum
	}

	ok, err := s.balance.Debit(ctx, userID, currency, amount, models.EntryMeta{
		Type:        models.EntryTypeBet,
		Source:      game,
		Description: "bet reserved",
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientFunds
	}

	round := &Round{
		ID:       uuid.New(),
		UserID:   userID,
		Game:     game,
		Currency: currency,
		Bet:      amount,
		state:    roundBetReserved,
	}

	s.mu.Lock()
	s.rounds[round.ID] = round
	s.mu.Unlock()

	logger.Log.Infow("bet reserved", "round_id", round.ID, "userID", userID, "game", game, "amount", amount)
	return round, nil
}

// PayWinnings settles a round exactly once. A zero win amount resolves the
// round without a balance write or ledger entry; the returned balance is the
// current one either way. A committed bet is never rolled back: a cancelled
// round is settled with the stake as the win amount, which is a compensating
// credit.
func (s *SettlementService) PayWinnings(ctx context.Context, roundID uuid.UUID, winAmount float64) (float64, error) {
	if winAmount < 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	round, ok := s.rounds[roundID]
	if !ok {
		s.mu.Unlock()
		return 0, ErrRoundNotFound
	}
	if round.state != roundBetReserved {
		s.mu.Unlock()
		return 0, ErrRoundSettled
	}
	round.state = roundResolved
	s.mu.Unlock()

	if winAmount == 0 {
		logger.Log.Infow("round settled as loss", "round_id", roundID, "userID", round.UserID, "game", round.Game)
		s.forget(roundID)
		return s.balance.GetBalance(ctx, round.UserID, round.Currency)
	}

	newBalance, err := s.balance.Credit(ctx, round.UserID, round.Currency, winAmount, models.EntryMeta{
		Type:        models.EntryTypeWin,
		Source:      round.Game,
		Description: "round winnings",
	})
	if err != nil {
		// Keep the round resolvable so the settlement can be retried.
		s.mu.Lock()
		round.state = roundBetReserved
		s.mu.Unlock()
		logger.Log.Errorw("failed to pay winnings", "round_id", roundID, "userID", round.UserID, "error", err)
		return 0, err
	}

	logger.Log.Infow("round settled", "round_id", roundID, "userID", round.UserID, "game", round.Game, "win", winAmount)
	s.forget(roundID)
	return newBalance, nil
}

// Round returns the open round with the given id, if any.
func (s *SettlementService) Round(roundID uuid.UUID) (*Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[roundID]
	return round, ok
}

func (s *SettlementService) forget(roundID uuid.UUID) {
	s.mu.Lock()
	delete(s.rounds, roundID)
	s.mu.Unlock()
}
