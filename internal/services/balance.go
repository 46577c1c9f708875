package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

var (
	// ErrInsufficientFunds is the expected outcome of a debit exceeding the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for non-positive or, for chips, fractional amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCurrency is returned for unsupported currency codes.
	ErrInvalidCurrency = errors.New("invalid currency")
)

// AccountStore defines the balance-row operations the service needs.
type AccountStore interface {
	GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
	GetBalanceForUpdate(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string) (float64, error)
	AddToBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, amount float64) (float64, error)
	SubtractFromBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, amount float64) (float64, error)
	SetBalance(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, balance float64) error
}

// LedgerStore defines the ledger operations the service needs.
type LedgerStore interface {
	Append(ctx context.Context, exec sqlx.ExtContext, entry models.LedgerEntry) (int64, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// BalanceCache mirrors committed balances for display reads.
type BalanceCache interface {
	Get(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
	Set(ctx context.Context, userID uuid.UUID, currency string, balance float64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TxBeginner starts database transactions. *sqlx.DB satisfies it.
type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// BalanceService is the sole authority over balances. Every mutation runs as
// one transaction holding the account row lock: balance change and ledger
// append commit together or not at all. Concurrent mutations for the same
// (user, currency) serialize on that row lock; different users proceed in
// parallel.
type BalanceService struct {
	db          TxBeginner
	accounts    AccountStore
	ledger      LedgerStore
	cache       BalanceCache
	kafkaWriter KafkaWriter
}

// NewBalanceService creates a new BalanceService. cache and kafkaWriter may
// be nil; both are best-effort side channels.
func NewBalanceService(
	db TxBeginner,
	accounts AccountStore,
	ledger LedgerStore,
	cache BalanceCache,
	kafkaWriter KafkaWriter,
) *BalanceService {
	return &BalanceService{
		db:          db,
		accounts:    accounts,
		ledger:      ledger,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

func validateMutation(currency string, amount float64) error {
	if !models.ValidCurrency(currency) {
		return ErrInvalidCurrency
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if currency == models.CurrencyChips && amount != math.Trunc(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// GetBalance returns the authoritative balance, 0 for unknown users.
func (s *BalanceService) GetBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	if !models.ValidCurrency(currency) {
		return 0, ErrInvalidCurrency
	}
	return s.accounts.GetBalance(ctx, userID, currency)
}

// GetDisplayBalance serves UI reads from the Redis mirror, falling back to
// the database and backfilling the mirror on a miss. Never used for
// sufficiency decisions.
func (s *BalanceService) GetDisplayBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	if s.cache != nil {
		if balance, err := s.cache.Get(ctx, userID, currency); err == nil {
			return balance, nil
		}
	}

	balance, err := s.accounts.GetBalance(ctx, userID, currency)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, currency, balance); err != nil {
			logger.Log.Warnw("failed to backfill balance mirror", "userID", userID, "currency", currency, "error", err)
		}
	}
	return balance, nil
}

// HasSufficient reports whether a debit of amount would currently succeed.
// Pure read; callers must not cache the answer across decisions.
func (s *BalanceService) HasSufficient(ctx context.Context, userID uuid.UUID, currency string, amount float64) (bool, error) {
	if err := validateMutation(currency, amount); err != nil {
		return false, err
	}
	balance, err := s.accounts.GetBalance(ctx, userID, currency)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// Credit increases the balance and appends a ledger entry, atomically.
// Returns the new balance.
func (s *BalanceService) Credit(ctx context.Context, userID uuid.UUID, currency string, amount float64, meta models.EntryMeta) (float64, error) {
	if err := validateMutation(currency, amount); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin credit transaction", "userID", userID, "error", err)
		return 0, err
	}
	defer tx.Rollback()

	newBalance, err := s.accounts.AddToBalance(ctx, tx, userID, currency, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit balance", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	entry := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		Currency:    currency,
		Delta:       amount,
		Type:        meta.Type,
		Source:      meta.Source,
		Description: meta.Description,
	}
	if _, err := s.ledger.Append(ctx, tx, entry); err != nil {
		logger.Log.Errorw("failed to append credit ledger entry", "userID", userID, "error", err)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit credit", "userID", userID, "error", err)
		return 0, err
	}

	s.PublishCommitted(ctx, userID, currency, newBalance, &entry)
	return newBalance, nil
}

// Debit decreases the balance and appends a ledger entry, atomically.
// Returns false without any mutation when the balance is insufficient.
func (s *BalanceService) Debit(ctx context.Context, userID uuid.UUID, currency string, amount float64, meta models.EntryMeta) (bool, error) {
	if err := validateMutation(currency, amount); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin debit transaction", "userID", userID, "error", err)
		return false, err
	}
	defer tx.Rollback()

	newBalance, err := s.accounts.SubtractFromBalance(ctx, tx, userID, currency, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		logger.Log.Errorw("failed to debit balance", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return false, err
	}

	entry := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		Currency:    currency,
		Delta:       -amount,
		Type:        meta.Type,
		Source:      meta.Source,
		Description: meta.Description,
	}
	if _, err := s.ledger.Append(ctx, tx, entry); err != nil {
		logger.Log.Errorw("failed to append debit ledger entry", "userID", userID, "error", err)
		return false, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit debit", "userID", userID, "error", err)
		return false, err
	}

	s.PublishCommitted(ctx, userID, currency, newBalance, &entry)
	return true, nil
}

// ZeroBalanceInTx resets the balance to 0 inside the caller's transaction,
// appending the matching ledger entry. Returns the balance before the reset
// and the appended entry (nil when the balance was already 0). The caller is
// responsible for committing and then calling PublishCommitted.
func (s *BalanceService) ZeroBalanceInTx(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, currency string, meta models.EntryMeta) (float64, *models.LedgerEntry, error) {
	old, err := s.accounts.GetBalanceForUpdate(ctx, exec, userID, currency)
	if err != nil {
		return 0, nil, err
	}
	if old == 0 {
		return 0, nil, nil
	}

	if err := s.accounts.SetBalance(ctx, exec, userID, currency, 0); err != nil {
		return 0, nil, err
	}

	entry := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		Currency:    currency,
		Delta:       -old,
		Type:        meta.Type,
		Source:      meta.Source,
		Description: meta.Description,
	}
	if _, err := s.ledger.Append(ctx, exec, entry); err != nil {
		return 0, nil, err
	}

	return old, &entry, nil
}

// ListRecentEntries returns the user's recent ledger entries, newest first.
func (s *BalanceService) ListRecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	return s.ledger.ListRecent(ctx, userID, limit)
}

// PublishCommitted mirrors a committed balance into Redis and publishes the
// ledger entry to Kafka. Both are best-effort and never affect the
// transaction that produced them.
func (s *BalanceService) PublishCommitted(ctx context.Context, userID uuid.UUID, currency string, balance float64, entry *models.LedgerEntry) {
	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, currency, balance); err != nil {
			logger.Log.Warnw("failed to mirror balance", "userID", userID, "currency", currency, "error", err)
		}
	}
	if entry != nil {
		s.publishEntry(ctx, *entry)
	}
}

// publishEntry publishes a ledger entry to Kafka.
func (s *BalanceService) publishEntry(ctx context.Context, entry models.LedgerEntry) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "entry_id", entry.EntryID)
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger entry for Kafka", "entry_id", entry.EntryID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.EntryID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger entry to Kafka", "entry_id", entry.EntryID, "error", err)
	} else {
		logger.Log.Infow("Ledger entry published to Kafka", "entry_id", entry.EntryID, "delta", entry.Delta)
	}
}
