package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"casino-ledger-backend/internal/logger"
)

// BalanceCacheRepository mirrors committed balances into Redis for cheap
// UI-facing reads. It is never consulted for sufficiency decisions; the
// database row is the source of truth for those.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for mirrored balances
}

// NewBalanceCacheRepository creates a new repository instance with optional TTL
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(userID uuid.UUID, currency string) string {
	return fmt.Sprintf("balance:%s:%s", userID, currency)
}

// Get fetches a mirrored balance.
func (r *BalanceCacheRepository) Get(ctx context.Context, userID uuid.UUID, currency string) (float64, error) {
	key := balanceKey(userID, currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("balance not cached for %s/%s", userID, currency)
		}
		return 0, err
	}

	balance, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"result", 0,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", balance,
		"error", nil,
	)

	return balance, nil
}

// Set mirrors a committed balance in Redis with expiration.
func (r *BalanceCacheRepository) Set(ctx context.Context, userID uuid.UUID, currency string, balance float64) error {
	key := balanceKey(userID, currency)
	err := r.client.Set(ctx, key, strconv.FormatFloat(balance, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"balance", balance,
		"result", "ok",
		"error", err,
	)

	return err
}
