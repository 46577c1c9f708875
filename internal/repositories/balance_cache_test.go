package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"casino-ledger-backend/internal/models"
)

func TestBalanceCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewBalanceCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get balance", func(t *testing.T) {
		userID := uuid.New()

		err := repo.Set(ctx, userID, models.CurrencyRUB, 1234.56)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, userID, models.CurrencyRUB)
		assert.NoError(t, err)
		assert.Equal(t, 1234.56, got)
	})

	t.Run("Currencies are cached independently", func(t *testing.T) {
		userID := uuid.New()

		assert.NoError(t, repo.Set(ctx, userID, models.CurrencyRUB, 500))
		assert.NoError(t, repo.Set(ctx, userID, models.CurrencyChips, 42))

		rub, err := repo.Get(ctx, userID, models.CurrencyRUB)
		assert.NoError(t, err)
		assert.Equal(t, 500.0, rub)

		chips, err := repo.Get(ctx, userID, models.CurrencyChips)
		assert.NoError(t, err)
		assert.Equal(t, 42.0, chips)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New(), models.CurrencyRUB)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "balance not cached")
	})

	t.Run("Cached value expires", func(t *testing.T) {
		userID := uuid.New()

		assert.NoError(t, repo.Set(ctx, userID, models.CurrencyRUB, 777))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, userID, models.CurrencyRUB)
		assert.Error(t, err)
	})
}
