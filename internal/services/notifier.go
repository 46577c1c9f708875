package services

import (
	"context"
	"time"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// ReviewSender pushes a new pending request to the human reviewer pool.
type ReviewSender interface {
	SendReviewRequest(ctx context.Context, req models.WithdrawalRequest, user models.UserDB) error
}

// UserSender pushes a resolution message to the requesting user's chat.
type UserSender interface {
	SendUserResult(ctx context.Context, chatID int64, message string) error
}

// Dispatcher runs a delivery attempt decoupled from the transaction that
// produced it. Implementations must never block the caller.
type Dispatcher interface {
	Go(name string, fn func(ctx context.Context) error)
}

// RetryDispatcher retries failed deliveries with a doubling delay.
// At-least-once within the attempt budget; a final failure is logged, never
// propagated. The durable notification row remains the source of truth.
type RetryDispatcher struct {
	attempts int
	delay    time.Duration
	timeout  time.Duration
}

// NewRetryDispatcher creates a dispatcher with the given attempt budget and
// initial retry delay.
func NewRetryDispatcher(attempts int, delay time.Duration) *RetryDispatcher {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryDispatcher{
		attempts: attempts,
		delay:    delay,
		timeout:  30 * time.Second,
	}
}

// Go runs fn in the background, retrying on error.
func (d *RetryDispatcher) Go(name string, fn func(ctx context.Context) error) {
	go func() {
		delay := d.delay
		for attempt := 1; attempt <= d.attempts; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			err := fn(ctx)
			cancel()
			if err == nil {
				return
			}
			logger.Log.Warnw("delivery attempt failed", "name", name, "attempt", attempt, "error", err)
			if attempt < d.attempts {
				time.Sleep(delay)
				delay *= 2
			}
		}
		logger.Log.Errorw("delivery abandoned", "name", name, "attempts", d.attempts)
	}()
}
