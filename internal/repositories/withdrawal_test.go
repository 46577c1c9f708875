package repositories

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/models"
)

func TestWithdrawalInsert(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "payout1")
	repo := NewWithdrawalRepository(db)

	created, err := repo.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             3000,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
		ReferralsCount:     5,
		TotalEarnings:      12500,
	})
	assert.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, models.WithdrawalStatusPending, created.Status)
	assert.Equal(t, 5, created.ReferralsCount)
	assert.Equal(t, 12500.0, created.TotalEarnings)
	assert.False(t, created.ProcessedAt.Valid)
	assert.False(t, created.ProcessedBy.Valid)
	assert.False(t, created.AdminComment.Valid)
}

func TestWithdrawalMarkProcessed(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "payout2")
	repo := NewWithdrawalRepository(db)

	created, err := repo.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             2500,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
	})
	assert.NoError(t, err)

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	locked, err := repo.GetForUpdate(ctx, tx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusPending, locked.Status)

	err = repo.MarkProcessed(ctx, tx, created.ID, models.WithdrawalStatusRejected, "admin_anna", "address flagged")
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	reqs, err := repo.ListByUser(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, models.WithdrawalStatusRejected, reqs[0].Status)
	assert.True(t, reqs[0].ProcessedAt.Valid)
	assert.Equal(t, "admin_anna", reqs[0].ProcessedBy.String)
	assert.Equal(t, "address flagged", reqs[0].AdminComment.String)
}

func TestWithdrawalMarkProcessed_EmptyCommentStaysNull(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "payout3")
	repo := NewWithdrawalRepository(db)

	created, err := repo.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             2000,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
	})
	assert.NoError(t, err)

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)
	_, err = repo.GetForUpdate(ctx, tx, created.ID)
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkProcessed(ctx, tx, created.ID, models.WithdrawalStatusApproved, "admin_bob", ""))
	assert.NoError(t, tx.Commit())

	reqs, err := repo.ListByUser(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.False(t, reqs[0].AdminComment.Valid)
}

func TestWithdrawalGetForUpdate_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWithdrawalRepository(db)

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)
	defer tx.Rollback()

	_, err = repo.GetForUpdate(ctx, tx, 99999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWithdrawalListByUser(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "payout4")
	otherID := insertUser(t, db, "payout5")
	repo := NewWithdrawalRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, models.WithdrawalRequest{
			UserID:             userID,
			Amount:             2000 + float64(i)*100,
			DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
		})
		assert.NoError(t, err)
	}
	_, err := repo.Insert(ctx, models.WithdrawalRequest{
		UserID:             otherID,
		Amount:             5000,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
	})
	assert.NoError(t, err)

	t.Run("Newest first, own requests only", func(t *testing.T) {
		reqs, err := repo.ListByUser(ctx, userID, 10)
		assert.NoError(t, err)
		assert.Len(t, reqs, 3)
		assert.Equal(t, 2200.0, reqs[0].Amount)
		assert.Equal(t, 2000.0, reqs[len(reqs)-1].Amount)
	})

	t.Run("Limit caps the result", func(t *testing.T) {
		reqs, err := repo.ListByUser(ctx, userID, 2)
		assert.NoError(t, err)
		assert.Len(t, reqs, 2)
	})
}

// Concurrent approve and reject of the same request: the row lock serializes
// them, exactly one sees pending and writes the terminal status.
func TestWithdrawalDecisionRace(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "payout6")
	repo := NewWithdrawalRepository(db)

	created, err := repo.Insert(ctx, models.WithdrawalRequest{
		UserID:             userID,
		Amount:             4000,
		DestinationAddress: "TXk3FLSkzC1BgbNkzemKfwLVvZdE1rhY5w",
	})
	assert.NoError(t, err)

	decide := func(status models.WithdrawalStatus) bool {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return false
		}
		defer tx.Rollback()

		req, err := repo.GetForUpdate(ctx, tx, created.ID)
		if err != nil || req.Status != models.WithdrawalStatusPending {
			return false
		}
		if err := repo.MarkProcessed(ctx, tx, created.ID, status, "admin", ""); err != nil {
			return false
		}
		return tx.Commit() == nil
	}

	var wins int64
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if decide(models.WithdrawalStatusApproved) {
			atomic.AddInt64(&wins, 1)
		}
	}()
	go func() {
		defer wg.Done()
		if decide(models.WithdrawalStatusRejected) {
			atomic.AddInt64(&wins, 1)
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(1), wins)

	reqs, err := repo.ListByUser(ctx, userID, 1)
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Contains(t, []models.WithdrawalStatus{models.WithdrawalStatusApproved, models.WithdrawalStatusRejected}, reqs[0].Status)
}
