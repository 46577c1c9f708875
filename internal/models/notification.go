package models

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalNotification is the durable record of a resolved request,
// created in the same transaction as the status transition. Only IsRead
// is ever mutated afterwards.
type WithdrawalNotification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	RequestID int64            `json:"request_id" db:"request_id"`
	Status    WithdrawalStatus `json:"status" db:"status"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
