package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus is the state of a payout request. The only legal
// transitions are pending->approved and pending->rejected, exactly once.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// WithdrawalRequest is a user's ask to convert platform balance into an
// external payout, reviewed by a human. Amount is fixed at creation.
type WithdrawalRequest struct {
	ID                 int64            `json:"id" db:"id"`
	UserID             uuid.UUID        `json:"user_id" db:"user_id"`
	Amount             float64          `json:"amount" db:"amount"`
	DestinationAddress string           `json:"destination_address" db:"destination_address"`
	ReferralsCount     int              `json:"referrals_count" db:"referrals_count"`
	TotalEarnings      float64          `json:"total_earnings" db:"total_earnings"`
	Status             WithdrawalStatus `json:"status" db:"status"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	ProcessedAt        sql.NullTime     `json:"processed_at" db:"processed_at"`
	ProcessedBy        sql.NullString   `json:"processed_by" db:"processed_by"`
	AdminComment       sql.NullString   `json:"admin_comment" db:"admin_comment"`
}
