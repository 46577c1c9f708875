package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID     `json:"id" db:"user_id"`                        // Primary key
	Username       string        `json:"username" db:"username"`                 // Unique username
	Email          string        `json:"email" db:"email"`                       // User email
	PasswordHash   string        `json:"-" db:"password_hash"`                   // Hashed password
	TelegramChatID sql.NullInt64 `json:"telegram_chat_id" db:"telegram_chat_id"` // Optional chat for result pushes
	ReferralsCount int           `json:"referrals_count" db:"referrals_count"`
	TotalEarnings  float64       `json:"total_earnings" db:"total_earnings"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}
