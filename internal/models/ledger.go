package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryTypeAdd      EntryType = "add"
	EntryTypeSubtract EntryType = "subtract"
	EntryTypeBet      EntryType = "bet"
	EntryTypeWin      EntryType = "win"
)

// LedgerEntry is one immutable balance mutation. The sum of Delta over all
// entries for a (user, currency) pair equals that currency's current balance.
type LedgerEntry struct {
	ID          int64     `json:"id" db:"id"`
	EntryID     string    `json:"entry_id" db:"entry_id"` // uuid, kafka message key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Currency    string    `json:"currency" db:"currency"`
	Delta       float64   `json:"delta" db:"delta"` // signed
	Type        EntryType `json:"type" db:"type"`
	Source      string    `json:"source" db:"source"` // game name, "admin", "bot", "system"
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EntryMeta describes the origin of a balance mutation.
type EntryMeta struct {
	Type        EntryType
	Source      string
	Description string
}
