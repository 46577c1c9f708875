package models

// Supported balance currencies. RUB is the payout currency; chips are
// a game-only unit with its own independent ledger.
const (
	CurrencyRUB   = "RUB"
	CurrencyChips = "CHIPS"
)

// ValidCurrency reports whether c is one of the supported currencies.
func ValidCurrency(c string) bool {
	return c == CurrencyRUB || c == CurrencyChips
}
