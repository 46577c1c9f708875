package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casino-ledger-backend/internal/jwt"
	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// Tokener extracts and validates the caller's JWT.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DisplayBalanceReader defines the interface that the service must implement.
type DisplayBalanceReader interface {
	GetDisplayBalance(ctx context.Context, userID uuid.UUID, currency string) (float64, error)
}

// CurrencyBalance represents balances for the supported currencies
// swagger:model CurrencyBalance
type CurrencyBalance struct {
	// Primary balance in RUB
	// default: 5000.0
	RUB float64 `json:"RUB"`

	// Game chips balance
	// default: 120
	Chips float64 `json:"CHIPS"`
}

// BalanceResponse represents a successful response with user balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// User balances
	Balance *CurrencyBalance `json:"balance"`
}

// BalanceErrorResponse represents an error response when fetching balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// authorize resolves the caller's claims, writing the 401 response itself on
// failure. Returns nil when the response has already been written.
func authorize(w http.ResponseWriter, r *http.Request, tokenGetter Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
		return nil
	}
	return claims
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// Reads go through the display mirror; the databased balance is authoritative
// only for mutations.
// @Summary Get user balance
// @Description Returns balances for all supported currencies
// @Tags balance
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	balanceReader DisplayBalanceReader,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		balance := CurrencyBalance{}
		for _, currency := range []string{models.CurrencyRUB, models.CurrencyChips} {
			val, err := balanceReader.GetDisplayBalance(ctx, claims.UserID, currency)
			if err != nil {
				logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "currency", currency, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
				return
			}
			switch currency {
			case models.CurrencyRUB:
				balance.RUB = val
			case models.CurrencyChips:
				balance.Chips = val
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Balance: &balance,
		})
	}
}

// RegisterGetBalanceHandler registers the balance route.
func RegisterGetBalanceHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/balance", h)
}
