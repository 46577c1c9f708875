package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/services"
)

// BetPlacer defines the settlement surface the bet handler consumes.
type BetPlacer interface {
	PlaceBet(ctx context.Context, userID uuid.UUID, game, currency string, amount float64) (*services.Round, error)
}

// RoundSettler defines the settlement surface the settle handler consumes.
type RoundSettler interface {
	PayWinnings(ctx context.Context, roundID uuid.UUID, winAmount float64) (float64, error)
	Round(roundID uuid.UUID) (*services.Round, bool)
}

// BetRequest represents the JSON body for placing a bet
// swagger:model BetRequest
type BetRequest struct {
	// Game identifier
	// required: true
	// default: roulette
	Game string `json:"game"`

	// Currency of the stake
	// required: true
	// default: RUB
	Currency string `json:"currency"`

	// Stake amount
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// BetResponse represents an opened round
// swagger:model BetResponse
type BetResponse struct {
	RoundID  uuid.UUID `json:"round_id"`
	Game     string    `json:"game"`
	Currency string    `json:"currency"`
	Bet      float64   `json:"bet"`
}

// SettleRequest represents the JSON body for settling a round
// swagger:model SettleRequest
type SettleRequest struct {
	// Round to settle
	// required: true
	RoundID uuid.UUID `json:"round_id"`

	// Win amount, 0 for a loss
	// required: true
	// default: 0
	WinAmount float64 `json:"win_amount"`
}

// SettleResponse represents a settled round
// swagger:model SettleResponse
type SettleResponse struct {
	// Balance after settlement
	NewBalance float64 `json:"new_balance"`
}

// GameErrorResponse represents an error response for game endpoints
// swagger:model GameErrorResponse
type GameErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewPlaceBetHandler returns an HTTP handler that reserves a stake and opens
// a game round.
// @Summary Place a bet
// @Description Debits the stake and opens a round. The round must be settled exactly once.
// @Tags game
// @Accept json
// @Produce json
// @Param betRequest body handlers.BetRequest true "Bet Request"
// @Success 200 {object} handlers.BetResponse "Round opened"
// @Failure 400 {object} handlers.GameErrorResponse "Invalid stake or insufficient funds"
// @Failure 401 {object} handlers.GameErrorResponse "Unauthorized"
// @Router /game/bet [post]
// @Security BearerAuth
func NewPlaceBetHandler(
	settlement BetPlacer,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req BetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "invalid request body"})
			return
		}

		round, err := settlement.PlaceBet(r.Context(), claims.UserID, req.Game, req.Currency, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBetBelowMinimum):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Bet below minimum"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidCurrency):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Invalid stake"})
			default:
				logger.Log.Errorw("failed to place bet", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BetResponse{
			RoundID:  round.ID,
			Game:     round.Game,
			Currency: round.Currency,
			Bet:      round.Bet,
		})
	}
}

// NewSettleRoundHandler returns an HTTP handler that settles an open round.
// @Summary Settle a round
// @Description Pays the winnings for an open round, exactly once. A zero win amount settles the round as a loss.
// @Tags game
// @Accept json
// @Produce json
// @Param settleRequest body handlers.SettleRequest true "Settle Request"
// @Success 200 {object} handlers.SettleResponse "Round settled"
// @Failure 400 {object} handlers.GameErrorResponse "Invalid win amount"
// @Failure 404 {object} handlers.GameErrorResponse "Round not found"
// @Failure 409 {object} handlers.GameErrorResponse "Round already settled"
// @Router /game/settle [post]
// @Security BearerAuth
func NewSettleRoundHandler(
	settlement RoundSettler,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req SettleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "invalid request body"})
			return
		}

		// Another user's round is indistinguishable from a missing one.
		if round, ok := settlement.Round(req.RoundID); ok && round.UserID != claims.UserID {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "Round not found"})
			return
		}

		newBalance, err := settlement.PayWinnings(r.Context(), req.RoundID, req.WinAmount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRoundNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Round not found"})
			case errors.Is(err, services.ErrRoundSettled):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Round already settled"})
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Invalid win amount"})
			default:
				logger.Log.Errorw("failed to settle round", "round_id", req.RoundID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SettleResponse{NewBalance: newBalance})
	}
}

// RegisterGameHandlers registers the game routes.
func RegisterGameHandlers(r chi.Router, bet, settle http.HandlerFunc) {
	r.Post("/game/bet", bet)
	r.Post("/game/settle", settle)
}
