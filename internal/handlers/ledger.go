package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// ledgerDisplayLimit caps the history endpoint; the full ledger is retained
// in the database for audit.
const ledgerDisplayLimit = 100

// LedgerLister defines the interface that the service must implement.
type LedgerLister interface {
	ListRecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// LedgerHistoryResponse represents the recent ledger entries, newest first
// swagger:model LedgerHistoryResponse
type LedgerHistoryResponse struct {
	Entries []models.LedgerEntry `json:"entries"`
}

// LedgerErrorResponse represents an error response for the history endpoint
// swagger:model LedgerErrorResponse
type LedgerErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLedgerHistoryHandler returns an HTTP handler for the ledger history.
// @Summary Get ledger history
// @Description Returns the most recent balance-affecting operations, newest first
// @Tags ledger
// @Produce json
// @Success 200 {object} handlers.LedgerHistoryResponse "Recent ledger entries"
// @Failure 401 {object} handlers.LedgerErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.LedgerErrorResponse "Internal server error"
// @Router /ledger/history [get]
// @Security BearerAuth
func NewLedgerHistoryHandler(
	ledger LedgerLister,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		entries, err := ledger.ListRecentEntries(r.Context(), claims.UserID, ledgerDisplayLimit)
		if err != nil {
			logger.Log.Errorw("failed to list ledger entries", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LedgerErrorResponse{Error: "Internal server error"})
			return
		}
		if entries == nil {
			entries = []models.LedgerEntry{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LedgerHistoryResponse{Entries: entries})
	}
}

// RegisterLedgerHistoryHandler registers the ledger history route.
func RegisterLedgerHistoryHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/ledger/history", h)
}
