package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
	"casino-ledger-backend/internal/services"
)

// WithdrawalCreator defines the interface that the service must implement.
type WithdrawalCreator interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, amount float64, destinationAddress string) (*models.WithdrawalRequest, error)
	History(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalRequest, error)
}

// WithdrawRequestBody represents the JSON body for creating a withdrawal request
// swagger:model WithdrawRequestBody
type WithdrawRequestBody struct {
	// Amount to withdraw
	// required: true
	// default: 2500.0
	Amount float64 `json:"amount"`

	// Destination address
	// required: true
	// default: TXYZabcdefghijklmnopqrstuvwxyz1234
	DestinationAddress string `json:"destinationAddress"`
}

// WithdrawalView is the client-facing projection of a request
// swagger:model WithdrawalView
type WithdrawalView struct {
	ID                 int64     `json:"id"`
	Amount             float64   `json:"amount"`
	DestinationAddress string    `json:"destinationAddress"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	AdminComment       string    `json:"adminComment,omitempty"`
}

// WithdrawResponse represents a created withdrawal request
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// default: true
	Success bool `json:"success"`

	RequestID int64   `json:"requestId"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// WithdrawHistoryResponse represents the caller's withdrawal requests
// swagger:model WithdrawHistoryResponse
type WithdrawHistoryResponse struct {
	Requests []WithdrawalView `json:"requests"`
}

// WithdrawErrorResponse represents an error response for withdrawal endpoints
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

func toWithdrawalView(req models.WithdrawalRequest) WithdrawalView {
	view := WithdrawalView{
		ID:                 req.ID,
		Amount:             req.Amount,
		DestinationAddress: req.DestinationAddress,
		Status:             string(req.Status),
		CreatedAt:          req.CreatedAt,
	}
	if req.AdminComment.Valid {
		view.AdminComment = req.AdminComment.String
	}
	return view
}

// NewWithdrawHandler returns an HTTP handler for creating withdrawal requests.
// Creation does not debit; the balance is only checked for coverage here and
// touched when a reviewer approves.
// @Summary Create withdrawal request
// @Description Creates a pending withdrawal request and pushes it to the reviewer pool
// @Tags withdrawal
// @Accept json
// @Produce json
// @Param withdrawRequest body handlers.WithdrawRequestBody true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Request created"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Validation failure"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Router /withdrawal/request [post]
// @Security BearerAuth
func NewWithdrawHandler(
	withdrawals WithdrawalCreator,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req WithdrawRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := withdrawals.CreateRequest(r.Context(), claims.UserID, req.Amount, req.DestinationAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrInvalidAddress):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid destination address"})
			case errors.Is(err, services.ErrBelowMinimum):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Amount below minimum withdrawal"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to create withdrawal request", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{
			Success:   true,
			RequestID: created.ID,
			Amount:    created.Amount,
			Status:    string(created.Status),
		})
	}
}

// NewWithdrawHistoryHandler returns an HTTP handler for the caller's request history.
// @Summary Get withdrawal history
// @Description Returns the caller's withdrawal requests, newest first
// @Tags withdrawal
// @Produce json
// @Success 200 {object} handlers.WithdrawHistoryResponse "Withdrawal requests"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.WithdrawErrorResponse "Internal server error"
// @Router /withdrawal/history [get]
// @Security BearerAuth
func NewWithdrawHistoryHandler(
	withdrawals WithdrawalCreator,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requests, err := withdrawals.History(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list withdrawal requests", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			return
		}

		views := make([]WithdrawalView, 0, len(requests))
		for _, req := range requests {
			views = append(views, toWithdrawalView(req))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawHistoryResponse{Requests: views})
	}
}

// RegisterWithdrawHandlers registers the withdrawal routes.
func RegisterWithdrawHandlers(r chi.Router, create, history http.HandlerFunc) {
	r.Post("/withdrawal/request", create)
	r.Get("/withdrawal/history", history)
}
