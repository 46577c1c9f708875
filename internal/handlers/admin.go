package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/services"
)

// Approver defines the decision surface the admin handlers consume.
type Approver interface {
	Approve(ctx context.Context, requestID int64, reviewer string) (*services.ApprovalResult, error)
	Reject(ctx context.Context, requestID int64, reviewer, comment string) (*services.ApprovalResult, error)
}

// DecisionRequest represents the JSON body for an admin decision
// swagger:model DecisionRequest
type DecisionRequest struct {
	// Request to decide on
	// required: true
	// default: 7
	RequestID int64 `json:"requestId"`

	// Reviewer identity recorded on the request
	// required: true
	// default: ops_team
	AdminName string `json:"adminName"`

	// Optional comment, shown to the user on rejection
	Comment string `json:"comment,omitempty"`
}

// DecisionResponse represents a processed decision
// swagger:model DecisionResponse
type DecisionResponse struct {
	RequestID  int64   `json:"requestId"`
	Status     string  `json:"status"`
	OldBalance float64 `json:"oldBalance"`
	NewBalance float64 `json:"newBalance"`
}

// DecisionErrorResponse represents an error response for admin decisions.
// The error field carries a machine-readable code for the bot to render:
// already_processed or not_found.
// swagger:model DecisionErrorResponse
type DecisionErrorResponse struct {
	// Error code
	// default: already_processed
	Error string `json:"error"`
}

func decide(w http.ResponseWriter, result *services.ApprovalResult, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyProcessed):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "already_processed"})
		case errors.Is(err, services.ErrRequestNotFound):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "not_found"})
		default:
			logger.Log.Errorw("failed to process decision", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "internal_error"})
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(DecisionResponse{
		RequestID:  result.RequestID,
		Status:     string(result.Status),
		OldBalance: result.OldBalance,
		NewBalance: result.NewBalance,
	})
}

// NewApproveWithdrawalHandler returns an HTTP handler for approving a
// withdrawal request. Routes under it must be guarded by the bot-secret
// middleware.
// @Summary Approve a withdrawal request
// @Description Marks the request approved and zeroes the user's primary balance. A request is processed at most once.
// @Tags admin
// @Accept json
// @Produce json
// @Param decisionRequest body handlers.DecisionRequest true "Decision"
// @Success 200 {object} handlers.DecisionResponse "Request approved"
// @Failure 400 {object} handlers.DecisionErrorResponse "already_processed or not_found"
// @Failure 403 {object} handlers.DecisionErrorResponse "Bad shared secret"
// @Router /withdrawal/approve [post]
func NewApproveWithdrawalHandler(approver Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DecisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "invalid_request_body"})
			return
		}

		result, err := approver.Approve(r.Context(), req.RequestID, req.AdminName)
		decide(w, result, err)
	}
}

// NewRejectWithdrawalHandler returns an HTTP handler for rejecting a
// withdrawal request. The balance is untouched.
// @Summary Reject a withdrawal request
// @Description Marks the request rejected without touching the balance. A request is processed at most once.
// @Tags admin
// @Accept json
// @Produce json
// @Param decisionRequest body handlers.DecisionRequest true "Decision"
// @Success 200 {object} handlers.DecisionResponse "Request rejected"
// @Failure 400 {object} handlers.DecisionErrorResponse "already_processed or not_found"
// @Failure 403 {object} handlers.DecisionErrorResponse "Bad shared secret"
// @Router /withdrawal/reject [post]
func NewRejectWithdrawalHandler(approver Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DecisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "invalid_request_body"})
			return
		}

		result, err := approver.Reject(r.Context(), req.RequestID, req.AdminName, req.Comment)
		decide(w, result, err)
	}
}

// RegisterAdminHandlers registers the admin decision routes.
func RegisterAdminHandlers(r chi.Router, approve, reject http.HandlerFunc) {
	r.Post("/withdrawal/approve", approve)
	r.Post("/withdrawal/reject", reject)
}
