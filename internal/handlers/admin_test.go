package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/models"
	"casino-ledger-backend/internal/services"
)

func TestApproveWithdrawalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockApprover := NewMockApprover(ctrl)
	handler := NewApproveWithdrawalHandler(mockApprover)

	userID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		mockApprove    func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "success",
			reqBody: DecisionRequest{RequestID: 7, AdminName: "ops"},
			mockApprove: func() {
				mockApprover.EXPECT().
					Approve(gomock.Any(), int64(7), "ops").
					Return(&services.ApprovalResult{
						RequestID:  7,
						UserID:     userID,
						Status:     models.WithdrawalStatusApproved,
						OldBalance: 4500,
						NewBalance: 0,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "already processed",
			reqBody: DecisionRequest{RequestID: 7, AdminName: "ops"},
			mockApprove: func() {
				mockApprover.EXPECT().
					Approve(gomock.Any(), int64(7), "ops").
					Return(nil, services.ErrAlreadyProcessed)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "already_processed",
		},
		{
			name:    "not found",
			reqBody: DecisionRequest{RequestID: 99, AdminName: "ops"},
			mockApprove: func() {
				mockApprover.EXPECT().
					Approve(gomock.Any(), int64(99), "ops").
					Return(nil, services.ErrRequestNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockApprove != nil {
				tt.mockApprove()
			}

			var body bytes.Buffer
			assert.NoError(t, json.NewEncoder(&body).Encode(tt.reqBody))

			req := httptest.NewRequest(http.MethodPost, "/withdrawal/approve", &body)
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedError != "" {
				var resp DecisionErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp DecisionResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, int64(7), resp.RequestID)
				assert.Equal(t, string(models.WithdrawalStatusApproved), resp.Status)
				assert.Equal(t, 4500.0, resp.OldBalance)
				assert.Equal(t, 0.0, resp.NewBalance)
			}
		})
	}

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/withdrawal/approve", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}

func TestRejectWithdrawalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockApprover := NewMockApprover(ctrl)
	handler := NewRejectWithdrawalHandler(mockApprover)

	userID := uuid.New()

	t.Run("success with comment", func(t *testing.T) {
		mockApprover.EXPECT().
			Reject(gomock.Any(), int64(8), "ops", "address flagged").
			Return(&services.ApprovalResult{
				RequestID: 8,
				UserID:    userID,
				Status:    models.WithdrawalStatusRejected,
			}, nil)

		var body bytes.Buffer
		json.NewEncoder(&body).Encode(DecisionRequest{RequestID: 8, AdminName: "ops", Comment: "address flagged"})

		req := httptest.NewRequest(http.MethodPost, "/withdrawal/reject", &body)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp DecisionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, string(models.WithdrawalStatusRejected), resp.Status)
	})

	t.Run("already processed", func(t *testing.T) {
		mockApprover.EXPECT().
			Reject(gomock.Any(), int64(8), "ops", "").
			Return(nil, services.ErrAlreadyProcessed)

		var body bytes.Buffer
		json.NewEncoder(&body).Encode(DecisionRequest{RequestID: 8, AdminName: "ops"})

		req := httptest.NewRequest(http.MethodPost, "/withdrawal/reject", &body)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
