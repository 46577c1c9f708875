package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/jwt"
	"casino-ledger-backend/internal/models"
	"casino-ledger-backend/internal/services"
)

func TestWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockCreator := NewMockWithdrawalCreator(ctrl)

	userID := uuid.New()
	handler := NewWithdrawHandler(mockCreator, mockTokener)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).AnyTimes().Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").AnyTimes().Return(&jwt.Claims{UserID: userID}, nil)

	address := "TXYZabcdefghijklmnopqrstuvwxyz1234"

	tests := []struct {
		name           string
		reqBody        interface{}
		mockCreate     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "success",
			reqBody: WithdrawRequestBody{Amount: 2500, DestinationAddress: address},
			mockCreate: func() {
				mockCreator.EXPECT().
					CreateRequest(gomock.Any(), userID, 2500.0, address).
					Return(&models.WithdrawalRequest{
						ID:                 11,
						UserID:             userID,
						Amount:             2500,
						DestinationAddress: address,
						Status:             models.WithdrawalStatusPending,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "below minimum",
			reqBody: WithdrawRequestBody{Amount: 100, DestinationAddress: address},
			mockCreate: func() {
				mockCreator.EXPECT().
					CreateRequest(gomock.Any(), userID, 100.0, address).
					Return(nil, services.ErrBelowMinimum)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Amount below minimum withdrawal",
		},
		{
			name:    "invalid address",
			reqBody: WithdrawRequestBody{Amount: 2500, DestinationAddress: "nope"},
			mockCreate: func() {
				mockCreator.EXPECT().
					CreateRequest(gomock.Any(), userID, 2500.0, "nope").
					Return(nil, services.ErrInvalidAddress)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid destination address",
		},
		{
			name:    "insufficient funds",
			reqBody: WithdrawRequestBody{Amount: 99999, DestinationAddress: address},
			mockCreate: func() {
				mockCreator.EXPECT().
					CreateRequest(gomock.Any(), userID, 99999.0, address).
					Return(nil, services.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Insufficient funds",
		},
		{
			name:           "invalid json",
			reqBody:        "not-json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCreate != nil {
				tt.mockCreate()
			}

			var body bytes.Buffer
			if s, ok := tt.reqBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.reqBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/withdrawal/request", &body)
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedError != "" {
				var resp WithdrawErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp WithdrawResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, int64(11), resp.RequestID)
				assert.Equal(t, 2500.0, resp.Amount)
				assert.Equal(t, string(models.WithdrawalStatusPending), resp.Status)
			}
		})
	}
}

func TestWithdrawHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockCreator := NewMockWithdrawalCreator(ctrl)

	userID := uuid.New()
	handler := NewWithdrawHistoryHandler(mockCreator, mockTokener)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{UserID: userID}, nil)
	mockCreator.EXPECT().History(gomock.Any(), userID).Return([]models.WithdrawalRequest{
		{ID: 2, UserID: userID, Amount: 3000, Status: models.WithdrawalStatusPending},
		{ID: 1, UserID: userID, Amount: 2500, Status: models.WithdrawalStatusRejected},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/withdrawal/history", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp WithdrawHistoryResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Requests, 2)
	assert.Equal(t, int64(2), resp.Requests[0].ID)
}
