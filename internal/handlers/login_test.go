package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(mockSvc)

	tests := []struct {
		name           string
		reqBody        interface{}
		mockLogin      func()
		expectedStatus int
		expectedToken  string
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Username: "alice", Password: "secret123"},
			mockLogin: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("token123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "token123",
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Username: "alice", Password: "wrong"},
			mockLogin: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "unknown user",
			reqBody: LoginRequest{Username: "ghost", Password: "secret123"},
			mockLogin: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost", "secret123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "internal error",
			reqBody: LoginRequest{Username: "alice", Password: "secret123"},
			mockLogin: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid json",
			reqBody:        "not-json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockLogin != nil {
				tt.mockLogin()
			}

			var body bytes.Buffer
			if s, ok := tt.reqBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.reqBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/login", &body)
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedToken != "" {
				var resp LoginResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedToken, resp.Token)
			}
		})
	}
}
