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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	tests := []struct {
		name           string
		reqBody        interface{}
		mockRegister   func()
		expectedStatus int
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@example.com"},
			mockRegister: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "secret123", "alice@example.com", int64(0)).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "success with telegram chat",
			reqBody: RegisterRequest{Username: "dave", Password: "secret123", Email: "dave@example.com", TelegramChatID: 123456789},
			mockRegister: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "dave", "secret123", "dave@example.com", int64(123456789)).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "user already exists",
			reqBody: RegisterRequest{Username: "bob", Password: "secret123", Email: "bob@example.com"},
			mockRegister: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "bob", "secret123", "bob@example.com", int64(0)).
					Return(services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "internal error",
			reqBody: RegisterRequest{Username: "eve", Password: "secret123", Email: "eve@example.com"},
			mockRegister: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "eve", "secret123", "eve@example.com", int64(0)).
					Return(errors.New("db error"))
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
			if tt.mockRegister != nil {
				tt.mockRegister()
			}

			var body bytes.Buffer
			if s, ok := tt.reqBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.reqBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/register", &body)
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
