package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotSecretMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		configured       string
		header           string
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "CorrectSecret",
			configured:       "s3cret",
			header:           "s3cret",
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "WrongSecret",
			configured:       "s3cret",
			header:           "guess",
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:             "MissingHeader",
			configured:       "s3cret",
			header:           "",
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:             "UnconfiguredSecretDisablesRoutes",
			configured:       "",
			header:           "",
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := BotSecretMiddleware(tt.configured)(nextHandler)

			req := httptest.NewRequest(http.MethodPost, "/withdrawal/approve", nil)
			if tt.header != "" {
				req.Header.Set(BotSecretHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
