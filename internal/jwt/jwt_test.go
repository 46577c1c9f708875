package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	assert.NoError(t, j.Validate(ctx, token))
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	token, err := New("secret-a", time.Minute).Generate(ctx, userID)
	assert.NoError(t, err)

	_, err = New("secret-b", time.Minute).GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", -time.Minute)

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Minute)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{"missing_header", "", "", true},
		{"bad_format", "Token abc", "", true},
		{"no_token", "Bearer", "", true},
		{"ok", "Bearer abc.def.ghi", "abc.def.ghi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
