package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"casino-ledger-backend/internal/jwt"
	"casino-ledger-backend/internal/models"
)

func TestNotificationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockAccessor := NewMockNotificationAccessor(ctrl)

	userID := uuid.New()

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).AnyTimes().Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").AnyTimes().Return(&jwt.Claims{UserID: userID}, nil)

	router := chi.NewRouter()
	RegisterNotificationHandlers(router,
		NewUnreadNotificationsHandler(mockAccessor, mockTokener),
		NewMarkNotificationReadHandler(mockAccessor, mockTokener),
		NewMarkAllNotificationsReadHandler(mockAccessor, mockTokener),
	)

	t.Run("list unread", func(t *testing.T) {
		mockAccessor.EXPECT().Unread(gomock.Any(), userID).Return([]models.WithdrawalNotification{
			{ID: 1, UserID: userID, RequestID: 7, Status: models.WithdrawalStatusApproved, Message: "approved"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp NotificationsResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Notifications, 1)
		assert.Equal(t, int64(7), resp.Notifications[0].RequestID)
	})

	t.Run("empty list is not null", func(t *testing.T) {
		mockAccessor.EXPECT().Unread(gomock.Any(), userID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"notifications":[]`)
	})

	t.Run("mark one read", func(t *testing.T) {
		mockAccessor.EXPECT().MarkRead(gomock.Any(), userID, int64(5)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/notifications/mark-read/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("mark one read with bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/notifications/mark-read/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("mark all read", func(t *testing.T) {
		mockAccessor.EXPECT().MarkAllRead(gomock.Any(), userID).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/notifications/mark-all-read", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
