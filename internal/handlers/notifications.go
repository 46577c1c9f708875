package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
)

// NotificationAccessor defines the interface that the service must implement.
type NotificationAccessor interface {
	Unread(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalNotification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NotificationsResponse represents the caller's unread notifications
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	Notifications []models.WithdrawalNotification `json:"notifications"`
}

// NotificationsErrorResponse represents an error response for notification endpoints
// swagger:model NotificationsErrorResponse
type NotificationsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewUnreadNotificationsHandler returns an HTTP handler listing unread
// withdrawal notifications. The durable rows are the fallback channel for
// users without a linked Telegram chat.
// @Summary List unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationsResponse "Unread notifications"
// @Failure 401 {object} handlers.NotificationsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.NotificationsErrorResponse "Internal server error"
// @Router /notifications/unread [get]
// @Security BearerAuth
func NewUnreadNotificationsHandler(
	notifications NotificationAccessor,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		unread, err := notifications.Unread(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{Error: "Internal server error"})
			return
		}
		if unread == nil {
			unread = []models.WithdrawalNotification{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationsResponse{Notifications: unread})
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler marking one
// notification read.
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 204 "Marked read"
// @Failure 400 {object} handlers.NotificationsErrorResponse "Invalid id"
// @Failure 401 {object} handlers.NotificationsErrorResponse "Unauthorized"
// @Router /notifications/mark-read/{id} [post]
// @Security BearerAuth
func NewMarkNotificationReadHandler(
	notifications NotificationAccessor,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		notificationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{Error: "Invalid notification id"})
			return
		}

		if err := notifications.MarkRead(r.Context(), claims.UserID, notificationID); err != nil {
			logger.Log.Errorw("failed to mark notification read", "userID", claims.UserID, "notification_id", notificationID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMarkAllNotificationsReadHandler returns an HTTP handler marking all of
// the caller's notifications read.
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 204 "Marked read"
// @Failure 401 {object} handlers.NotificationsErrorResponse "Unauthorized"
// @Router /notifications/mark-all-read [post]
// @Security BearerAuth
func NewMarkAllNotificationsReadHandler(
	notifications NotificationAccessor,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := authorize(w, r, tokenGetter)
		if claims == nil {
			return
		}

		if err := notifications.MarkAllRead(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("failed to mark notifications read", "userID", claims.UserID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterNotificationHandlers registers the notification routes.
func RegisterNotificationHandlers(r chi.Router, unread, markRead, markAllRead http.HandlerFunc) {
	r.Get("/notifications/unread", unread)
	r.Post("/notifications/mark-read/{id}", markRead)
	r.Post("/notifications/mark-all-read", markAllRead)
}
