// internal/handler/notification_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/metrics"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

// NotificationHandler serves the notification drawer.
type NotificationHandler struct {
	Service *service.DashboardService
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewNotificationHandler creates a NotificationHandler for the given service
func NewNotificationHandler(svc *service.DashboardService, m *metrics.Metrics, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{Service: svc, Metrics: m, Logger: logger}
}

// ListNotifications returns the feed with its unread count
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	h.writeFeed(w, r)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, true)
}

func (h *NotificationHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, false)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.MarkAllNotificationsRead(r.Context()); err != nil {
		h.Logger.Error("failed to mark notifications read", zap.String("rid", RID(r.Context())), zap.Error(err))
		WriteError(w, err)
		return
	}
	h.writeFeed(w, r)
}

func (h *NotificationHandler) setRead(w http.ResponseWriter, r *http.Request, read bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		BadRequest(w, "invalid notification id")
		return
	}

	if read {
		err = h.Service.MarkNotificationRead(r.Context(), id)
	} else {
		err = h.Service.MarkNotificationUnread(r.Context(), id)
	}
	if err != nil {
		h.Logger.Warn("failed to update notification",
			zap.String("rid", RID(r.Context())), zap.Int("notification_id", id), zap.Bool("read", read), zap.Error(err))
		WriteError(w, err)
		return
	}
	h.writeFeed(w, r)
}

func (h *NotificationHandler) writeFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Service.Notifications(r.Context())
	if err != nil {
		h.Logger.Error("failed to list notifications", zap.String("rid", RID(r.Context())), zap.Error(err))
		WriteError(w, err)
		return
	}
	h.Metrics.SetUnread(feed.UnreadCount)
	WriteJSON(w, http.StatusOK, feed)
}
