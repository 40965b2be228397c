package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/handler"
	"github.com/unclebandit/campaign-dashboard/internal/metrics"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

// NewRouter mounts the dashboard API.
func NewRouter(svc *service.DashboardService, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	campaigns := &CampaignController{Service: svc, Metrics: m, Logger: logger}
	notifications := handler.NewNotificationHandler(svc, m, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestID)
	r.Use(handler.Logger(logger))
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Get("/dashboard/summary", campaigns.Summary)

	// Campaign routes
	r.Get("/campaigns", campaigns.ListCampaigns)
	r.Get("/campaigns/{id}/card", campaigns.GetCampaignCard)
	r.Post("/campaigns/{id}/actions", campaigns.RequestAction)

	// Notification routes
	r.Get("/notifications", notifications.ListNotifications)
	r.Post("/notifications/read-all", notifications.MarkAllRead)
	r.Post("/notifications/{id}/read", notifications.MarkRead)
	r.Post("/notifications/{id}/unread", notifications.MarkUnread)

	return r
}
