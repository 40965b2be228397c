// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "go.uber.org/zap"

    "github.com/unclebandit/campaign-dashboard/internal/handler"
    "github.com/unclebandit/campaign-dashboard/internal/metrics"
    "github.com/unclebandit/campaign-dashboard/internal/model"
    "github.com/unclebandit/campaign-dashboard/internal/service"
)

type CampaignController struct {
    Service *service.DashboardService
    Metrics *metrics.Metrics
    Logger  *zap.Logger
}

func (c *CampaignController) log() *zap.Logger {
    if c.Logger == nil {
        return zap.NewNop()
    }
    return c.Logger
}

// Summary returns the aggregated metrics and stat cards.
func (c *CampaignController) Summary(w http.ResponseWriter, r *http.Request) {
    summary, err := c.Service.Summary(r.Context())
    if err != nil {
        c.log().Error("failed to build summary", zap.String("rid", handler.RID(r.Context())), zap.Error(err))
        handler.WriteError(w, err)
        return
    }
    handler.WriteJSON(w, http.StatusOK, summary)
}

// ListCampaigns returns one page of campaign cards for the selected filters.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()
    state := service.DefaultViewState()

    if v := q.Get("status"); v != "" {
        if v != service.FilterAll && !model.Status(v).Valid() {
            handler.BadRequest(w, "unknown status "+strconv.Quote(v))
            return
        }
        state.Status = v
    }
    if v := q.Get("channel"); v != "" {
        if v != service.FilterAll && !model.Channel(v).Valid() {
            handler.BadRequest(w, "unknown channel "+strconv.Quote(v))
            return
        }
        state.Channel = v
    }
    if v := q.Get("owner"); v != "" {
        state.Owner = v
    }
    // Default values if missing
    if p, err := strconv.Atoi(q.Get("page")); err == nil {
        state.Page = p
    }
    state.BreakdownExpanded = q.Get("expanded") == "true"

    view, err := c.Service.ListCampaigns(r.Context(), state)
    if err != nil {
        c.log().Error("failed to list campaigns", zap.String("rid", handler.RID(r.Context())), zap.Error(err))
        handler.WriteError(w, err)
        return
    }
    handler.WriteJSON(w, http.StatusOK, view)
}

func (c *CampaignController) GetCampaignCard(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    card, err := c.Service.GetCampaignCard(r.Context(), id)
    if err != nil {
        handler.WriteError(w, err)
        return
    }
    handler.WriteJSON(w, http.StatusOK, card)
}

// RequestAction queues a status transition. The body names either the action
// ({"action":"pause"}) or the pressed button label ({"label":"Pause"}).
func (c *CampaignController) RequestAction(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Action string `json:"action"`
        Label  string `json:"label"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        handler.BadRequest(w, "invalid body")
        return
    }

    action := model.Action(body.Action)
    if action == "" && body.Label != "" {
        a, ok := service.ActionForButton(body.Label)
        if !ok {
            handler.BadRequest(w, "button "+strconv.Quote(body.Label)+" does not trigger an action")
            return
        }
        action = a
    }
    if !action.Valid() {
        handler.BadRequest(w, "unknown action "+strconv.Quote(string(action)))
        return
    }

    req, err := c.Service.RequestAction(r.Context(), id, action)
    if err != nil {
        c.log().Warn("campaign action rejected",
            zap.String("rid", handler.RID(r.Context())),
            zap.String("campaign_id", id),
            zap.String("action", string(action)),
            zap.Error(err),
        )
        handler.WriteError(w, err)
        return
    }

    c.Metrics.IncActionRequested(string(action))
    handler.WriteJSON(w, http.StatusAccepted, req)
}
