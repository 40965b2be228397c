// internal/service/campaign_service.go
package service

import (
    "context"
    "fmt"

    "github.com/google/uuid"
    "go.uber.org/zap"

    appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
    "github.com/unclebandit/campaign-dashboard/internal/model"
    "github.com/unclebandit/campaign-dashboard/internal/repository"
)

// ActionTopic is the queue topic campaign actions are published on.
const ActionTopic = "campaign_actions"

// Publisher is the part of a queue the dashboard needs.
type Publisher interface {
    Publish(topic string, payload any) error
}

// DashboardService wires the pure view-model builders to the data stores.
type DashboardService struct {
    CampaignRepo     repository.CampaignRepositoryInterface
    NotificationRepo repository.NotificationRepositoryInterface
    Cards            *CardConfigTable
    Queue            Publisher
    Logger           *zap.Logger
}

type DashboardSummary struct {
    Metrics   MetricsSummary `json:"metrics"`
    StatCards []StatCard     `json:"stat_cards"`
}

func (s *DashboardService) log() *zap.Logger {
    if s.Logger == nil {
        return zap.NewNop()
    }
    return s.Logger
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
    campaigns, err := s.CampaignRepo.ListCampaigns(ctx)
    if err != nil {
        return nil, fmt.Errorf("list campaigns: %w", err)
    }
    m := AggregateMetrics(campaigns)
    return &DashboardSummary{Metrics: m, StatCards: BuildStatCards(m)}, nil
}

// ListCampaigns builds the campaign grid for the given selection.
func (s *DashboardService) ListCampaigns(ctx context.Context, state ViewState) (*CampaignListView, error) {
    campaigns, err := s.CampaignRepo.ListCampaigns(ctx)
    if err != nil {
        return nil, fmt.Errorf("list campaigns: %w", err)
    }
    view := BuildCampaignList(campaigns, state, s.Cards)
    s.log().Debug("campaign list built",
        zap.String("status", view.State.Status),
        zap.String("owner", view.State.Owner),
        zap.String("channel", view.State.Channel),
        zap.Int("page", view.Pagination.Page),
        zap.Int("matches", view.Pagination.TotalCount),
    )
    return &view, nil
}

func (s *DashboardService) GetCampaignCard(ctx context.Context, id string) (*CampaignCard, error) {
    campaign, err := s.CampaignRepo.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    card := BuildCard(*campaign, s.Cards)
    return &card, nil
}

// RequestAction checks that the action is allowed in the campaign's current status
// and queues it. The status itself changes when the action worker applies it.
func (s *DashboardService) RequestAction(ctx context.Context, id string, action model.Action) (*model.ActionRequest, error) {
    if !action.Valid() {
        return nil, fmt.Errorf("unknown action %q", action)
    }
    campaign, err := s.CampaignRepo.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if _, ok := action.Transition(campaign.Status); !ok {
        return nil, appErrors.NewInvalidTransition(id, string(action), string(campaign.Status))
    }

    req := &model.ActionRequest{
        RequestID:  uuid.New().String(),
        CampaignID: id,
        Action:     action,
        FromStatus: campaign.Status,
    }
    if err := s.Queue.Publish(ActionTopic, *req); err != nil {
        s.log().Error("failed to enqueue campaign action", zap.String("campaign_id", id), zap.Error(err))
        return nil, fmt.Errorf("enqueue action: %w", err)
    }

    s.log().Info("campaign action queued",
        zap.String("request_id", req.RequestID),
        zap.String("campaign_id", id),
        zap.String("action", string(action)),
    )
    return req, nil
}

func (s *DashboardService) Notifications(ctx context.Context) (*NotificationFeed, error) {
    items, err := s.NotificationRepo.ListNotifications(ctx)
    if err != nil {
        return nil, fmt.Errorf("list notifications: %w", err)
    }
    feed := BuildNotificationFeed(items)
    return &feed, nil
}

func (s *DashboardService) MarkNotificationRead(ctx context.Context, id int) error {
    return s.NotificationRepo.SetRead(ctx, id, true)
}

func (s *DashboardService) MarkNotificationUnread(ctx context.Context, id int) error {
    return s.NotificationRepo.SetRead(ctx, id, false)
}

func (s *DashboardService) MarkAllNotificationsRead(ctx context.Context) error {
    return s.NotificationRepo.SetAllRead(ctx)
}
