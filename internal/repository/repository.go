package repository

import (
	"context"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// CampaignRepositoryInterface is the data access the dashboard needs for campaigns.
type CampaignRepositoryInterface interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) error
}

// NotificationRepositoryInterface is the data access for the notification feed.
type NotificationRepositoryInterface interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	SetRead(ctx context.Context, id int, read bool) error
	SetAllRead(ctx context.Context) error
	Create(ctx context.Context, n *model.Notification) error
}

func cloneCampaign(c model.Campaign) model.Campaign {
	c.Metrics = append([]model.Metric(nil), c.Metrics...)
	if c.Owner != nil {
		o := *c.Owner
		c.Owner = &o
	}
	return c
}
