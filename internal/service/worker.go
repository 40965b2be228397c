package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
)

// ActionWorker applies queued campaign actions to the campaign store
type ActionWorker struct {
	CampaignRepo     repository.CampaignRepositoryInterface
	NotificationRepo repository.NotificationRepositoryInterface
	Logger           *zap.Logger
}

// Constructor
func NewActionWorker(campaigns repository.CampaignRepositoryInterface, notifications repository.NotificationRepositoryInterface, logger *zap.Logger) *ActionWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionWorker{
		CampaignRepo:     campaigns,
		NotificationRepo: notifications,
		Logger:           logger,
	}
}

// Apply moves the campaign to the status the action leads to from its current
// status and announces the change in the notification feed.
func (w *ActionWorker) Apply(ctx context.Context, req model.ActionRequest) error {
	log := w.Logger.With(
		zap.String("request_id", req.RequestID),
		zap.String("campaign_id", req.CampaignID),
		zap.String("action", string(req.Action)),
	)

	campaign, err := w.CampaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		log.Warn("campaign lookup failed", zap.Error(err))
		return err
	}

	to, ok := req.Action.Transition(campaign.Status)
	if !ok {
		log.Warn("action no longer applicable", zap.String("status", string(campaign.Status)))
		return appErrors.NewInvalidTransition(campaign.ID, string(req.Action), string(campaign.Status))
	}

	if err := w.CampaignRepo.UpdateStatus(ctx, campaign.ID, to); err != nil {
		return err
	}
	log.Info("campaign status changed", zap.String("from", string(campaign.Status)), zap.String("to", string(to)))

	if w.NotificationRepo == nil {
		return nil
	}
	if n, ok := RenderActionNotification(*campaign, req.Action); ok {
		if err := w.NotificationRepo.Create(ctx, &n); err != nil {
			log.Warn("failed to record notification", zap.Error(err))
		}
	}
	return nil
}

// IsPermanent reports errors that retrying the same request cannot fix.
func IsPermanent(err error) bool {
	var notFound *appErrors.ErrCampaignNotFound
	var invalid *appErrors.ErrInvalidTransition
	return errors.As(err, &notFound) || errors.As(err, &invalid)
}
