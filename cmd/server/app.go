package main

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/cardconfig"
	"github.com/unclebandit/campaign-dashboard/internal/config"
	"github.com/unclebandit/campaign-dashboard/internal/db"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

type app struct {
	Service *service.DashboardService
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires repositories, the action queue and the card table from cfg.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	cards, err := cardconfig.Load(cfg.CardConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Info("card configuration loaded", zap.Int("entries", cards.Len()), zap.String("path", cfg.CardConfigPath))

	var campaignRepo repository.CampaignRepositoryInterface
	var notificationRepo repository.NotificationRepositoryInterface
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		var conn *sql.DB
		conn, err = db.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		campaignRepo = &repository.CampaignRepository{DB: conn}
		notificationRepo = &repository.NotificationRepository{DB: conn}
	default:
		campaignRepo = repository.NewMemoryCampaignRepository(repository.SeedCampaigns())
		notificationRepo = repository.NewMemoryNotificationRepository(repository.SeedNotifications())
	}

	var q queue.Queue
	if cfg.AMQPURL != "" {
		aq, err := queue.NewAMQPQueue(cfg.AMQPURL, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, aq.Close)
		q = aq
		logger.Info("campaign actions go to RabbitMQ", zap.String("queue", service.ActionTopic))
	} else {
		mq := queue.NewInMemoryQueue(logger)
		worker := service.NewActionWorker(campaignRepo, notificationRepo, logger)
		if err := queue.StartCampaignActionSubscriber(ctx, mq, worker); err != nil {
			a.Close()
			return nil, err
		}
		q = mq
	}

	a.Service = &service.DashboardService{
		CampaignRepo:     campaignRepo,
		NotificationRepo: notificationRepo,
		Cards:            cards,
		Queue:            q,
		Logger:           logger,
	}
	return a, nil
}
