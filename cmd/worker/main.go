package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/config"
	"github.com/unclebandit/campaign-dashboard/internal/db"
	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to the .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.AMQPURL == "" || cfg.DatabaseURL == "" {
		logger.Fatal("worker needs AMQP_URL and a database (DATABASE_URL or DB_HOST)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to DB
	conn, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer conn.Close()

	// Repositories
	campaignRepo := &repository.CampaignRepository{DB: conn}
	notificationRepo := &repository.NotificationRepository{DB: conn}

	// Connect to RabbitMQ
	q, err := queue.NewAMQPQueue(cfg.AMQPURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer q.Close()

	worker := service.NewActionWorker(campaignRepo, notificationRepo, logger)
	if err := queue.StartCampaignActionSubscriber(ctx, q, worker); err != nil {
		logger.Fatal("failed to subscribe", zap.Error(err))
	}

	logger.Info("worker running, waiting for campaign actions", zap.String("queue", service.ActionTopic))
	<-ctx.Done()
	logger.Info("worker stopped")
}
