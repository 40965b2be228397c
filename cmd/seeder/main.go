//cmd/seeder/main.go
package main

import (
    "context"
    "flag"
    "fmt"
    "log"

    "github.com/unclebandit/campaign-dashboard/internal/config"
    "github.com/unclebandit/campaign-dashboard/internal/db"
    "github.com/unclebandit/campaign-dashboard/internal/logging"
    "github.com/unclebandit/campaign-dashboard/internal/repository"
    "go.uber.org/zap"
)

func main() {
    envFile := flag.String("env-file", ".env", "path to the .env file")
    flag.Parse()

    cfg, err := config.Load(*envFile)
    if err != nil {
        log.Fatal(err)
    }
    if cfg.DatabaseURL == "" {
        log.Fatal("DATABASE_URL or DB_HOST must be set")
    }
    logger, err := logging.New(cfg.LogLevel)
    if err != nil {
        log.Fatal(err)
    }
    defer logger.Sync()

    ctx := context.Background()
    conn, err := db.Open(ctx, cfg.DatabaseURL, logger)
    if err != nil {
        logger.Fatal("failed to connect", zap.Error(err))
    }
    defer conn.Close()

    if err := db.Migrate(ctx, conn); err != nil {
        logger.Fatal("failed to migrate", zap.Error(err))
    }

    campaigns := &repository.CampaignRepository{DB: conn}
    for _, c := range repository.SeedCampaigns() {
        c := c
        if err := campaigns.Create(ctx, &c); err != nil {
            logger.Fatal("failed to seed campaign", zap.String("id", c.ID), zap.Error(err))
        }
    }

    // oldest first so the feed lists the seed newest first
    notifications := &repository.NotificationRepository{DB: conn}
    seed := repository.SeedNotifications()
    for i := len(seed) - 1; i >= 0; i-- {
        if err := notifications.Create(ctx, &seed[i]); err != nil {
            logger.Fatal("failed to seed notification", zap.Int("id", seed[i].ID), zap.Error(err))
        }
    }
    if err := db.ResetNotificationIDs(ctx, conn); err != nil {
        logger.Fatal("failed to reset notification ids", zap.Error(err))
    }

    fmt.Printf("Seeded %d campaigns and %d notifications\n", len(repository.SeedCampaigns()), len(seed))
    fmt.Println("Database seeding completed successfully!")
}
