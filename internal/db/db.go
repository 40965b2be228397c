// internal/db/db.go
package db

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/lib/pq"
    "go.uber.org/zap"
)

// DSN builds a postgres connection string from its parts.
func DSN(user, pass, host, port, name string) string {
    return fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        user, pass, host, port, name,
    )
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
    db, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("failed to connect to DB: %w", err)
    }

    pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    if err := db.PingContext(pingCtx); err != nil {
        db.Close()
        return nil, fmt.Errorf("failed to ping DB: %w", err)
    }

    logger.Info("connected to database")
    return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS campaigns (
    seq            BIGSERIAL,
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    sequence       TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL,
    channel        TEXT NOT NULL,
    owner_name     TEXT,
    owner_initials TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS campaign_metrics (
    campaign_id TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
    position    INT NOT NULL,
    label       TEXT NOT NULL,
    value       TEXT NOT NULL,
    color       TEXT,
    PRIMARY KEY (campaign_id, position)
);

CREATE TABLE IF NOT EXISTS notifications (
    seq        BIGSERIAL,
    id         SERIAL PRIMARY KEY,
    type       TEXT NOT NULL,
    title      TEXT NOT NULL,
    body       TEXT NOT NULL,
    cta        TEXT NOT NULL,
    date_label TEXT NOT NULL,
    read       BOOLEAN NOT NULL DEFAULT FALSE
);
`

// Migrate creates the dashboard tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
    if _, err := db.ExecContext(ctx, schema); err != nil {
        return fmt.Errorf("failed to apply schema: %w", err)
    }
    return nil
}

// ResetNotificationIDs moves the notifications id sequence past explicitly inserted ids.
func ResetNotificationIDs(ctx context.Context, db *sql.DB) error {
    _, err := db.ExecContext(ctx,
        `SELECT setval(pg_get_serial_sequence('notifications', 'id'), COALESCE((SELECT MAX(id) FROM notifications), 0) + 1, false)`)
    return err
}
