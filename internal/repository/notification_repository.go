package repository

import (
	"context"
	"database/sql"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// NotificationRepository stores the notification feed in PostgreSQL.
type NotificationRepository struct {
	DB *sql.DB
}

// ListNotifications returns the feed newest first.
func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	query := `
        SELECT id, type, title, body, cta, date_label, read
        FROM notifications
        ORDER BY seq DESC
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &n.CTA, &n.Date, &n.Read); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *NotificationRepository) SetRead(ctx context.Context, id int, read bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read=$1 WHERE id=$2`, read, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewNotificationNotFound(id)
	}
	return nil
}

func (r *NotificationRepository) SetAllRead(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read=TRUE WHERE read=FALSE`)
	return err
}

// Create inserts n. A zero ID lets the database assign one.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if n.ID != 0 {
		query := `
            INSERT INTO notifications (id, type, title, body, cta, date_label, read)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		_, err := r.DB.ExecContext(ctx, query, n.ID, n.Type, n.Title, n.Body, n.CTA, n.Date, n.Read)
		return err
	}
	query := `
        INSERT INTO notifications (type, title, body, cta, date_label, read)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query, n.Type, n.Title, n.Body, n.CTA, n.Date, n.Read).Scan(&n.ID)
}

var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)
