package repository

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
    "github.com/unclebandit/campaign-dashboard/internal/model"
)

// CampaignRepository reads campaigns and their metrics from PostgreSQL.
type CampaignRepository struct {
    DB *sql.DB
}

// ====================== Campaigns ======================

// Create inserts the campaign and its metrics in one transaction.
func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer tx.Rollback()

    var ownerName, ownerInitials sql.NullString
    if c.Owner != nil {
        ownerName = sql.NullString{String: c.Owner.Name, Valid: true}
        ownerInitials = sql.NullString{String: c.Owner.Initials, Valid: true}
    }

    query := `
        INSERT INTO campaigns (id, name, sequence, status, channel, owner_name, owner_initials, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
    if _, err := tx.ExecContext(ctx, query, c.ID, c.Name, c.Sequence, c.Status, c.Channel, ownerName, ownerInitials, time.Now()); err != nil {
        return fmt.Errorf("insert campaign %s: %w", c.ID, err)
    }

    for i, m := range c.Metrics {
        _, err := tx.ExecContext(ctx,
            `INSERT INTO campaign_metrics (campaign_id, position, label, value, color) VALUES ($1, $2, $3, $4, $5)`,
            c.ID, i, m.Label, string(m.Value), m.Color)
        if err != nil {
            return fmt.Errorf("insert metric %q of campaign %s: %w", m.Label, c.ID, err)
        }
    }

    return tx.Commit()
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
    query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`
    res, err := r.DB.ExecContext(ctx, query, status, time.Now(), id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return appErrors.NewCampaignNotFound(id)
    }
    return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
    query := `
        SELECT id, name, sequence, status, channel, owner_name, owner_initials
        FROM campaigns WHERE id=$1
    `
    c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }

    metrics, err := r.metricsByCampaign(ctx, `WHERE campaign_id=$1`, id)
    if err != nil {
        return nil, err
    }
    c.Metrics = metrics[c.ID]
    return c, nil
}

// ListCampaigns returns every campaign in creation order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
    query := `
        SELECT id, name, sequence, status, channel, owner_name, owner_initials
        FROM campaigns ORDER BY seq ASC
    `
    rows, err := r.DB.QueryContext(ctx, query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    campaigns := []model.Campaign{}
    for rows.Next() {
        c, err := scanCampaign(rows)
        if err != nil {
            return nil, err
        }
        campaigns = append(campaigns, *c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }

    metrics, err := r.metricsByCampaign(ctx, "")
    if err != nil {
        return nil, err
    }
    for i := range campaigns {
        campaigns[i].Metrics = metrics[campaigns[i].ID]
    }
    return campaigns, nil
}

// ====================== Metrics ======================

func (r *CampaignRepository) metricsByCampaign(ctx context.Context, where string, args ...any) (map[string][]model.Metric, error) {
    query := `SELECT campaign_id, label, value, color FROM campaign_metrics ` + where + ` ORDER BY campaign_id, position`
    rows, err := r.DB.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := map[string][]model.Metric{}
    for rows.Next() {
        var campaignID, label, value string
        var color sql.NullString
        if err := rows.Scan(&campaignID, &label, &value, &color); err != nil {
            return nil, err
        }
        out[campaignID] = append(out[campaignID], model.Metric{Label: label, Value: model.MetricValue(value), Color: color.String})
    }
    return out, rows.Err()
}

type rowScanner interface {
    Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
    var c model.Campaign
    var ownerName, ownerInitials sql.NullString
    if err := row.Scan(&c.ID, &c.Name, &c.Sequence, &c.Status, &c.Channel, &ownerName, &ownerInitials); err != nil {
        return nil, err
    }
    if ownerName.Valid {
        c.Owner = &model.Owner{Name: ownerName.String, Initials: ownerInitials.String}
    }
    c.Metrics = []model.Metric{}
    return &c, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
