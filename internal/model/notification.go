// internal/model/notification.go
package model

type NotificationType string

const (
    NotificationUpdates NotificationType = "Updates"
    NotificationLeads   NotificationType = "Leads"
    NotificationBlocker NotificationType = "Blocker"
    NotificationBilling NotificationType = "Billing"
)

// Notification is an event surfaced in the dashboard drawer. Read is the only mutable field.
type Notification struct {
    ID    int              `db:"id" json:"id"`
    Type  NotificationType `db:"type" json:"type"`
    Title string           `db:"title" json:"title"`
    Body  string           `db:"body" json:"body"`
    CTA   string           `db:"cta" json:"cta"`
    Date  string           `db:"date_label" json:"date"`
    Read  bool             `db:"read" json:"read"`
}
