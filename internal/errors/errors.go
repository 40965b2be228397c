// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is returned when no campaign has the requested ID
type ErrCampaignNotFound struct {
    CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

type ErrNotificationNotFound struct {
    NotificationID int
}

func (e *ErrNotificationNotFound) Error() string {
    return fmt.Sprintf("notification with ID %d not found", e.NotificationID)
}

func NewNotificationNotFound(id int) error {
    return &ErrNotificationNotFound{NotificationID: id}
}

// ErrInvalidTransition is returned when an action cannot be applied in the campaign's current status.
type ErrInvalidTransition struct {
    CampaignID string
    Action     string
    Status     string
}

func (e *ErrInvalidTransition) Error() string {
    return fmt.Sprintf("action %q not allowed for campaign %s in status %s", e.Action, e.CampaignID, e.Status)
}

func NewInvalidTransition(id, action, status string) error {
    return &ErrInvalidTransition{CampaignID: id, Action: action, Status: status}
}

// ErrDuplicateCardConfig is returned when a card table defines the same key twice.
type ErrDuplicateCardConfig struct {
    StatusGroup  string
    ChannelGroup string
}

func (e *ErrDuplicateCardConfig) Error() string {
    return fmt.Sprintf("duplicate card config for (%s, %s)", e.StatusGroup, e.ChannelGroup)
}

func NewDuplicateCardConfig(statusGroup, channelGroup string) error {
    return &ErrDuplicateCardConfig{StatusGroup: statusGroup, ChannelGroup: channelGroup}
}
