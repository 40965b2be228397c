// internal/model/card_config.go
package model

// StatusGroup is the display bucket a campaign status collapses into.
type StatusGroup string

const (
    StatusGroupIdea       StatusGroup = "Idea"
    StatusGroupDraft      StatusGroup = "Draft"
    StatusGroupBlocked    StatusGroup = "Blocked"
    StatusGroupInProgress StatusGroup = "In Progress"
)

// ChannelGroup is the three-bucket channel grouping used for card configuration.
type ChannelGroup string

const (
    ChannelGroupEmail    ChannelGroup = "Email"
    ChannelGroupLinkedIn ChannelGroup = "LinkedIn"
    ChannelGroupDialer   ChannelGroup = "Dialer"
)

// CardConfig is a presentation rule for campaign cards of one (StatusGroup, ChannelGroup) pair.
type CardConfig struct {
    StatusGroup     StatusGroup  `yaml:"status_group" json:"status_group"`
    ChannelGroup    ChannelGroup `yaml:"channel_group" json:"channel_group"`
    PrimaryAction   string       `yaml:"primary_action" json:"primary_action"`
    SecondaryAction string       `yaml:"secondary_action,omitempty" json:"secondary_action,omitempty"`
    // Data lists the metric labels shown on the card. Empty means the campaign's own metrics.
    Data        []string `yaml:"data,omitempty" json:"data,omitempty"`
    Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
    Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}
