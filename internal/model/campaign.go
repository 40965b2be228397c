// internal/model/campaign.go
package model

import (
    "bytes"
    "encoding/json"
)

// Status is the lifecycle state of a campaign. A campaign is in exactly one status.
type Status string

const (
    StatusIdeas      Status = "ideas"
    StatusDraft      Status = "draft"
    StatusOnHold     Status = "on-hold"
    StatusPaused     Status = "paused"
    StatusInProgress Status = "in-progress"
)

// Statuses lists every campaign status.
var Statuses = []Status{StatusIdeas, StatusDraft, StatusOnHold, StatusPaused, StatusInProgress}

func (s Status) Valid() bool {
    switch s {
    case StatusIdeas, StatusDraft, StatusOnHold, StatusPaused, StatusInProgress:
        return true
    }
    return false
}

// Channel is the outreach medium of a campaign.
type Channel string

const (
    ChannelEmail            Channel = "email"
    ChannelPhone            Channel = "phone"
    ChannelLinkedInOutbound Channel = "linkedin-outbound"
    ChannelLinkedInInbound  Channel = "linkedin-inbound"
)

var Channels = []Channel{ChannelEmail, ChannelPhone, ChannelLinkedInOutbound, ChannelLinkedInInbound}

func (c Channel) Valid() bool {
    switch c {
    case ChannelEmail, ChannelPhone, ChannelLinkedInOutbound, ChannelLinkedInInbound:
        return true
    }
    return false
}

// MetricValue is a display-formatted metric value such as "1,247".
// It decodes from either a JSON string or a JSON number.
type MetricValue string

func (v *MetricValue) UnmarshalJSON(data []byte) error {
    data = bytes.TrimSpace(data)
    if len(data) > 0 && data[0] == '"' {
        var s string
        if err := json.Unmarshal(data, &s); err != nil {
            return err
        }
        *v = MetricValue(s)
        return nil
    }
    var n json.Number
    if err := json.Unmarshal(data, &n); err != nil {
        return err
    }
    *v = MetricValue(n.String())
    return nil
}

type Metric struct {
    Label string      `db:"label" json:"label"`
    Value MetricValue `db:"value" json:"value"`
    Color string      `db:"color" json:"color,omitempty"`
}

type Owner struct {
    Name     string `db:"owner_name" json:"name"`
    Initials string `db:"owner_initials" json:"initials"`
}

type Campaign struct {
    ID       string   `db:"id" json:"id"`
    Name     string   `db:"name" json:"name"`
    Sequence string   `db:"sequence" json:"sequence"`
    Status   Status   `db:"status" json:"status"`
    Channel  Channel  `db:"channel" json:"type"`
    Metrics  []Metric `json:"metrics"`
    Owner    *Owner   `json:"owner,omitempty"`
}

// MetricByLabel returns the first metric whose label matches exactly.
func (c *Campaign) MetricByLabel(label string) (Metric, bool) {
    for _, m := range c.Metrics {
        if m.Label == label {
            return m, true
        }
    }
    return Metric{}, false
}

// OwnerName returns the owner's name, or "" for an unowned campaign.
func (c *Campaign) OwnerName() string {
    if c.Owner == nil {
        return ""
    }
    return c.Owner.Name
}
