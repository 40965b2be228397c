package service

import (
	"strings"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type cardKey struct {
	status  model.StatusGroup
	channel model.ChannelGroup
}

// CardConfigTable holds at most one CardConfig per (StatusGroup, ChannelGroup).
// It is read-only once built.
type CardConfigTable struct {
	configs map[cardKey]model.CardConfig
}

// NewCardConfigTable indexes configs, rejecting duplicate keys.
func NewCardConfigTable(configs []model.CardConfig) (*CardConfigTable, error) {
	t := &CardConfigTable{configs: make(map[cardKey]model.CardConfig, len(configs))}
	for _, c := range configs {
		k := cardKey{c.StatusGroup, c.ChannelGroup}
		if _, dup := t.configs[k]; dup {
			return nil, appErrors.NewDuplicateCardConfig(string(c.StatusGroup), string(c.ChannelGroup))
		}
		c.Data = append([]string(nil), c.Data...)
		t.configs[k] = c
	}
	return t, nil
}

// Resolve looks up the configuration for a campaign status and channel.
func (t *CardConfigTable) Resolve(status model.Status, channel model.Channel) (model.CardConfig, bool) {
	if t == nil {
		return model.CardConfig{}, false
	}
	c, ok := t.configs[cardKey{StatusGroupFor(status), ChannelGroupFor(channel)}]
	return c, ok
}

func (t *CardConfigTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.configs)
}

// Button variants
const (
	VariantDefault = "default"
	VariantOutline = "outline"
)

// Icon keys
const (
	IconBuild    = "build"
	IconEye      = "eye"
	IconPause    = "pause"
	IconDismiss  = "dismiss"
	IconPlay     = "play"
	IconRocket   = "rocket"
	IconBuilding = "building"
)

type ActionButton struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
	Icon    string `json:"icon"`
	// Action is set when pressing the button requests a status transition.
	Action model.Action `json:"action,omitempty"`
}

type DisplayMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// CampaignCard is the view model of one campaign summary card.
type CampaignCard struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Status          model.Status       `json:"status"`
	Channel         model.Channel      `json:"channel"`
	StatusGroup     model.StatusGroup  `json:"status_group"`
	ChannelGroup    model.ChannelGroup `json:"channel_group"`
	Owner           *model.Owner       `json:"owner,omitempty"`
	PrimaryButton   ActionButton       `json:"primary_button"`
	SecondaryButton *ActionButton      `json:"secondary_button,omitempty"`
	Metrics         []DisplayMetric    `json:"metrics"`
	Configured      bool               `json:"configured"`
}

// BuildCard derives the card of a campaign. When no configuration matches, buttons
// fall back to the status-only mapping and the campaign's own metrics are shown.
func BuildCard(c model.Campaign, table *CardConfigTable) CampaignCard {
	card := CampaignCard{
		ID:           c.ID,
		Title:        c.Name,
		Description:  c.Sequence,
		Status:       c.Status,
		Channel:      c.Channel,
		StatusGroup:  StatusGroupFor(c.Status),
		ChannelGroup: ChannelGroupFor(c.Channel),
		Owner:        c.Owner,
	}

	cfg, ok := table.Resolve(c.Status, c.Channel)
	if !ok {
		card.PrimaryButton = statusButton(c.Status)
		card.Metrics = ownMetrics(c)
		return card
	}

	card.Configured = true
	card.PrimaryButton = primaryButton(cfg.PrimaryAction)
	if cfg.SecondaryAction != "" {
		b := secondaryButton(cfg.SecondaryAction)
		card.SecondaryButton = &b
	}
	if cfg.Title != "" {
		card.Title = cfg.Title
	}
	if cfg.Description != "" {
		card.Description = cfg.Description
	}

	if len(cfg.Data) == 0 {
		card.Metrics = ownMetrics(c)
		return card
	}
	card.Metrics = make([]DisplayMetric, 0, len(cfg.Data))
	for _, label := range cfg.Data {
		dm := DisplayMetric{Label: label, Value: "0"}
		if m, found := c.MetricByLabel(label); found {
			dm.Value = string(m.Value)
			dm.Color = m.Color
		}
		card.Metrics = append(card.Metrics, dm)
	}
	return card
}

func ownMetrics(c model.Campaign) []DisplayMetric {
	out := make([]DisplayMetric, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		out = append(out, DisplayMetric{Label: m.Label, Value: string(m.Value), Color: m.Color})
	}
	return out
}

func primaryButton(label string) ActionButton {
	variant := VariantDefault
	if strings.Contains(strings.ToLower(label), "view") {
		variant = VariantOutline
	}
	icon := IconEye
	switch strings.ToLower(label) {
	case "build/edit":
		icon = IconBuild
	case "view":
		icon = IconEye
	case "pause":
		icon = IconPause
	case "dismiss":
		icon = IconDismiss
	}
	b := ActionButton{Label: label, Variant: variant, Icon: icon}
	b.Action, _ = ActionForButton(label)
	return b
}

func secondaryButton(label string) ActionButton {
	icon := IconDismiss
	if strings.ToLower(label) == "pause" {
		icon = IconPause
	}
	b := ActionButton{Label: label, Variant: VariantOutline, Icon: icon}
	b.Action, _ = ActionForButton(label)
	return b
}

// statusButton is the action button used when a campaign has no card configuration.
func statusButton(s model.Status) ActionButton {
	switch s {
	case model.StatusInProgress:
		return ActionButton{Label: "Pause", Variant: VariantOutline, Icon: IconPause, Action: model.ActionPause}
	case model.StatusOnHold, model.StatusPaused:
		return ActionButton{Label: "Resume", Variant: VariantDefault, Icon: IconPlay, Action: model.ActionResume}
	case model.StatusDraft:
		return ActionButton{Label: "Launch", Variant: VariantDefault, Icon: IconRocket, Action: model.ActionLaunch}
	default:
		return ActionButton{Label: "Build", Variant: VariantDefault, Icon: IconBuilding, Action: model.ActionBuild}
	}
}

// ActionForButton maps a button label to the campaign action it triggers.
func ActionForButton(label string) (model.Action, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pause":
		return model.ActionPause, true
	case "resume":
		return model.ActionResume, true
	case "launch":
		return model.ActionLaunch, true
	case "build":
		return model.ActionBuild, true
	}
	return "", false
}
