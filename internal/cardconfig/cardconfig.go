// Package cardconfig loads the campaign card configuration table.
package cardconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

type file struct {
	Cards []model.CardConfig `yaml:"cards"`
}

// Load reads a YAML card table from path. An empty path yields the built-in table.
func Load(path string) (*service.CardConfigTable, error) {
	if path == "" {
		return service.NewCardConfigTable(Default())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML card table.
func Parse(data []byte) (*service.CardConfigTable, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse card config: %w", err)
	}
	for i, c := range f.Cards {
		if err := validate(c); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
	}
	return service.NewCardConfigTable(f.Cards)
}

func validate(c model.CardConfig) error {
	switch c.StatusGroup {
	case model.StatusGroupIdea, model.StatusGroupDraft, model.StatusGroupBlocked, model.StatusGroupInProgress:
	default:
		return fmt.Errorf("unknown status_group %q", c.StatusGroup)
	}
	switch c.ChannelGroup {
	case model.ChannelGroupEmail, model.ChannelGroupLinkedIn, model.ChannelGroupDialer:
	default:
		return fmt.Errorf("unknown channel_group %q", c.ChannelGroup)
	}
	if c.PrimaryAction == "" {
		return fmt.Errorf("primary_action is required")
	}
	return nil
}

var (
	prospectingFields = []string{"Contacts", "Companies"}
	outreachFields    = []string{"Outreach", "Engagements", "Interested"}
	dialerFields      = []string{"Calls", "Connected", "Interested"}
)

// Default is the built-in card table. Blocked dialer campaigns are deliberately
// absent and use the status-only buttons.
func Default() []model.CardConfig {
	return []model.CardConfig{
		{StatusGroup: model.StatusGroupIdea, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "Build/Edit", SecondaryAction: "Dismiss", Data: prospectingFields},
		{StatusGroup: model.StatusGroupIdea, ChannelGroup: model.ChannelGroupLinkedIn, PrimaryAction: "Build/Edit", SecondaryAction: "Dismiss", Data: prospectingFields},
		{StatusGroup: model.StatusGroupIdea, ChannelGroup: model.ChannelGroupDialer, PrimaryAction: "Build/Edit", SecondaryAction: "Dismiss", Data: prospectingFields},

		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "Build/Edit", Data: prospectingFields},
		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupLinkedIn, PrimaryAction: "Build/Edit", Data: prospectingFields},
		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupDialer, PrimaryAction: "Build/Edit", Data: prospectingFields},

		{StatusGroup: model.StatusGroupBlocked, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "View", SecondaryAction: "Dismiss", Data: outreachFields,
			Description: "Sending is on hold. Resolve the blocker to resume outreach."},
		{StatusGroup: model.StatusGroupBlocked, ChannelGroup: model.ChannelGroupLinkedIn, PrimaryAction: "View", SecondaryAction: "Dismiss", Data: outreachFields,
			Title: "LinkedIn campaign blocked", Description: "LinkedIn limits reached. Requests resume automatically."},

		{StatusGroup: model.StatusGroupInProgress, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "View", SecondaryAction: "Pause", Data: outreachFields},
		{StatusGroup: model.StatusGroupInProgress, ChannelGroup: model.ChannelGroupLinkedIn, PrimaryAction: "View", SecondaryAction: "Pause", Data: outreachFields},
		{StatusGroup: model.StatusGroupInProgress, ChannelGroup: model.ChannelGroupDialer, PrimaryAction: "View", SecondaryAction: "Pause", Data: dialerFields},
	}
}
