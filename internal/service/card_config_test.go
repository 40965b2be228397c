package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func testCardTable(t *testing.T) *service.CardConfigTable {
	t.Helper()
	table, err := service.NewCardConfigTable([]model.CardConfig{
		{StatusGroup: model.StatusGroupInProgress, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "View", SecondaryAction: "Pause", Data: []string{"Outreach", "Engagements", "Interested", "Replies"}},
		{StatusGroup: model.StatusGroupIdea, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "Build/Edit", SecondaryAction: "Dismiss"},
		{StatusGroup: model.StatusGroupBlocked, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "Resume", Title: "Sending paused"},
		{StatusGroup: model.StatusGroupBlocked, ChannelGroup: model.ChannelGroupLinkedIn, PrimaryAction: "Preview", Title: "LinkedIn blocked", Description: "Reconnect your account"},
		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupEmail, PrimaryAction: "Dismiss"},
	})
	require.NoError(t, err)
	return table
}

func campaign(id string, status model.Status, channel model.Channel) model.Campaign {
	return model.Campaign{
		ID: id, Name: "Campaign " + id, Sequence: "Sequence " + id,
		Status: status, Channel: channel,
		Metrics: []model.Metric{
			{Label: "Outreach", Value: "156"},
			{Label: "Engagements", Value: "23"},
			{Label: "Interested", Value: "8", Color: "text-teal-600"},
		},
		Owner: &model.Owner{Name: "Sarah Chen", Initials: "SC"},
	}
}

func TestNewCardConfigTable_RejectsDuplicates(t *testing.T) {
	_, err := service.NewCardConfigTable([]model.CardConfig{
		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupDialer, PrimaryAction: "Build/Edit"},
		{StatusGroup: model.StatusGroupDraft, ChannelGroup: model.ChannelGroupDialer, PrimaryAction: "View"},
	})
	require.Error(t, err)

	var dup *appErrors.ErrDuplicateCardConfig
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Draft", dup.StatusGroup)
	assert.Equal(t, "Dialer", dup.ChannelGroup)
}

func TestResolve_GroupsCollapse(t *testing.T) {
	table := testCardTable(t)

	onHold, ok := table.Resolve(model.StatusOnHold, model.ChannelEmail)
	require.True(t, ok)
	paused, ok := table.Resolve(model.StatusPaused, model.ChannelEmail)
	require.True(t, ok)
	assert.Equal(t, onHold, paused)

	outbound, ok := table.Resolve(model.StatusOnHold, model.ChannelLinkedInOutbound)
	require.True(t, ok)
	inbound, ok := table.Resolve(model.StatusPaused, model.ChannelLinkedInInbound)
	require.True(t, ok)
	assert.Equal(t, outbound, inbound)
	assert.Equal(t, "LinkedIn blocked", inbound.Title)

	_, ok = table.Resolve(model.StatusDraft, model.ChannelPhone)
	assert.False(t, ok)

	var nilTable *service.CardConfigTable
	_, ok = nilTable.Resolve(model.StatusDraft, model.ChannelEmail)
	assert.False(t, ok)
	assert.Zero(t, nilTable.Len())
}

func TestBuildCard_ConfiguredMetricsAndButtons(t *testing.T) {
	card := service.BuildCard(campaign("1", model.StatusInProgress, model.ChannelEmail), testCardTable(t))

	assert.True(t, card.Configured)
	assert.Equal(t, "Campaign 1", card.Title)
	assert.Equal(t, "Sequence 1", card.Description)
	assert.Equal(t, model.StatusGroupInProgress, card.StatusGroup)
	assert.Equal(t, model.ChannelGroupEmail, card.ChannelGroup)

	assert.Equal(t, service.ActionButton{Label: "View", Variant: service.VariantOutline, Icon: service.IconEye}, card.PrimaryButton)
	require.NotNil(t, card.SecondaryButton)
	assert.Equal(t, service.ActionButton{Label: "Pause", Variant: service.VariantOutline, Icon: service.IconPause, Action: model.ActionPause}, *card.SecondaryButton)

	assert.Equal(t, []service.DisplayMetric{
		{Label: "Outreach", Value: "156"},
		{Label: "Engagements", Value: "23"},
		{Label: "Interested", Value: "8", Color: "text-teal-600"},
		{Label: "Replies", Value: "0"},
	}, card.Metrics)
}

func TestBuildCard_EmptyDataShowsOwnMetrics(t *testing.T) {
	c := campaign("4", model.StatusIdeas, model.ChannelEmail)
	card := service.BuildCard(c, testCardTable(t))

	assert.True(t, card.Configured)
	assert.Equal(t, service.ActionButton{Label: "Build/Edit", Variant: service.VariantDefault, Icon: service.IconBuild}, card.PrimaryButton)
	require.NotNil(t, card.SecondaryButton)
	assert.Equal(t, service.IconDismiss, card.SecondaryButton.Icon)
	assert.Equal(t, service.VariantOutline, card.SecondaryButton.Variant)
	require.Len(t, card.Metrics, len(c.Metrics))
	for i, m := range c.Metrics {
		assert.Equal(t, m.Label, card.Metrics[i].Label)
		assert.Equal(t, string(m.Value), card.Metrics[i].Value)
	}
}

func TestBuildCard_TitleAndDescriptionOverrides(t *testing.T) {
	table := testCardTable(t)

	email := service.BuildCard(campaign("2", model.StatusOnHold, model.ChannelEmail), table)
	assert.Equal(t, "Sending paused", email.Title)
	assert.Equal(t, "Sequence 2", email.Description, "empty override keeps the sequence")
	assert.Equal(t, model.ActionResume, email.PrimaryButton.Action)
	assert.Nil(t, email.SecondaryButton)

	linkedin := service.BuildCard(campaign("6", model.StatusPaused, model.ChannelLinkedInInbound), table)
	assert.Equal(t, "LinkedIn blocked", linkedin.Title)
	assert.Equal(t, "Reconnect your account", linkedin.Description)
	assert.Equal(t, service.VariantOutline, linkedin.PrimaryButton.Variant, "labels containing view use the outline style")
	assert.Equal(t, service.IconEye, linkedin.PrimaryButton.Icon)
}

func TestBuildCard_PrimaryDismissIsDefaultVariant(t *testing.T) {
	card := service.BuildCard(campaign("7", model.StatusDraft, model.ChannelEmail), testCardTable(t))
	assert.Equal(t, service.ActionButton{Label: "Dismiss", Variant: service.VariantDefault, Icon: service.IconDismiss}, card.PrimaryButton)
}

func TestBuildCard_FallbackByStatus(t *testing.T) {
	tests := []struct {
		status model.Status
		want   service.ActionButton
	}{
		{model.StatusInProgress, service.ActionButton{Label: "Pause", Variant: service.VariantOutline, Icon: service.IconPause, Action: model.ActionPause}},
		{model.StatusOnHold, service.ActionButton{Label: "Resume", Variant: service.VariantDefault, Icon: service.IconPlay, Action: model.ActionResume}},
		{model.StatusPaused, service.ActionButton{Label: "Resume", Variant: service.VariantDefault, Icon: service.IconPlay, Action: model.ActionResume}},
		{model.StatusDraft, service.ActionButton{Label: "Launch", Variant: service.VariantDefault, Icon: service.IconRocket, Action: model.ActionLaunch}},
		{model.StatusIdeas, service.ActionButton{Label: "Build", Variant: service.VariantDefault, Icon: service.IconBuilding, Action: model.ActionBuild}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			c := campaign("9", tt.status, model.ChannelPhone)
			card := service.BuildCard(c, nil)

			assert.False(t, card.Configured)
			assert.Equal(t, tt.want, card.PrimaryButton)
			assert.Nil(t, card.SecondaryButton)
			assert.Equal(t, c.Name, card.Title)
			assert.Len(t, card.Metrics, len(c.Metrics))
		})
	}
}

func TestBuildCard_Pure(t *testing.T) {
	table := testCardTable(t)
	c := campaign("1", model.StatusInProgress, model.ChannelEmail)
	assert.Equal(t, service.BuildCard(c, table), service.BuildCard(c, table))
}

func TestActionForButton(t *testing.T) {
	a, ok := service.ActionForButton(" Resume ")
	assert.True(t, ok)
	assert.Equal(t, model.ActionResume, a)

	_, ok = service.ActionForButton("Dismiss")
	assert.False(t, ok)
}
