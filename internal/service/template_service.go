// internal/service/template_service.go
package service

import (
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// RenderTemplate replaces {key} placeholders with values from data.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		if v == "" {
			v = "<unknown>"
		}
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

type noticeTemplate struct {
	Type  model.NotificationType
	Title string
	Body  string
	CTA   string
}

var actionNotices = map[model.Action]noticeTemplate{
	model.ActionPause: {
		Type:  model.NotificationBlocker,
		Title: "{channel} campaign paused: {name}",
		Body:  "{name} has been paused. Investigate.",
		CTA:   "View Campaign",
	},
	model.ActionResume: {
		Type:  model.NotificationUpdates,
		Title: "Campaign resumed: {name}",
		Body:  "Your campaign: {name} is live again.",
		CTA:   "View Campaign",
	},
	model.ActionLaunch: {
		Type:  model.NotificationUpdates,
		Title: "Campaign launched: {name} 🎉",
		Body:  "Your campaign: {name} is live, first {channel} outreach is on its way.",
		CTA:   "View Campaign",
	},
	model.ActionBuild: {
		Type:  model.NotificationUpdates,
		Title: "Draft created: {name}",
		Body:  "{name} moved from ideas to draft. Review the {sequence} sequence before launch.",
		CTA:   "View Campaign",
	},
}

// RenderActionNotification builds the notification announcing an applied action.
// The ID is left zero for the repository to assign.
func RenderActionNotification(c model.Campaign, a model.Action) (model.Notification, bool) {
	tpl, ok := actionNotices[a]
	if !ok {
		return model.Notification{}, false
	}
	data := map[string]string{
		"name":     c.Name,
		"sequence": c.Sequence,
		"channel":  channelNoun(c.Channel),
	}
	return model.Notification{
		Type:  tpl.Type,
		Title: RenderTemplate(tpl.Title, data),
		Body:  RenderTemplate(tpl.Body, data),
		CTA:   tpl.CTA,
		Date:  "just now",
	}, true
}

func channelNoun(c model.Channel) string {
	switch ChannelGroupFor(c) {
	case model.ChannelGroupEmail:
		return "Email"
	case model.ChannelGroupLinkedIn:
		return "LinkedIn"
	case model.ChannelGroupDialer:
		return "Dialer"
	}
	return ""
}
