package repository

import "github.com/unclebandit/campaign-dashboard/internal/model"

// SeedCampaigns returns the demo campaigns used by the in-memory store and the seeder.
func SeedCampaigns() []model.Campaign {
	return []model.Campaign{
		{
			ID: "1", Name: "Vibe Outbound Campaign", Sequence: "SaaS Founders Nurture Sequence",
			Status: model.StatusInProgress, Channel: model.ChannelEmail,
			Metrics: []model.Metric{
				{Label: "Outreach", Value: "156"},
				{Label: "Engagements", Value: "23"},
				{Label: "Interested", Value: "8", Color: "text-teal-600"},
			},
			Owner: &model.Owner{Name: "Sarah Chen", Initials: "SC"},
		},
		{
			ID: "2", Name: "Outbound Campaign", Sequence: "SaaS Founders Nurture Sequence",
			Status: model.StatusOnHold, Channel: model.ChannelEmail,
			Metrics: []model.Metric{
				{Label: "Outreach", Value: "342"},
				{Label: "Engagements", Value: "48"},
				{Label: "Interested", Value: "14", Color: "text-teal-600"},
			},
			Owner: &model.Owner{Name: "Mike Johnson", Initials: "MJ"},
		},
		{
			ID: "3", Name: "Vibe Outbound Campaign", Sequence: "SaaS Founders Nurture Sequence",
			Status: model.StatusDraft, Channel: model.ChannelPhone,
			Metrics: []model.Metric{
				{Label: "Contacts", Value: "1,247"},
				{Label: "Companies", Value: "89"},
			},
			Owner: &model.Owner{Name: "Alex Rivera", Initials: "AR"},
		},
		{
			ID: "4", Name: "Enterprise Outreach", Sequence: "Enterprise Decision Makers",
			Status: model.StatusIdeas, Channel: model.ChannelEmail,
			Metrics: []model.Metric{
				{Label: "Contacts", Value: "1,247"},
				{Label: "Companies", Value: "89"},
			},
		},
		{
			ID: "5", Name: "Product Demo Campaign", Sequence: "Demo Request Follow-up",
			Status: model.StatusInProgress, Channel: model.ChannelEmail,
			Metrics: []model.Metric{
				{Label: "Outreach", Value: "289"},
				{Label: "Engagements", Value: "67"},
				{Label: "Interested", Value: "19", Color: "text-teal-600"},
			},
			Owner: &model.Owner{Name: "Emma Davis", Initials: "ED"},
		},
	}
}

// SeedNotifications returns the demo notification feed, all unread.
func SeedNotifications() []model.Notification {
	return []model.Notification{
		{ID: 1, Type: model.NotificationUpdates, Title: "First email sent: Vibe Outreach 🎉", Body: "Your campaign: Vibe Outreach is live — first email delivered.", CTA: "View Campaign", Date: "5m ago"},
		{ID: 2, Type: model.NotificationUpdates, Title: "First LinkedIn request sent: Enterprise Leads 🎉", Body: "Your campaign: Enterprise Leads is live — first LinkedIn request sent.", CTA: "View Campaign", Date: "1h ago"},
		{ID: 5, Type: model.NotificationLeads, Title: "John Doe replied to your campaign (Vibe Outreach)", Body: "“Thanks for reaching out, I'm interested in learning more…”", CTA: "View in Inbox", Date: "3h ago"},
		{ID: 7, Type: model.NotificationBlocker, Title: "Email campaign paused: Nurture Sequence", Body: "Nurture Sequence has been paused. Investigate.", CTA: "View Campaign", Date: "1d ago"},
		{ID: 9, Type: model.NotificationLeads, Title: "⚠️ 5 tasks overdue 7 days", Body: "Quick wins are slipping—follow up now.", CTA: "View Overdue Tasks", Date: "2d ago"},
		{ID: 11, Type: model.NotificationBilling, Title: "Account balance –$50.00", Body: "All campaigns paused until you add funds.", CTA: "Add funds", Date: "3d ago"},
	}
}
