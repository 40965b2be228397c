package service

import "github.com/unclebandit/campaign-dashboard/internal/model"

const (
	MetricOutreach    = "Outreach"
	MetricEngagements = "Engagements"
	MetricInterested  = "Interested"
)

// TrackedMetrics are the metric labels summed across campaigns.
var TrackedMetrics = []string{MetricOutreach, MetricEngagements, MetricInterested}

type MetricTotal struct {
	Total     int                `json:"total"`
	ByChannel map[ChannelKey]int `json:"by_channel"`
}

type MetricsSummary struct {
	InProgressCount     int                    `json:"in_progress_count"`
	InProgressByChannel map[ChannelKey]int     `json:"in_progress_by_channel"`
	Totals              map[string]MetricTotal `json:"totals"`
}

// AggregateMetrics computes dashboard totals in a single pass. Campaigns lacking a
// tracked label contribute nothing for it; only the first entry of a label counts.
func AggregateMetrics(campaigns []model.Campaign) MetricsSummary {
	summary := MetricsSummary{
		InProgressByChannel: newChannelCounts(),
		Totals:              make(map[string]MetricTotal, len(TrackedMetrics)),
	}
	for _, label := range TrackedMetrics {
		summary.Totals[label] = MetricTotal{ByChannel: newChannelCounts()}
	}

	for i := range campaigns {
		c := &campaigns[i]
		ch := ChannelKeyFor(c.Channel)

		if c.Status == model.StatusInProgress {
			summary.InProgressCount++
			summary.InProgressByChannel[ch]++
		}

		for _, label := range TrackedMetrics {
			m, ok := c.MetricByLabel(label)
			if !ok {
				continue
			}
			val := ToNumber(m.Value)
			t := summary.Totals[label]
			t.Total += val
			t.ByChannel[ch] += val
			summary.Totals[label] = t
		}
	}

	return summary
}

type BreakdownEntry struct {
	Channel ChannelKey `json:"channel"`
	Value   string     `json:"value"`
}

// StatCard is one summary tile on the dashboard.
type StatCard struct {
	Title     string           `json:"title"`
	Value     string           `json:"value"`
	Breakdown []BreakdownEntry `json:"breakdown"`
}

const StatLiveCampaigns = "Live Campaigns"

// notTracked marks breakdown cells with no live-campaign tracking.
const notTracked = "N/A"

// BuildStatCards renders the summary as the four dashboard tiles.
func BuildStatCards(s MetricsSummary) []StatCard {
	cards := make([]StatCard, 0, 1+len(TrackedMetrics))

	live := StatCard{Title: StatLiveCampaigns, Value: FormatAbbr(s.InProgressCount)}
	for _, ch := range ChannelKeys {
		v := FormatAbbr(s.InProgressByChannel[ch])
		if ch == ChannelKeyLinkedInPosts || ch == ChannelKeyDialer {
			v = notTracked
		}
		live.Breakdown = append(live.Breakdown, BreakdownEntry{Channel: ch, Value: v})
	}
	cards = append(cards, live)

	for _, label := range TrackedMetrics {
		t := s.Totals[label]
		card := StatCard{Title: label, Value: FormatAbbr(t.Total)}
		for _, ch := range ChannelKeys {
			card.Breakdown = append(card.Breakdown, BreakdownEntry{Channel: ch, Value: FormatAbbr(t.ByChannel[ch])})
		}
		cards = append(cards, card)
	}
	return cards
}
