package service

import "github.com/unclebandit/campaign-dashboard/internal/model"

// ChannelKey is the four-bucket channel grouping used by metric aggregation.
// Finer than model.ChannelGroup: the two LinkedIn channels stay apart.
type ChannelKey string

const (
	ChannelKeyEmail            ChannelKey = "Email"
	ChannelKeyLinkedInMessages ChannelKey = "LinkedIn Messages"
	ChannelKeyLinkedInPosts    ChannelKey = "LinkedIn Posts"
	ChannelKeyDialer           ChannelKey = "Dialer"
)

// ChannelKeys is the display order of the aggregation buckets.
var ChannelKeys = []ChannelKey{ChannelKeyEmail, ChannelKeyLinkedInMessages, ChannelKeyLinkedInPosts, ChannelKeyDialer}

func ChannelKeyFor(c model.Channel) ChannelKey {
	switch c {
	case model.ChannelEmail:
		return ChannelKeyEmail
	case model.ChannelPhone:
		return ChannelKeyDialer
	case model.ChannelLinkedInOutbound:
		return ChannelKeyLinkedInMessages
	case model.ChannelLinkedInInbound:
		return ChannelKeyLinkedInPosts
	}
	// unknown channels are treated like inbound LinkedIn
	return ChannelKeyLinkedInPosts
}

// ChannelGroupFor maps a channel to its card-configuration group.
func ChannelGroupFor(c model.Channel) model.ChannelGroup {
	switch c {
	case model.ChannelEmail:
		return model.ChannelGroupEmail
	case model.ChannelPhone:
		return model.ChannelGroupDialer
	case model.ChannelLinkedInOutbound, model.ChannelLinkedInInbound:
		return model.ChannelGroupLinkedIn
	}
	return ""
}

// StatusGroupFor maps a campaign status to its display group.
func StatusGroupFor(s model.Status) model.StatusGroup {
	switch s {
	case model.StatusIdeas:
		return model.StatusGroupIdea
	case model.StatusDraft:
		return model.StatusGroupDraft
	case model.StatusOnHold, model.StatusPaused:
		return model.StatusGroupBlocked
	case model.StatusInProgress:
		return model.StatusGroupInProgress
	}
	return ""
}

func newChannelCounts() map[ChannelKey]int {
	m := make(map[ChannelKey]int, len(ChannelKeys))
	for _, k := range ChannelKeys {
		m[k] = 0
	}
	return m
}
