package service

import "github.com/unclebandit/campaign-dashboard/internal/model"

// MarkAsRead returns a copy of list with notification id marked read.
func MarkAsRead(list []model.Notification, id int) []model.Notification {
	return setRead(list, func(n model.Notification) bool { return n.ID == id }, true)
}

func MarkAsUnread(list []model.Notification, id int) []model.Notification {
	return setRead(list, func(n model.Notification) bool { return n.ID == id }, false)
}

func MarkAllAsRead(list []model.Notification) []model.Notification {
	return setRead(list, func(model.Notification) bool { return true }, true)
}

func setRead(list []model.Notification, match func(model.Notification) bool, read bool) []model.Notification {
	out := make([]model.Notification, len(list))
	copy(out, list)
	for i := range out {
		if match(out[i]) {
			out[i].Read = read
		}
	}
	return out
}

func UnreadCount(list []model.Notification) int {
	n := 0
	for _, item := range list {
		if !item.Read {
			n++
		}
	}
	return n
}

type NotificationFeed struct {
	Items       []model.Notification `json:"items"`
	UnreadCount int                  `json:"unread_count"`
}

func BuildNotificationFeed(list []model.Notification) NotificationFeed {
	items := list
	if items == nil {
		items = []model.Notification{}
	}
	return NotificationFeed{Items: items, UnreadCount: UnreadCount(list)}
}
