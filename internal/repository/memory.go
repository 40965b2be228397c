package repository

import (
	"context"
	"sync"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// MemoryCampaignRepository keeps campaigns in insertion order. Callers always
// receive copies, so the stored records only change through UpdateStatus.
type MemoryCampaignRepository struct {
	mu        sync.RWMutex
	campaigns []model.Campaign
}

func NewMemoryCampaignRepository(seed []model.Campaign) *MemoryCampaignRepository {
	r := &MemoryCampaignRepository{campaigns: make([]model.Campaign, 0, len(seed))}
	for _, c := range seed {
		r.campaigns = append(r.campaigns, cloneCampaign(c))
	}
	return r
}

func (r *MemoryCampaignRepository) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Campaign, len(r.campaigns))
	for i, c := range r.campaigns {
		out[i] = cloneCampaign(c)
	}
	return out, nil
}

func (r *MemoryCampaignRepository) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.campaigns {
		if c.ID == id {
			cp := cloneCampaign(c)
			return &cp, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (r *MemoryCampaignRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			r.campaigns[i].Status = status
			return nil
		}
	}
	return appErrors.NewCampaignNotFound(id)
}

// MemoryNotificationRepository holds the notification feed, newest first.
type MemoryNotificationRepository struct {
	mu     sync.RWMutex
	items  []model.Notification
	nextID int
}

func NewMemoryNotificationRepository(seed []model.Notification) *MemoryNotificationRepository {
	r := &MemoryNotificationRepository{items: append([]model.Notification(nil), seed...)}
	for _, n := range seed {
		if n.ID >= r.nextID {
			r.nextID = n.ID + 1
		}
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	return r
}

func (r *MemoryNotificationRepository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Notification(nil), r.items...), nil
}

func (r *MemoryNotificationRepository) SetRead(ctx context.Context, id int, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = read
			return nil
		}
	}
	return appErrors.NewNotificationNotFound(id)
}

func (r *MemoryNotificationRepository) SetAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].Read = true
	}
	return nil
}

// Create assigns the next ID and prepends n to the feed.
func (r *MemoryNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = r.nextID
	r.nextID++
	r.items = append([]model.Notification{*n}, r.items...)
	return nil
}

var (
	_ CampaignRepositoryInterface     = (*MemoryCampaignRepository)(nil)
	_ NotificationRepositoryInterface = (*MemoryNotificationRepository)(nil)
)
