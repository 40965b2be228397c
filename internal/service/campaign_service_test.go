package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

// Mock publisher
type MockPublisher struct {
	Topics   []string
	Payloads []any
	Err      error
}

func (m *MockPublisher) Publish(topic string, payload any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Topics = append(m.Topics, topic)
	m.Payloads = append(m.Payloads, payload)
	return nil
}

// Mock campaign repository that always fails
type MockFailingCampaignRepo struct{}

func (m *MockFailingCampaignRepo) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	return nil, errors.New("connection refused")
}

func (m *MockFailingCampaignRepo) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	return nil, errors.New("connection refused")
}

func (m *MockFailingCampaignRepo) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return errors.New("connection refused")
}

func newTestService(pub service.Publisher) *service.DashboardService {
	return &service.DashboardService{
		CampaignRepo:     repository.NewMemoryCampaignRepository(repository.SeedCampaigns()),
		NotificationRepo: repository.NewMemoryNotificationRepository(repository.SeedNotifications()),
		Queue:            pub,
	}
}

func TestSummary(t *testing.T) {
	svc := newTestService(&MockPublisher{})
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Metrics.InProgressCount)
	require.Len(t, summary.StatCards, 4)
	assert.Equal(t, "787", summary.StatCards[1].Value)
}

func TestSummary_RepositoryError(t *testing.T) {
	svc := &service.DashboardService{CampaignRepo: &MockFailingCampaignRepo{}}
	_, err := svc.Summary(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestListCampaigns(t *testing.T) {
	svc := newTestService(&MockPublisher{})
	view, err := svc.ListCampaigns(context.Background(), service.ViewState{Channel: "email"})
	require.NoError(t, err)

	assert.Equal(t, 4, view.Pagination.TotalCount)
	assert.Len(t, view.Cards, 4)
	assert.Len(t, view.StatusCounts, 5)
}

func TestGetCampaignCard_NotFound(t *testing.T) {
	svc := newTestService(&MockPublisher{})
	_, err := svc.GetCampaignCard(context.Background(), "99")

	var nf *appErrors.ErrCampaignNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestRequestAction_Publishes(t *testing.T) {
	pub := &MockPublisher{}
	svc := newTestService(pub)

	req, err := svc.RequestAction(context.Background(), "1", model.ActionPause)
	require.NoError(t, err)
	assert.NotEmpty(t, req.RequestID)
	assert.Equal(t, model.StatusInProgress, req.FromStatus)

	require.Len(t, pub.Payloads, 1)
	assert.Equal(t, service.ActionTopic, pub.Topics[0])
	assert.Equal(t, *req, pub.Payloads[0])

	// the status changes only once the worker applies the request
	card, err := svc.GetCampaignCard(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, card.Status)
}

func TestRequestAction_InvalidTransition(t *testing.T) {
	pub := &MockPublisher{}
	svc := newTestService(pub)

	_, err := svc.RequestAction(context.Background(), "1", model.ActionLaunch)
	var invalid *appErrors.ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "in-progress", invalid.Status)
	assert.Empty(t, pub.Payloads)
}

func TestRequestAction_UnknownAction(t *testing.T) {
	pub := &MockPublisher{}
	_, err := newTestService(pub).RequestAction(context.Background(), "1", model.Action("archive"))
	assert.Error(t, err)
	assert.Empty(t, pub.Payloads)
}

func TestRequestAction_PublishError(t *testing.T) {
	svc := newTestService(&MockPublisher{Err: errors.New("no subscribers")})
	_, err := svc.RequestAction(context.Background(), "2", model.ActionResume)
	assert.ErrorContains(t, err, "no subscribers")
}

func TestNotificationOperations(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&MockPublisher{})

	require.NoError(t, svc.MarkNotificationRead(ctx, 9))
	feed, err := svc.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, feed.UnreadCount)

	require.NoError(t, svc.MarkNotificationUnread(ctx, 9))
	feed, err = svc.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, feed.UnreadCount)

	require.NoError(t, svc.MarkAllNotificationsRead(ctx))
	feed, err = svc.Notifications(ctx)
	require.NoError(t, err)
	assert.Zero(t, feed.UnreadCount)

	var nf *appErrors.ErrNotificationNotFound
	assert.ErrorAs(t, svc.MarkNotificationRead(ctx, 404), &nf)
}
