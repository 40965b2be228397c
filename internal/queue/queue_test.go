package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func newQueue(t *testing.T) *queue.InMemoryQueue {
	q := queue.NewInMemoryQueue(zaptest.NewLogger(t))
	q.Backoff = time.Millisecond
	return q
}

func TestInMemoryQueue_NoSubscribers(t *testing.T) {
	q := newQueue(t)
	assert.Error(t, q.Publish("nobody", "hello"))
}

func TestInMemoryQueue_DeliversToEverySubscriber(t *testing.T) {
	q := newQueue(t)
	var got atomic.Int32
	for i := 0; i < 2; i++ {
		require.NoError(t, q.Subscribe("topic", func(payload any) error {
			if payload == "hello" {
				got.Add(1)
			}
			return nil
		}))
	}

	require.NoError(t, q.Publish("topic", "hello"))
	q.Wait()
	assert.Equal(t, int32(2), got.Load())
}

func TestInMemoryQueue_RetriesUntilSuccess(t *testing.T) {
	q := newQueue(t)
	var attempts atomic.Int32
	require.NoError(t, q.Subscribe("topic", func(any) error {
		if attempts.Add(1) < 3 {
			return errors.New("temporary")
		}
		return nil
	}))

	require.NoError(t, q.Publish("topic", 1))
	q.Wait()
	assert.Equal(t, int32(3), attempts.Load())
}

func TestInMemoryQueue_GivesUpAfterMaxRetries(t *testing.T) {
	q := newQueue(t)
	var attempts atomic.Int32
	require.NoError(t, q.Subscribe("topic", func(any) error {
		attempts.Add(1)
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("topic", 1))
	q.Wait()
	assert.Equal(t, int32(q.MaxRetries+1), attempts.Load())
}

func TestCampaignActionSubscriber(t *testing.T) {
	ctx := context.Background()
	campaigns := repository.NewMemoryCampaignRepository(repository.SeedCampaigns())
	notifications := repository.NewMemoryNotificationRepository(repository.SeedNotifications())
	worker := service.NewActionWorker(campaigns, notifications, zaptest.NewLogger(t))

	q := newQueue(t)
	require.NoError(t, queue.StartCampaignActionSubscriber(ctx, q, worker))

	svc := &service.DashboardService{CampaignRepo: campaigns, NotificationRepo: notifications, Queue: q}
	_, err := svc.RequestAction(ctx, "2", model.ActionResume)
	require.NoError(t, err)
	q.Wait()

	c, err := campaigns.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, c.Status)

	feed, err := svc.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, feed.UnreadCount)
	assert.Equal(t, "Campaign resumed: Outbound Campaign", feed.Items[0].Title)
}

func TestCampaignActionSubscriber_DropsPermanentFailures(t *testing.T) {
	ctx := context.Background()
	campaigns := repository.NewMemoryCampaignRepository(repository.SeedCampaigns())
	worker := service.NewActionWorker(campaigns, nil, zaptest.NewLogger(t))

	q := newQueue(t)
	require.NoError(t, queue.StartCampaignActionSubscriber(ctx, q, worker))

	// already applied by an earlier request
	require.NoError(t, q.Publish(service.ActionTopic, model.ActionRequest{CampaignID: "3", Action: model.ActionBuild}))
	require.NoError(t, q.Publish(service.ActionTopic, []byte("not json")))
	q.Wait()

	c, _ := campaigns.GetByID(ctx, "3")
	assert.Equal(t, model.StatusDraft, c.Status)
}

func TestDecodeActionRequest(t *testing.T) {
	want := model.ActionRequest{RequestID: "r1", CampaignID: "1", Action: model.ActionPause, FromStatus: model.StatusInProgress}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	for name, payload := range map[string]any{
		"value":    want,
		"pointer":  &want,
		"bytes":    raw,
		"raw json": json.RawMessage(raw),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := queue.DecodeActionRequest(payload)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err = queue.DecodeActionRequest([]byte(`{"campaign_id": "1", "action": "archive"}`))
	assert.Error(t, err)
	_, err = queue.DecodeActionRequest((*model.ActionRequest)(nil))
	assert.Error(t, err)
	_, err = queue.DecodeActionRequest(42)
	assert.Error(t, err)
}
