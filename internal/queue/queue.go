package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue delivers each published payload to every subscriber of the topic
// on its own goroutine, retrying failed deliveries with linear backoff.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	wg         sync.WaitGroup
	logger     *zap.Logger
	MaxRetries int
	Backoff    time.Duration
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(logger *zap.Logger) *InMemoryQueue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		logger:     logger,
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Topic      string
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{Topic: topic, Payload: payload, MaxRetries: q.MaxRetries}
		q.wg.Add(1)
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	defer q.wg.Done()
	for {
		err := handler(job.Payload)
		if err == nil {
			q.logger.Debug("job processed", zap.String("topic", job.Topic))
			return // ACK
		}

		job.RetryCount++
		if job.RetryCount > job.MaxRetries {
			q.logger.Error("job permanently failed",
				zap.String("topic", job.Topic), zap.Int("attempts", job.RetryCount), zap.Error(err))
			return // No requeue
		}
		q.logger.Warn("job failed, retrying",
			zap.String("topic", job.Topic), zap.Int("attempt", job.RetryCount), zap.Error(err))

		time.Sleep(time.Duration(job.RetryCount) * q.Backoff)
	}
}

// Wait blocks until every job published so far has finished.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartCampaignActionSubscriber applies every action published on the action
// topic through the worker. Requests that can never succeed are dropped.
func StartCampaignActionSubscriber(ctx context.Context, q Queue, worker *service.ActionWorker) error {
	return q.Subscribe(service.ActionTopic, func(payload any) error {
		req, err := DecodeActionRequest(payload)
		if err != nil {
			worker.Logger.Warn("invalid campaign action payload", zap.Error(err))
			return nil // no retry
		}

		err = worker.Apply(ctx, req)
		if err != nil && service.IsPermanent(err) {
			return nil // no retry
		}
		return err
	})
}

// DecodeActionRequest accepts an ActionRequest value or its JSON encoding.
func DecodeActionRequest(payload any) (model.ActionRequest, error) {
	switch p := payload.(type) {
	case model.ActionRequest:
		return p, nil
	case *model.ActionRequest:
		if p == nil {
			return model.ActionRequest{}, fmt.Errorf("nil action request")
		}
		return *p, nil
	case []byte:
		return unmarshalActionRequest(p)
	case json.RawMessage:
		return unmarshalActionRequest(p)
	}
	return model.ActionRequest{}, fmt.Errorf("unexpected payload type %T", payload)
}

func unmarshalActionRequest(data []byte) (model.ActionRequest, error) {
	var req model.ActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return req, err
	}
	if req.CampaignID == "" || !req.Action.Valid() {
		return req, fmt.Errorf("incomplete action request %q", string(data))
	}
	return req, nil
}
