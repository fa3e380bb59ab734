package events

import (
	"context"
	"dr-portal/internal/app/models"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConfirmation settles once, like the broker's per-tag confirmation.
type fakeConfirmation struct {
	done chan struct{}
	ack  bool
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-c.done:
		return c.ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeChannel struct {
	mu          sync.Mutex
	published   []amqp.Publishing
	keys        []string
	pending     []*fakeConfirmation
	err         error
	ack         bool
	autoConfirm bool
}

func (f *fakeChannel) publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)

	confirm := &fakeConfirmation{done: make(chan struct{})}
	f.pending = append(f.pending, confirm)
	if f.autoConfirm {
		confirm.ack = f.ack
		close(confirm.done)
	}
	return confirm, nil
}

// settle answers the message with the given 1-based delivery tag.
func (f *fakeChannel) settle(tag int, ack bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	confirm := f.pending[tag-1]
	confirm.ack = ack
	close(confirm.done)
}

func newFake(ack bool) *fakeChannel {
	return &fakeChannel{ack: ack, autoConfirm: true}
}

func TestPublisher_Publish(t *testing.T) {
	fake := newFake(true)
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())
	event := models.DiagnosisEvent{
		Type:        "diagnosis.confirmed",
		DiagnosisID: "42",
		OccurredAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	err := publisher.Publish(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, fake.published, 1)
	assert.Equal(t, "diagnosis_events", fake.keys[0])

	msg := fake.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "diagnosis.confirmed", msg.Type)

	var decoded models.DiagnosisEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.DiagnosisID, decoded.DiagnosisID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestPublisher_Nack(t *testing.T) {
	fake := newFake(false)
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())

	err := publisher.Publish(context.Background(), models.DiagnosisEvent{Type: "diagnosis.deleted"})

	assert.ErrorIs(t, err, errNotConfirmed)
}

func TestPublisher_PublishError(t *testing.T) {
	fake := newFake(true)
	fake.err = errors.New("channel closed")
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())

	err := publisher.Publish(context.Background(), models.DiagnosisEvent{Type: "diagnosis.deleted"})

	assert.ErrorIs(t, err, fake.err)
}

func TestPublisher_ContextCancelledWhileWaitingForConfirm(t *testing.T) {
	fake := newFake(true)
	fake.autoConfirm = false
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := publisher.Publish(ctx, models.DiagnosisEvent{Type: "analysis.completed"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPublisher_LateConfirmIsNotReusedByNextPublish(t *testing.T) {
	fake := newFake(true)
	fake.autoConfirm = false
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err := publisher.Publish(cancelled, models.DiagnosisEvent{Type: "diagnosis.submitted"})
	require.ErrorIs(t, err, context.Canceled)

	// The first message is acked only after its publish gave up.
	fake.settle(1, true)

	ctx, cancelSecond := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelSecond()
	err = publisher.Publish(ctx, models.DiagnosisEvent{Type: "diagnosis.confirmed"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, fake.published, 2)
}

func TestPublisher_EachPublishGetsItsOwnConfirm(t *testing.T) {
	fake := newFake(true)
	fake.autoConfirm = false
	publisher := newPublisher(fake, "diagnosis_events", zap.NewNop())

	results := make(chan error, 1)
	go func() {
		results <- publisher.Publish(context.Background(), models.DiagnosisEvent{Type: "diagnosis.deleted"})
	}()

	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.pending) == 1
	}, time.Second, time.Millisecond)
	fake.settle(1, false)

	assert.ErrorIs(t, <-results, errNotConfirmed)
}
