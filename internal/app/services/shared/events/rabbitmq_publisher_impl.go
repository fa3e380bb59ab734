package events

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"errors"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var _ contracts.EventPublisher = (*Publisher)(nil)

var (
	errNotConfirmed   = errors.New("message not confirmed")
	errConfirmMissing = errors.New("channel is not in confirm mode")
)

// confirmation is the broker's answer for one published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type channel interface {
	publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)
}

type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if deferred == nil {
		return nil, errConfirmMissing
	}
	return deferred, nil
}

// Publisher sends diagnosis events to one durable queue and waits for the
// broker to confirm each message. Every publish waits on the confirmation
// bound to its own delivery tag.
type Publisher struct {
	ch        channel
	queueName string
	log       *zap.Logger
}

func NewPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newPublisher(amqpChannel{ch: ch}, queueName, log), nil
}

func newPublisher(ch channel, queueName string, log *zap.Logger) *Publisher {
	return &Publisher{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}
}

func (p *Publisher) Publish(ctx context.Context, event models.DiagnosisEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
	}

	confirm, err := p.ch.publish(ctx, p.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errNotConfirmed, p.queueName)
	}

	p.log.Info("eventPublisher.Publish confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}
