// Package broker is the event-bus facade over RabbitMQ shared by ihavefood
// services: one durable direct exchange, durable queues, manual
// acknowledgements, and publisher confirms.
package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pongsathonn/ihavefood/common/metrics"
)

// Exchange is the direct exchange every routing key on the platform goes
// through.
const Exchange = "my_exchange"

// Routing keys crossing the delivery service.
const (
	OrderPlacedEvent   = "order.placed.event"
	RiderCreatedEvent  = "sync.rider.created"
	RiderNotifiedEvent = "rider.notified.event"
	RiderAssignedEvent = "rider.assigned.event"
)

// ErrPublishRejected reports that the broker nacked a publish instead of
// confirming it.
var ErrPublishRejected = errors.New("broker rejected publish")

// RabbitMQ owns one AMQP connection: a confirm-mode channel for publishing
// plus a dedicated channel per subscription.
type RabbitMQ struct {
	service string
	conn    *amqp.Connection
	pubCh   *amqp.Channel
	metrics *metrics.BrokerMetrics

	mu    sync.Mutex
	subCh []*amqp.Channel
}

// Connect dials the broker, opens the publish channel in confirm mode and
// declares the shared exchange. The connection is fail-fast: callers decide
// whether dialing is worth retrying. Host may carry an explicit port;
// otherwise the AMQP default applies.
func Connect(service, user, pass, host string, m *metrics.BrokerMetrics) (*RabbitMQ, error) {
	addr := fmt.Sprintf("amqp://%s:%s@%s/", user, pass, host)

	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ at %s: %w", host, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("put channel in confirm mode: %w", err)
	}
	if err := declareExchange(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQ{service: service, conn: conn, pubCh: ch, metrics: m}, nil
}

// Publish sends body to the shared exchange under routingKey and waits for
// the broker confirm. It returns ErrPublishRejected when the broker nacks.
// Every attempt is counted by routing key and outcome.
func (r *RabbitMQ) Publish(ctx context.Context, routingKey string, body []byte) error {
	err := r.publish(ctx, routingKey, body)
	r.metrics.RecordPublish(routingKey, publishOutcome(err))
	return err
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, body []byte) error {
	headers := amqp.Table{}
	InjectTraceContext(ctx, headers)

	confirmation, err := r.pubCh.PublishWithDeferredConfirmWithContext(ctx,
		Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/x-protobuf",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Headers:      headers,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-confirmation.Done():
		if !confirmation.Acked() {
			return fmt.Errorf("publish %s: %w", routingKey, ErrPublishRejected)
		}
	}
	return nil
}

// Subscribe declares a durable queue bound to (Exchange, routingKey) and
// opens a manual-ack consumer on its own channel. The consumer tag is stable
// per queue so operators can tell consumers apart on the broker. The stream
// closes when ctx is cancelled or the connection drops.
func (r *RabbitMQ) Subscribe(ctx context.Context, queue, routingKey string) (<-chan amqp.Delivery, error) {
	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel for %s: %w", queue, err)
	}
	if err := declareExchange(ch); err != nil {
		ch.Close()
		return nil, err
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := ch.QueueBind(q.Name, routingKey, Exchange, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("bind %s to %s/%s: %w", q.Name, Exchange, routingKey, err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx,
		q.Name,
		r.service+":"+queue,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("consume %s: %w", q.Name, err)
	}

	r.mu.Lock()
	r.subCh = append(r.subCh, ch)
	r.mu.Unlock()

	return deliveries, nil
}

// Close tears down every channel and then the connection.
func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.subCh {
		_ = ch.Close()
	}
	r.subCh = nil
	_ = r.pubCh.Close()
	return r.conn.Close()
}

// publishOutcome maps a Publish result to the metric label: confirmed,
// nacked by the broker, or failed before a confirm arrived.
func publishOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrPublishRejected):
		return "rejected"
	default:
		return "error"
	}
}

func declareExchange(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}
	return nil
}
