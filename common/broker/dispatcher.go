package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/semaphore"

	"github.com/pongsathonn/ihavefood/common/metrics"
)

// ErrInvalidPayload marks a message that can never be processed: decode
// failure, missing required field, malformed value. The dispatcher settles
// such messages with an ack so they are dropped instead of redelivered.
var ErrInvalidPayload = errors.New("invalid payload")

// HandlerFunc processes one delivery. Returning nil acks the message;
// returning an error wrapping ErrInvalidPayload acks and drops it; any other
// error nacks it back onto the queue for redelivery.
type HandlerFunc func(ctx context.Context, msg amqp.Delivery) error

// EventHandler binds a queue and routing key to a handler.
type EventHandler struct {
	Queue   string
	Key     string
	Handler HandlerFunc
}

// Subscriber is the inbound half of the event bus. The delivery stream must
// close when the subscription context is cancelled.
type Subscriber interface {
	Subscribe(ctx context.Context, queue, routingKey string) (<-chan amqp.Delivery, error)
}

// Dispatcher runs one consumer loop per registered (queue, key) pair and
// fans messages out to handler goroutines. A weighted semaphore shared by
// the whole dispatcher bounds how many handlers run at once; the pull loops
// themselves never block on a slow handler.
type Dispatcher struct {
	bus     Subscriber
	log     *slog.Logger
	metrics *metrics.BrokerMetrics
	sem     *semaphore.Weighted

	handlers []EventHandler
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher gated at maxConcurrent in-flight
// handlers.
func NewDispatcher(bus Subscriber, log *slog.Logger, m *metrics.BrokerMetrics, maxConcurrent int64) *Dispatcher {
	return &Dispatcher{
		bus:     bus,
		log:     log,
		metrics: m,
		sem:     semaphore.NewWeighted(maxConcurrent),
	}
}

// Handle registers a handler. Must be called before Run.
func (d *Dispatcher) Handle(queue, key string, h HandlerFunc) {
	d.handlers = append(d.handlers, EventHandler{Queue: queue, Key: key, Handler: h})
}

// Run subscribes every registered handler and blocks until ctx is cancelled
// and all in-flight handlers have finished. In-flight handlers are not
// interrupted; whatever they fail to ack redelivers.
func (d *Dispatcher) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, h := range d.handlers {
		deliveries, err := d.bus.Subscribe(runCtx, h.Queue, h.Key)
		if err != nil {
			// A half-subscribed dispatcher must not keep draining queues:
			// stop the consumers already started before reporting failure.
			cancel()
			d.wg.Wait()
			return fmt.Errorf("subscribe %s/%s: %w", h.Queue, h.Key, err)
		}
		d.log.Info("consumer started", "queue", h.Queue, "key", h.Key)

		d.wg.Add(1)
		go d.consume(runCtx, h, deliveries)
	}
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) consume(ctx context.Context, h EventHandler, deliveries <-chan amqp.Delivery) {
	defer d.wg.Done()
	for msg := range deliveries {
		if err := d.sem.Acquire(ctx, 1); err != nil {
			// Shutting down. The message stays unacked and redelivers.
			return
		}
		d.wg.Add(1)
		go func(msg amqp.Delivery) {
			defer d.wg.Done()
			defer d.sem.Release(1)
			d.dispatch(ctx, h, msg)
		}(msg)
	}
	d.log.Info("consumer stream closed", "queue", h.Queue, "key", h.Key)
}

// dispatch runs the handler for one message and settles it according to the
// outcome.
func (d *Dispatcher) dispatch(ctx context.Context, h EventHandler, msg amqp.Delivery) {
	if msg.RoutingKey != h.Key {
		// Stale binding. Settle it so it cannot poison the queue.
		d.log.Warn("dropping message with no registered handler",
			"queue", h.Queue, "key", msg.RoutingKey)
		d.settle(msg.Ack(false), h.Queue)
		d.metrics.RecordConsume(msg.RoutingKey, "dropped")
		return
	}

	msgCtx := ExtractTraceContext(ctx, msg.Headers)
	msgCtx, span := otel.Tracer("broker").Start(msgCtx, fmt.Sprintf("AMQP consume %s", h.Key))
	defer span.End()

	err := h.Handler(msgCtx, msg)
	switch {
	case err == nil:
		d.settle(msg.Ack(false), h.Queue)
		d.metrics.RecordConsume(h.Key, "ok")
	case errors.Is(err, ErrInvalidPayload):
		d.log.Error("dropping unprocessable message",
			"queue", h.Queue, "key", h.Key, "error", err)
		d.settle(msg.Ack(false), h.Queue)
		d.metrics.RecordConsume(h.Key, "dropped")
	default:
		d.log.Error("handler failed, message redelivers",
			"queue", h.Queue, "key", h.Key, "error", err)
		d.settle(msg.Nack(false, true), h.Queue)
		d.metrics.RecordConsume(h.Key, "redelivered")
	}
}

func (d *Dispatcher) settle(err error, queue string) {
	if err != nil {
		d.log.Error("settling message failed", "queue", queue, "error", err)
	}
}
