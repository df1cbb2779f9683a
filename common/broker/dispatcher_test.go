package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/pongsathonn/ihavefood/common/metrics"
)

// Collectors register globally, so build them once for the package.
var testBrokerMetrics = metrics.NewBrokerMetrics("brokertest")

type fakeAcknowledger struct {
	acked   atomic.Int32
	nacked  atomic.Int32
	requeue atomic.Bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked.Add(1)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked.Add(1)
	f.requeue.Store(requeue)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func testDispatcher(maxConcurrent int64) *Dispatcher {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(nil, log, testBrokerMetrics, maxConcurrent)
}

func delivery(key string, ack *fakeAcknowledger) amqp.Delivery {
	return amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  1,
		RoutingKey:   key,
		Body:         []byte("payload"),
	}
}

func TestDispatchAcksOnSuccess(t *testing.T) {
	d := testDispatcher(1)
	ack := &fakeAcknowledger{}
	h := EventHandler{Queue: "q", Key: "k", Handler: func(ctx context.Context, msg amqp.Delivery) error {
		return nil
	}}

	d.dispatch(context.Background(), h, delivery("k", ack))

	assert.Equal(t, int32(1), ack.acked.Load())
	assert.Equal(t, int32(0), ack.nacked.Load())
}

func TestDispatchDropsUnprocessableMessage(t *testing.T) {
	d := testDispatcher(1)
	ack := &fakeAcknowledger{}
	h := EventHandler{Queue: "q", Key: "k", Handler: func(ctx context.Context, msg amqp.Delivery) error {
		return fmt.Errorf("decode event: %w", ErrInvalidPayload)
	}}

	d.dispatch(context.Background(), h, delivery("k", ack))

	assert.Equal(t, int32(1), ack.acked.Load(), "unprocessable messages must be settled")
	assert.Equal(t, int32(0), ack.nacked.Load())
}

func TestDispatchNacksForRedeliveryOnHandlerError(t *testing.T) {
	d := testDispatcher(1)
	ack := &fakeAcknowledger{}
	h := EventHandler{Queue: "q", Key: "k", Handler: func(ctx context.Context, msg amqp.Delivery) error {
		return errors.New("store unavailable")
	}}

	d.dispatch(context.Background(), h, delivery("k", ack))

	assert.Equal(t, int32(0), ack.acked.Load())
	assert.Equal(t, int32(1), ack.nacked.Load())
	assert.True(t, ack.requeue.Load(), "failed handlers must requeue for redelivery")
}

func TestDispatchDropsUnregisteredKey(t *testing.T) {
	d := testDispatcher(1)
	ack := &fakeAcknowledger{}
	called := false
	h := EventHandler{Queue: "q", Key: "k", Handler: func(ctx context.Context, msg amqp.Delivery) error {
		called = true
		return nil
	}}

	d.dispatch(context.Background(), h, delivery("other.key", ack))

	assert.False(t, called, "handler must not run for a foreign routing key")
	assert.Equal(t, int32(1), ack.acked.Load())
}

func TestConsumeBoundsConcurrencyAndDrains(t *testing.T) {
	const messages = 6
	d := testDispatcher(2)

	var current, peak atomic.Int32
	ack := &fakeAcknowledger{}
	h := EventHandler{Queue: "q", Key: "k", Handler: func(ctx context.Context, msg amqp.Delivery) error {
		cur := current.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		current.Add(-1)
		return nil
	}}

	deliveries := make(chan amqp.Delivery, messages)
	for i := 0; i < messages; i++ {
		deliveries <- delivery("k", ack)
	}
	close(deliveries)

	d.wg.Add(1)
	go d.consume(context.Background(), h, deliveries)
	d.wg.Wait()

	assert.Equal(t, int32(messages), ack.acked.Load(), "every message settles")
	assert.LessOrEqual(t, peak.Load(), int32(2), "semaphore bounds in-flight handlers")
}

// fakeSubscriber hands out delivery streams that close on context cancel,
// the way a real consumer channel does, and fails once its quota is spent.
type fakeSubscriber struct {
	quota int

	mu   sync.Mutex
	ctxs []context.Context
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, queue, routingKey string) (<-chan amqp.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ctxs) >= s.quota {
		return nil, errors.New("channel allocation refused")
	}
	s.ctxs = append(s.ctxs, ctx)

	deliveries := make(chan amqp.Delivery)
	go func() {
		<-ctx.Done()
		close(deliveries)
	}()
	return deliveries, nil
}

func TestRunStopsStartedConsumersWhenSubscribeFails(t *testing.T) {
	sub := &fakeSubscriber{quota: 1}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := NewDispatcher(sub, log, testBrokerMetrics, 1)

	handler := func(ctx context.Context, msg amqp.Delivery) error { return nil }
	d.Handle("q1", "k1", handler)
	d.Handle("q2", "k2", handler)

	err := d.Run(context.Background())
	require.Error(t, err)

	require.Len(t, sub.ctxs, 1)
	assert.Error(t, sub.ctxs[0].Err(),
		"the consumer started before the failure must be cancelled, not left draining")
}

func TestTraceContextRoundTripsThroughHeaders(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := amqp.Table{}
	InjectTraceContext(ctx, headers)
	require.Contains(t, headers, "traceparent")

	got := trace.SpanContextFromContext(ExtractTraceContext(context.Background(), headers))
	assert.Equal(t, sc.TraceID(), got.TraceID())
	assert.Equal(t, sc.SpanID(), got.SpanID())
}
