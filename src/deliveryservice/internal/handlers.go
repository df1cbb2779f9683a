package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"

	"github.com/pongsathonn/ihavefood/common/broker"
	"github.com/pongsathonn/ihavefood/common/metrics"
)

// Queues owned by the delivery service, one per consumed routing key.
const (
	OrderPlacedQueue  = "delivery.order.placed"
	RiderCreatedQueue = "delivery.rider.created"
)

// EventPublisher is the outbound half of the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// EventHandlers reacts to the order pipeline and the rider directory. The
// broker delivers at least once, so every handler keys its writes by the
// natural id and tolerates duplicates.
type EventHandlers struct {
	storage  DeliveryStorage
	cache    StatusCache
	bus      EventPublisher
	geocoder Geocoder
	notifier RiderNotifier
	log      *slog.Logger
	metrics  *metrics.DeliveryMetrics
}

func NewEventHandlers(
	storage DeliveryStorage,
	cache StatusCache,
	bus EventPublisher,
	geocoder Geocoder,
	notifier RiderNotifier,
	log *slog.Logger,
	m *metrics.DeliveryMetrics,
) *EventHandlers {
	return &EventHandlers{
		storage:  storage,
		cache:    cache,
		bus:      bus,
		geocoder: geocoder,
		notifier: notifier,
		log:      log,
		metrics:  m,
	}
}

// HandleOrderPlaced builds the delivery record for a placed order, notifies
// candidate riders and announces rider.notified.event. Idempotency key is
// the order id: a redelivered event finds the row already present and
// proceeds to publish again rather than failing.
func (h *EventHandlers) HandleOrderPlaced(ctx context.Context, msg amqp.Delivery) error {
	var event pb.OrderPlacedEvent
	if err := pb.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("decode order placed event: %w: %v", broker.ErrInvalidPayload, err)
	}

	order := event.GetOrder()
	if order == nil {
		return fmt.Errorf("order placed event without order: %w", broker.ErrInvalidPayload)
	}
	if order.GetOrderId() == "" {
		return fmt.Errorf("order placed event without order id: %w", broker.ErrInvalidPayload)
	}

	// Initialize the status before the row exists so the cache is
	// authoritative from the first observation. Re-setting the same value
	// on redelivery is a no-op.
	if err := h.cache.SetStatus(ctx, order.GetOrderId(), pb.DeliveryStatus_RIDER_UNACCEPT); err != nil {
		return fmt.Errorf("init status for order %s: %w", order.GetOrderId(), err)
	}

	riders, pickup, err := PrepareOrderDelivery(order, h.geocoder)
	if err != nil {
		if errors.Is(err, ErrMissingMerchantAddress) || errors.Is(err, ErrMissingUserAddress) {
			return fmt.Errorf("prepare order %s: %w: %v", order.GetOrderId(), broker.ErrInvalidPayload, err)
		}
		return fmt.Errorf("prepare order %s: %w", order.GetOrderId(), err)
	}

	err = h.storage.CreateDelivery(ctx, &NewDelivery{
		OrderID:         order.GetOrderId(),
		PickupCode:      pickup.PickupCode,
		PickupLocation:  toDbPoint(pickup.PickupLocation),
		DropOffLocation: toDbPoint(pickup.DropOffLocation),
	})
	switch {
	case errors.Is(err, ErrAlreadyExists):
		h.log.Debug("delivery already exists, redelivered event", "order_id", order.GetOrderId())
	case err != nil:
		return fmt.Errorf("create delivery for order %s: %w", order.GetOrderId(), err)
	default:
		h.metrics.DeliveriesCreated.Inc()
	}

	// Best effort: a rider that misses the offer just never accepts.
	if err := h.notifier.NotifyRiders(ctx, riders, pickup); err != nil {
		h.log.Error("notify riders", "order_id", order.GetOrderId(), "error", err)
	}

	body, err := pb.Marshal(&pb.RiderNotifiedEvent{
		OrderId:    order.GetOrderId(),
		NotifyTime: timestamppb.Now(),
	})
	if err != nil {
		return fmt.Errorf("encode rider notified event: %w", err)
	}
	if err := h.bus.Publish(ctx, broker.RiderNotifiedEvent, body); err != nil {
		return fmt.Errorf("publish rider notified for order %s: %w", order.GetOrderId(), err)
	}

	h.log.Info("order delivery prepared",
		"order_id", order.GetOrderId(),
		"candidates", len(riders),
	)
	return nil
}

// HandleRiderCreated projects a rider from the directory into local
// storage. The username is the local part of the signup email; the phone
// number stays empty until the rider completes their profile elsewhere.
func (h *EventHandlers) HandleRiderCreated(ctx context.Context, msg amqp.Delivery) error {
	var event pb.SyncRiderCreated
	if err := pb.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("decode rider created event: %w: %v", broker.ErrInvalidPayload, err)
	}

	if event.GetRiderId() == "" {
		return fmt.Errorf("rider created event without rider id: %w", broker.ErrInvalidPayload)
	}
	username, _, found := strings.Cut(event.GetEmail(), "@")
	if !found {
		return fmt.Errorf("rider %s email %q has no username part: %w",
			event.GetRiderId(), event.GetEmail(), broker.ErrInvalidPayload)
	}

	err := h.storage.CreateRider(ctx, &NewRider{
		RiderID:     event.GetRiderId(),
		Username:    username,
		PhoneNumber: "",
	})
	switch {
	case errors.Is(err, ErrAlreadyExists):
		h.log.Debug("rider already exists, redelivered event", "rider_id", event.GetRiderId())
		return nil
	case err != nil:
		return fmt.Errorf("create rider %s: %w", event.GetRiderId(), err)
	}

	h.metrics.RidersSynced.Inc()
	h.log.Info("rider synced", "rider_id", event.GetRiderId(), "username", username)
	return nil
}

func toDbPoint(p *pb.Point) *DbPoint {
	if p == nil {
		return nil
	}
	return &DbPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}
