package internal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"

	"github.com/pongsathonn/ihavefood/common/broker"
	"github.com/pongsathonn/ihavefood/common/metrics"
)

// DeliveryService is the synchronous surface of the delivery domain. It
// shares the storage, cache and event bus with the event handlers and
// enforces the same state machine.
type DeliveryService struct {
	pb.UnimplementedDeliveryServiceServer

	storage  DeliveryStorage
	cache    StatusCache
	bus      EventPublisher
	geocoder Geocoder
	customer pb.CustomerServiceClient
	merchant pb.MerchantServiceClient
	log      *slog.Logger
	metrics  *metrics.DeliveryMetrics

	// Tracking stream cadence; fields so tests can run in milliseconds.
	trackingInterval time.Duration
	trackingUpdates  int
}

func NewDeliveryService(
	storage DeliveryStorage,
	cache StatusCache,
	bus EventPublisher,
	geocoder Geocoder,
	customer pb.CustomerServiceClient,
	merchant pb.MerchantServiceClient,
	log *slog.Logger,
	m *metrics.DeliveryMetrics,
) *DeliveryService {
	return &DeliveryService{
		storage:  storage,
		cache:    cache,
		bus:      bus,
		geocoder: geocoder,
		customer: customer,
		merchant: merchant,
		log:      log,
		metrics:  m,

		trackingInterval: 5 * time.Second,
		trackingUpdates:  5,
	}
}

// GetDeliveryFee composes the customer and merchant directories into one
// quote: pick the requested customer address, geocode both endpoints and
// price the distance.
func (s *DeliveryService) GetDeliveryFee(ctx context.Context, in *pb.GetDeliveryFeeRequest) (*pb.GetDeliveryFeeResponse, error) {
	customer, err := s.customer.GetCustomer(ctx, &pb.GetCustomerRequest{CustomerId: in.GetCustomerId()})
	if err != nil {
		return nil, err
	}

	var customerAddr *pb.Address
	for _, addr := range customer.GetAddresses() {
		if addr.GetAddressId() == in.GetCustomerAddressId() {
			customerAddr = addr
			break
		}
	}
	if customerAddr == nil {
		s.log.Error("customer address not found",
			"customer_id", in.GetCustomerId(),
			"address_id", in.GetCustomerAddressId(),
		)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	merchant, err := s.merchant.GetMerchant(ctx, &pb.GetMerchantRequest{MerchantId: in.GetMerchantId()})
	if err != nil {
		return nil, err
	}
	if merchant.GetAddress() == nil {
		s.log.Error("merchant has no address", "merchant_id", in.GetMerchantId())
		return nil, status.Error(codes.Internal, "internal server error")
	}

	customerPoint := s.geocoder.Geocode(customerAddr)
	merchantPoint := s.geocoder.Geocode(merchant.GetAddress())

	fee, err := CalcDeliveryFee(customerPoint, merchantPoint)
	if err != nil {
		s.log.Error("calculate delivery fee",
			"customer_id", in.GetCustomerId(),
			"merchant_id", in.GetMerchantId(),
			"distance_km", HaversineDistance(customerPoint, merchantPoint),
			"error", err,
		)
		return nil, status.Error(codes.Internal, "failed to calculate delivery fee")
	}

	s.metrics.FeeQuotes.Observe(float64(fee))
	return &pb.GetDeliveryFeeResponse{DeliveryFee: fee}, nil
}

// ReportDeliveryStatus applies a rider-reported transition after the state
// machine has accepted it against the cached status, then announces the
// transition on the bus.
func (s *DeliveryService) ReportDeliveryStatus(ctx context.Context, in *pb.ReportDeliveryStatusRequest) (*emptypb.Empty, error) {
	if in.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "Order ID cannot be empty")
	}
	if in.GetRiderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "Rider ID cannot be empty")
	}
	if in.GetNewStatus() == pb.DeliveryStatus_RIDER_UNACCEPT {
		return nil, status.Error(codes.InvalidArgument, "Status should not be UNACCEPT")
	}

	if err := s.transition(ctx, in.GetOrderId(), in.GetRiderId(), in.GetNewStatus()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// ConfirmRiderAccept assigns the accepting rider to the delivery and hands
// back the pickup details. First accept wins; every later accept fails the
// state machine.
func (s *DeliveryService) ConfirmRiderAccept(ctx context.Context, in *pb.ConfirmRiderAcceptRequest) (*pb.ConfirmRiderAcceptResponse, error) {
	if in.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "Order ID cannot be empty")
	}
	if in.GetRiderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "Rider ID cannot be empty")
	}

	rider, err := s.storage.Rider(ctx, in.GetRiderId())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, status.Error(codes.NotFound, "rider not found")
		}
		s.log.Error("load rider", "rider_id", in.GetRiderId(), "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	delivery, err := s.storage.Delivery(ctx, in.GetOrderId())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, status.Error(codes.NotFound, "delivery not found")
		}
		s.log.Error("load delivery", "order_id", in.GetOrderId(), "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	if err := s.transition(ctx, in.GetOrderId(), in.GetRiderId(), pb.DeliveryStatus_RIDER_ACCEPTED); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateDeliveryRider(ctx, in.GetOrderId(), in.GetRiderId()); err != nil {
		s.log.Error("assign rider to delivery",
			"order_id", in.GetOrderId(), "rider_id", in.GetRiderId(), "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	s.log.Info("rider accepted order",
		"order_id", in.GetOrderId(),
		"rider_id", rider.RiderID,
		"username", rider.Username,
	)

	return &pb.ConfirmRiderAcceptResponse{
		PickupCode:      delivery.PickupCode,
		PickupLocation:  toPbPoint(delivery.PickupLocation),
		DropOffLocation: toPbPoint(delivery.DropOffLocation),
	}, nil
}

// GetDelivery reads one delivery row joined with its rider, with the
// current status taken from the cache rather than the legacy column.
func (s *DeliveryService) GetDelivery(ctx context.Context, in *pb.GetDeliveryRequest) (*pb.Delivery, error) {
	if in.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "Order ID cannot be empty")
	}

	delivery, err := s.storage.Delivery(ctx, in.GetOrderId())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, status.Error(codes.NotFound, "delivery not found")
		}
		s.log.Error("load delivery", "order_id", in.GetOrderId(), "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	current, err := s.cache.Status(ctx, in.GetOrderId())
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return nil, status.Error(codes.Internal, "invalid status value")
		}
		s.log.Error("read cached status", "order_id", in.GetOrderId(), "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}

	out := &pb.Delivery{
		OrderId:         delivery.OrderID,
		PickupCode:      delivery.PickupCode,
		PickupLocation:  toPbPoint(delivery.PickupLocation),
		DropOffLocation: toPbPoint(delivery.DropOffLocation),
		Status:          current,
		CreateTime:      toPbTime(delivery.CreateTime),
		AcceptTime:      toPbTime(delivery.AcceptTime),
		DeliverTime:     toPbTime(delivery.DeliverTime),
	}
	if delivery.Rider != nil {
		out.Rider = &pb.Rider{
			RiderId:     delivery.Rider.RiderID,
			Username:    delivery.Rider.Username,
			PhoneNumber: delivery.Rider.PhoneNumber,
		}
	}
	return out, nil
}

// TrackingRider streams rider position updates until the updates run out or
// the client goes away. The producer writes into a small buffered queue so
// a slow client exerts backpressure instead of growing memory.
func (s *DeliveryService) TrackingRider(in *pb.TrackingRiderRequest, stream pb.DeliveryService_TrackingRiderServer) error {
	if in.GetOrderId() == "" {
		return status.Error(codes.InvalidArgument, "Order ID cannot be empty")
	}

	ctx := stream.Context()
	updates := make(chan *pb.TrackingRiderResponse, 4)

	go func() {
		defer close(updates)
		for i := 0; i < s.trackingUpdates; i++ {
			select {
			case <-ctx.Done():
				s.log.Info("tracking receiver dropped", "order_id", in.GetOrderId())
				return
			case <-time.After(s.trackingInterval):
			}

			// TODO: read the real rider position once riders report
			// locations; until then the update carries only timestamps.
			update := &pb.TrackingRiderResponse{
				OrderId:    in.GetOrderId(),
				UpdateTime: timestamppb.Now(),
			}
			select {
			case updates <- update:
			case <-ctx.Done():
				s.log.Info("tracking receiver dropped", "order_id", in.GetOrderId())
				return
			}
		}
	}()

	for update := range updates {
		if err := stream.Send(update); err != nil {
			return status.Errorf(codes.Internal, "send tracking update: %v", err)
		}
	}
	return nil
}

// transition runs the state-machine guard against the cached status,
// commits the new status, writes it through to storage and publishes
// rider.assigned.event.
func (s *DeliveryService) transition(ctx context.Context, orderID, riderID string, target pb.DeliveryStatus) error {
	current, err := s.cache.Status(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return status.Error(codes.Internal, "invalid status value")
		}
		s.log.Error("read cached status", "order_id", orderID, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}

	if err := ValidateTransition(current, target); err != nil {
		var te *TransitionError
		if errors.As(err, &te) {
			return status.Error(codes.FailedPrecondition, te.Reason)
		}
		return status.Error(codes.Internal, "internal server error")
	}

	if err := s.cache.SetStatus(ctx, orderID, target); err != nil {
		s.log.Error("write cached status", "order_id", orderID, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}

	// The column is an eventually consistent echo for operators; the cache
	// already committed, so a failed write-through is logged, not surfaced.
	if err := s.storage.UpdateDeliveryStatus(ctx, orderID, target); err != nil {
		s.log.Error("write through status column", "order_id", orderID, "error", err)
	}

	body, err := pb.Marshal(&pb.RiderAssignedEvent{
		OrderId:    orderID,
		RiderId:    riderID,
		AssignTime: timestamppb.Now(),
	})
	if err != nil {
		s.log.Error("encode rider assigned event", "order_id", orderID, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
	if err := s.bus.Publish(ctx, broker.RiderAssignedEvent, body); err != nil {
		s.log.Error("publish rider assigned event", "order_id", orderID, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}

	s.metrics.StatusTransitions.WithLabelValues(target.String()).Inc()
	s.log.Info("delivery status updated",
		"order_id", orderID,
		"rider_id", riderID,
		"from", current.String(),
		"to", target.String(),
	)
	return nil
}

func toPbPoint(p *DbPoint) *pb.Point {
	if p == nil {
		return nil
	}
	return &pb.Point{Latitude: p.Latitude, Longitude: p.Longitude}
}

func toPbTime(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
