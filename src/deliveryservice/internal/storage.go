package internal

import (
	"context"
	"time"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// DbPoint is a stored coordinate pair.
type DbPoint struct {
	Latitude  float64
	Longitude float64
}

// DbDelivery is a stored delivery row, joined with its rider when one has
// accepted. The Status field mirrors the status cache for operational
// inspection only; the cache stays canonical.
type DbDelivery struct {
	OrderID         string
	PickupCode      string
	PickupLocation  *DbPoint
	DropOffLocation *DbPoint
	Rider           *DbRider
	Status          string
	CreateTime      time.Time
	AcceptTime      time.Time
	DeliverTime     time.Time
}

// NewDelivery is the insert shape for a delivery. Rider, timestamps and
// status are managed by the service, not the caller.
type NewDelivery struct {
	OrderID         string
	PickupCode      string
	PickupLocation  *DbPoint
	DropOffLocation *DbPoint
}

// DbRider is a stored rider projection synced from the rider directory.
type DbRider struct {
	RiderID     string
	Username    string
	PhoneNumber string
	CreateTime  time.Time
}

// NewRider is the insert shape for a rider.
type NewRider struct {
	RiderID     string
	Username    string
	PhoneNumber string
}

// DeliveryStorage is the durable record of deliveries and riders. Creates
// are keyed by the natural id and return ErrAlreadyExists on duplicates so
// that redelivered events can treat them as success; reads return
// ErrNotFound. The updates are single-row and have no effect when the row
// is absent.
type DeliveryStorage interface {
	CreateDelivery(ctx context.Context, d *NewDelivery) error
	Delivery(ctx context.Context, orderID string) (*DbDelivery, error)

	CreateRider(ctx context.Context, r *NewRider) error
	Rider(ctx context.Context, riderID string) (*DbRider, error)

	// UpdateDeliveryRider records which rider accepted the order and
	// stamps the accept time.
	UpdateDeliveryRider(ctx context.Context, orderID, riderID string) error

	// UpdateDeliveryStatus writes through the legacy status column and
	// stamps the deliver time when the target is RIDER_DELIVERED.
	UpdateDeliveryStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error
}
