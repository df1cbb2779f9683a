package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"

	"github.com/pongsathonn/ihavefood/common/metrics"
)

// Prometheus collectors register globally, so the package shares one set.
var testDeliveryMetrics = metrics.NewDeliveryMetrics("deliverytest")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStorage is an in-memory DeliveryStorage with the same duplicate and
// not-found semantics as the real stores.
type memStorage struct {
	mu         sync.Mutex
	deliveries map[string]*DbDelivery
	riders     map[string]*DbRider
}

func newMemStorage() *memStorage {
	return &memStorage{
		deliveries: make(map[string]*DbDelivery),
		riders:     make(map[string]*DbRider),
	}
}

func (m *memStorage) CreateDelivery(ctx context.Context, d *NewDelivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.deliveries[d.OrderID]; ok {
		return fmt.Errorf("delivery %s: %w", d.OrderID, ErrAlreadyExists)
	}
	m.deliveries[d.OrderID] = &DbDelivery{
		OrderID:         d.OrderID,
		PickupCode:      d.PickupCode,
		PickupLocation:  d.PickupLocation,
		DropOffLocation: d.DropOffLocation,
		Status:          pb.DeliveryStatus_RIDER_UNACCEPT.String(),
		CreateTime:      time.Now(),
	}
	return nil
}

func (m *memStorage) Delivery(ctx context.Context, orderID string) (*DbDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deliveries[orderID]
	if !ok {
		return nil, fmt.Errorf("delivery %s: %w", orderID, ErrNotFound)
	}
	copied := *d
	return &copied, nil
}

func (m *memStorage) CreateRider(ctx context.Context, r *NewRider) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.riders[r.RiderID]; ok {
		return fmt.Errorf("rider %s: %w", r.RiderID, ErrAlreadyExists)
	}
	m.riders[r.RiderID] = &DbRider{
		RiderID:     r.RiderID,
		Username:    r.Username,
		PhoneNumber: r.PhoneNumber,
		CreateTime:  time.Now(),
	}
	return nil
}

func (m *memStorage) Rider(ctx context.Context, riderID string) (*DbRider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.riders[riderID]
	if !ok {
		return nil, fmt.Errorf("rider %s: %w", riderID, ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (m *memStorage) UpdateDeliveryRider(ctx context.Context, orderID, riderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deliveries[orderID]
	if !ok {
		return nil
	}
	d.Rider = m.riders[riderID]
	d.AcceptTime = time.Now()
	return nil
}

func (m *memStorage) UpdateDeliveryStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deliveries[orderID]
	if !ok {
		return nil
	}
	d.Status = status.String()
	if status == pb.DeliveryStatus_RIDER_DELIVERED {
		d.DeliverTime = time.Now()
	}
	return nil
}

// memCache is a map-backed StatusCache.
type memCache struct {
	mu       sync.Mutex
	statuses map[string]pb.DeliveryStatus
	setErr   error
	getErr   error
}

func newMemCache() *memCache {
	return &memCache{statuses: make(map[string]pb.DeliveryStatus)}
}

func (c *memCache) SetStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[orderID] = status
	return nil
}

func (c *memCache) Status(ctx context.Context, orderID string) (pb.DeliveryStatus, error) {
	if c.getErr != nil {
		return pb.DeliveryStatus_RIDER_UNACCEPT, c.getErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.statuses[orderID]
	if !ok {
		return pb.DeliveryStatus_RIDER_UNACCEPT, ErrStatusNotFound
	}
	return s, nil
}

// recordingBus captures publishes instead of sending them to a broker.
type recordingBus struct {
	mu        sync.Mutex
	published []publishedMsg
	err       error
}

type publishedMsg struct {
	key  string
	body []byte
}

func (b *recordingBus) Publish(ctx context.Context, routingKey string, body []byte) error {
	if b.err != nil {
		return b.err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, publishedMsg{key: routingKey, body: body})
	return nil
}

func (b *recordingBus) byKey(key string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out [][]byte
	for _, m := range b.published {
		if m.key == key {
			out = append(out, m.body)
		}
	}
	return out
}

// pointGeocoder resolves addresses by their id through a fixed table, which
// makes fee quotes deterministic in tests.
type pointGeocoder struct {
	points map[string]*pb.Point
}

func (g *pointGeocoder) Geocode(addr *pb.Address) *pb.Point {
	return g.points[addr.GetAddressId()]
}

type fakeCustomerClient struct {
	customer *pb.Customer
	err      error
}

func (c *fakeCustomerClient) GetCustomer(ctx context.Context, in *pb.GetCustomerRequest, opts ...grpc.CallOption) (*pb.Customer, error) {
	return c.customer, c.err
}

type fakeMerchantClient struct {
	merchant *pb.Merchant
	err      error
}

func (c *fakeMerchantClient) GetMerchant(ctx context.Context, in *pb.GetMerchantRequest, opts ...grpc.CallOption) (*pb.Merchant, error) {
	return c.merchant, c.err
}

// fakeTrackingStream implements the server side of the tracking stream.
type fakeTrackingStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.TrackingRiderResponse
}

func (s *fakeTrackingStream) Context() context.Context { return s.ctx }

func (s *fakeTrackingStream) Send(m *pb.TrackingRiderResponse) error {
	s.sent = append(s.sent, m)
	return nil
}
