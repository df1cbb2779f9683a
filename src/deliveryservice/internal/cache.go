package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// statusField is the hash field holding the status under each order id key.
const statusField = "status"

// StatusCache is the authoritative record of each delivery's current
// status, keyed by order id. The SQL status column is only a write-through
// echo; every transition decision reads from here.
type StatusCache interface {
	SetStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error
	Status(ctx context.Context, orderID string) (pb.DeliveryStatus, error)
}

// RedisStatusCache implements StatusCache on a Redis hash per order.
type RedisStatusCache struct {
	client *redis.Client
}

// NewRedisStatusCache connects to the Redis instance at url and verifies
// the connection with a short ping. Connecting is fail-fast; the service
// cannot run without its status store.
func NewRedisStatusCache(url string) (*RedisStatusCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStatusCache{client: client}, nil
}

func (c *RedisStatusCache) Close() error {
	return c.client.Close()
}

// SetStatus unconditionally writes the canonical status name.
func (c *RedisStatusCache) SetStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error {
	if err := c.client.HSet(ctx, orderID, statusField, status.String()).Err(); err != nil {
		return fmt.Errorf("set status for order %s: %w", orderID, err)
	}
	return nil
}

// Status returns the current status for the order. A missing key or field
// is ErrStatusNotFound; a value outside the canonical names is
// ErrInvalidStatus.
func (c *RedisStatusCache) Status(ctx context.Context, orderID string) (pb.DeliveryStatus, error) {
	val, err := c.client.HGet(ctx, orderID, statusField).Result()
	if err == redis.Nil {
		return pb.DeliveryStatus_RIDER_UNACCEPT, ErrStatusNotFound
	}
	if err != nil {
		return pb.DeliveryStatus_RIDER_UNACCEPT, fmt.Errorf("get status for order %s: %w", orderID, err)
	}
	return ParseStatus(val)
}
