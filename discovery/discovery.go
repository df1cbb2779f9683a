// Package discovery defines the service-registry abstraction used by
// ihavefood services and helpers for dialing gRPC peers.
package discovery

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Registry registers service instances and resolves peers by name.
type Registry interface {
	Register(ctx context.Context, instanceID, serviceName, hostPort string) error
	Deregister(ctx context.Context, instanceID, serviceName string) error
	Discover(ctx context.Context, serviceName string) ([]string, error)
	HealthCheck(instanceID, serviceName string) error
}

// GenerateInstanceID returns a registry-unique id for one running instance
// of serviceName.
func GenerateInstanceID(serviceName string) string {
	return fmt.Sprintf("%s-%d", serviceName, rand.New(rand.NewSource(time.Now().UnixNano())).Int())
}
