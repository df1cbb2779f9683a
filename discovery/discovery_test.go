package discovery_test

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pongsathonn/ihavefood/discovery"
	"github.com/pongsathonn/ihavefood/discovery/inmem"
)

func TestGenerateInstanceID(t *testing.T) {
	id := discovery.GenerateInstanceID("deliveryservice")
	assert.True(t, strings.HasPrefix(id, "deliveryservice-"))
	assert.NotEqual(t, id, discovery.GenerateInstanceID("deliveryservice"))
}

func TestInmemRegistryLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := inmem.NewRegistry()

	require.NoError(t, reg.Register(ctx, "cs-1", "customerservice", "127.0.0.1:7001"))
	require.NoError(t, reg.HealthCheck("cs-1", "customerservice"))

	addrs, err := reg.Discover(ctx, "customerservice")
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1:7001"}, addrs)

	require.NoError(t, reg.Deregister(ctx, "cs-1", "customerservice"))
	_, err = reg.Discover(ctx, "customerservice")
	assert.Error(t, err)

	assert.Error(t, reg.HealthCheck("cs-1", "customerservice"))
}

func TestServiceConnectionDialsDiscoveredInstance(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	healthgrpc.RegisterHealthServer(srv, health.NewServer())
	go srv.Serve(lis)
	defer srv.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reg := inmem.NewRegistry()
	require.NoError(t, reg.Register(ctx, "cs-1", "customerservice", lis.Addr().String()))

	conn, err := discovery.ServiceConnection(ctx, "customerservice", reg)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthgrpc.NewHealthClient(conn).Check(ctx, &healthgrpc.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthgrpc.HealthCheckResponse_SERVING, resp.GetStatus())
}
