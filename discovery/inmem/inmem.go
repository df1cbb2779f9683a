// Package inmem is a process-local discovery.Registry for tests and single
// binary development setups.
package inmem

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pongsathonn/ihavefood/discovery"
)

type instance struct {
	hostPort   string
	lastActive time.Time
}

type Registry struct {
	mu    sync.RWMutex
	addrs map[string]map[string]*instance
}

func NewRegistry() *Registry {
	return &Registry{addrs: map[string]map[string]*instance{}}
}

func (r *Registry) Register(ctx context.Context, instanceID, serviceName, hostPort string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.addrs[serviceName]; !ok {
		r.addrs[serviceName] = map[string]*instance{}
	}
	r.addrs[serviceName][instanceID] = &instance{hostPort: hostPort, lastActive: time.Now()}
	return nil
}

func (r *Registry) Deregister(ctx context.Context, instanceID, serviceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.addrs[serviceName], instanceID)
	return nil
}

func (r *Registry) HealthCheck(instanceID, serviceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.addrs[serviceName][instanceID]
	if !ok {
		return errors.New("instance not registered")
	}
	inst.lastActive = time.Now()
	return nil
}

func (r *Registry) Discover(ctx context.Context, serviceName string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.addrs[serviceName]) == 0 {
		return nil, errors.New("no service address found")
	}
	var res []string
	for _, inst := range r.addrs[serviceName] {
		res = append(res, inst.hostPort)
	}
	return res, nil
}

var _ discovery.Registry = (*Registry)(nil)
