package ports

import (
	"context"

	"connection-broker/internal/core/domain"
)

// Pool hands out reusable backend connections, accepts them back, and
// enforces capacity and expiration policy.
type Pool interface {
	// Acquire leases a connection. It never blocks waiting for capacity:
	// it either returns immediately or fails immediately with a pool
	// exhaustion or closed-pool error.
	Acquire(ctx context.Context) (Connection, error)
	// Release returns a leased connection. Releasing a connection the pool
	// does not track is a no-op.
	Release(ctx context.Context, conn Connection)
	// Close shuts the pool down and closes every tracked connection.
	// Subsequent Acquire calls fail with a closed-pool error.
	Close(ctx context.Context) error
	// Stats reports current occupancy.
	Stats() domain.PoolStats
}

// PoolObserver receives pool lifecycle events. Failures the pool recovers
// from locally (e.g. a failed replacement creation during release) never
// reach callers; the observer is the only place they surface.
type PoolObserver interface {
	ConnectionCreated(id string)
	ConnectionClosed(id string, reason string)
	ConnectionExpired(id string)
	ConnectionInvalidated(id string)
	ReplacementFailed(err error)
}

// NopObserver is a PoolObserver that ignores every event.
type NopObserver struct{}

func (NopObserver) ConnectionCreated(string)        {}
func (NopObserver) ConnectionClosed(string, string) {}
func (NopObserver) ConnectionExpired(string)        {}
func (NopObserver) ConnectionInvalidated(string)    {}
func (NopObserver) ReplacementFailed(error)         {}
