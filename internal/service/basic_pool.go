package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"connection-broker/internal/core/domain"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"

	"github.com/rs/zerolog"
)

// BasicPool is the fixed-size pool variant: no expiration, no reaper. It
// hands out an available connection when one exists and otherwise creates a
// new one synchronously. Invalid connections returned to the pool are closed
// and replaced best-effort to keep the nominal size stable.
type BasicPool struct {
	name           string
	factory        ports.Factory
	connectTimeout time.Duration
	obs            ports.PoolObserver
	log            zerolog.Logger

	mu        sync.Mutex
	available []ports.Connection
	leased    map[ports.Connection]struct{}
	closed    bool
}

// NewBasicPool creates a pool and eagerly fills it with size connections.
// Unlike the advanced variant, a creation failure here fails construction:
// a fixed-size pool that cannot reach its size is a configuration problem,
// not something to paper over.
func NewBasicPool(ctx context.Context, name string, factory ports.Factory, size int, connectTimeout time.Duration, obs ports.PoolObserver, log zerolog.Logger) (*BasicPool, error) {
	if size < 0 {
		return nil, fmt.Errorf("pool %q: size must be >= 0, got %d", name, size)
	}
	if obs == nil {
		obs = ports.NopObserver{}
	}

	p := &BasicPool{
		name:           name,
		factory:        factory,
		connectTimeout: connectTimeout,
		obs:            obs,
		log:            log.With().Str("pool", name).Logger(),
		leased:         make(map[ports.Connection]struct{}),
	}

	for i := 0; i < size; i++ {
		conn, err := p.create(ctx)
		if err != nil {
			p.closeAll(ctx, "construction failed")
			return nil, brokererr.ErrCreationFailed(fmt.Errorf("filling pool %q (slot %d of %d): %w", name, i+1, size, err))
		}
		p.available = append(p.available, conn)
	}

	p.log.Info().Int("size", size).Msg("basic pool initialised")
	return p, nil
}

// Acquire leases a connection: first-in-first-out from the available queue,
// else created synchronously via the factory. It fails with PoolExhausted
// only when creation itself fails, and with PoolClosed after shutdown.
func (p *BasicPool) Acquire(ctx context.Context) (ports.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, brokererr.ErrPoolClosed()
	}

	if len(p.available) > 0 {
		conn := p.available[0]
		p.available = p.available[1:]
		p.leased[conn] = struct{}{}
		return conn, nil
	}

	conn, err := p.create(ctx)
	if err != nil {
		return nil, brokererr.ErrPoolExhausted(err)
	}
	p.leased[conn] = struct{}{}
	return conn, nil
}

// Release returns a leased connection to the pool. The connection is
// re-validated; an invalid one is closed and replaced best-effort, with the
// replacement failure swallowed (the caller's unit of work already
// completed) and reported through the observer. Releasing an untracked
// connection is a no-op.
func (p *BasicPool) Release(ctx context.Context, conn ports.Connection) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if _, ok := p.leased[conn]; !ok {
		return
	}
	delete(p.leased, conn)

	if conn.IsValid(ctx) {
		p.available = append(p.available, conn)
		return
	}

	id := conn.ID().String()
	p.obs.ConnectionInvalidated(id)
	if err := conn.Close(ctx); err != nil {
		p.log.Warn().Err(err).Str("conn_id", id).Msg("closing invalid connection")
	}
	p.obs.ConnectionClosed(id, "invalid on release")

	replacement, err := p.create(ctx)
	if err != nil {
		p.obs.ReplacementFailed(err)
		p.log.Warn().Err(err).Msg("replacement connection creation failed")
		return
	}
	p.available = append(p.available, replacement)
}

// Close marks the pool closed and closes every tracked connection,
// available and leased alike. Idempotent.
func (p *BasicPool) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.closeAll(ctx, "pool closed")
	p.log.Info().Msg("basic pool closed")
	return nil
}

// Stats reports current occupancy.
func (p *BasicPool) Stats() domain.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.PoolStats{
		Active:    len(p.leased),
		Available: len(p.available),
	}
}

// create produces one connection, bounded by the connect timeout.
func (p *BasicPool) create(ctx context.Context) (ports.Connection, error) {
	cctx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	conn, err := p.factory.New(cctx)
	if err != nil {
		return nil, err
	}
	p.obs.ConnectionCreated(conn.ID().String())
	return conn, nil
}

// closeAll closes and forgets every tracked connection. Caller holds the lock.
func (p *BasicPool) closeAll(ctx context.Context, reason string) {
	for _, conn := range p.available {
		p.closeConn(ctx, conn, reason)
	}
	for conn := range p.leased {
		p.closeConn(ctx, conn, reason)
	}
	p.available = nil
	p.leased = make(map[ports.Connection]struct{})
}

func (p *BasicPool) closeConn(ctx context.Context, conn ports.Connection, reason string) {
	id := conn.ID().String()
	if err := conn.Close(ctx); err != nil {
		p.log.Warn().Err(err).Str("conn_id", id).Msg("closing connection")
	}
	p.obs.ConnectionClosed(id, reason)
}

var _ ports.Pool = (*BasicPool)(nil)
