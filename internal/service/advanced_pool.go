package service

import (
	"context"
	"sync"
	"time"

	"connection-broker/config"
	"connection-broker/internal/core/domain"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"

	"github.com/rs/zerolog"
)

// AdvancedPool is the elastic pool variant: it grows between a minimum and
// maximum size and expires connections over time. A background reaper runs
// every idle timeout interval; each sweep force-closes leased connections
// whose lease age exceeds the maximum lifetime and evicts available
// connections that fail the liveness check.
//
// Acquire never blocks waiting for capacity. At the maximum size it fails
// immediately with PoolExhausted; callers own their retry policy. This is a
// deliberate contract, not a missing feature.
type AdvancedPool struct {
	name           string
	factory        ports.Factory
	minSize        int
	maxSize        int
	connectTimeout time.Duration
	idleTimeout    time.Duration
	maxLifetime    time.Duration
	obs            ports.PoolObserver
	log            zerolog.Logger

	mu        sync.Mutex
	available []ports.Connection
	leased    map[ports.Connection]time.Time
	closed    bool

	now  func() time.Time
	stop chan struct{}
	done chan struct{}
}

// NewAdvancedPool creates a pool, eagerly filling it with the configured
// minimum number of connections and starting the reaper. Individual creation
// failures during the eager fill are tolerated: the pool simply starts
// smaller and grows on demand.
func NewAdvancedPool(ctx context.Context, name string, factory ports.Factory, cfg config.PoolConfig, obs ports.PoolObserver, log zerolog.Logger) (*AdvancedPool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = ports.NopObserver{}
	}

	p := &AdvancedPool{
		name:           name,
		factory:        factory,
		minSize:        cfg.MinSize,
		maxSize:        cfg.MaxSize,
		connectTimeout: cfg.ConnectTimeout,
		idleTimeout:    cfg.IdleTimeout,
		maxLifetime:    cfg.MaxLifetime,
		obs:            obs,
		log:            log.With().Str("pool", name).Logger(),
		leased:         make(map[ports.Connection]time.Time),
		now:            time.Now,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	for i := 0; i < p.minSize; i++ {
		conn, err := p.create(ctx)
		if err != nil {
			p.log.Warn().Err(err).Int("slot", i+1).Msg("eager connection creation failed, pool starts smaller")
			continue
		}
		p.available = append(p.available, conn)
	}

	go p.reap()

	p.log.Info().
		Int("min_size", p.minSize).
		Int("max_size", p.maxSize).
		Int("initial", len(p.available)).
		Dur("idle_timeout", p.idleTimeout).
		Dur("max_lifetime", p.maxLifetime).
		Msg("advanced pool initialised")
	return p, nil
}

// Acquire leases a connection: first-in-first-out from the available queue;
// else, below the maximum size, a freshly created one. At capacity it fails
// immediately with PoolExhausted. The lease time is recorded so the reaper
// can enforce the maximum lifetime.
func (p *AdvancedPool) Acquire(ctx context.Context) (ports.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, brokererr.ErrPoolClosed()
	}

	if len(p.available) > 0 {
		conn := p.available[0]
		p.available = p.available[1:]
		p.leased[conn] = p.now()
		return conn, nil
	}

	if len(p.available)+len(p.leased) >= p.maxSize {
		return nil, brokererr.ErrPoolExhausted(nil)
	}

	conn, err := p.create(ctx)
	if err != nil {
		return nil, brokererr.ErrPoolExhausted(err)
	}
	p.leased[conn] = p.now()
	return conn, nil
}

// Release returns a leased connection, clearing its lease-time record. An
// invalid connection is closed and replaced best-effort; the replacement
// failure is swallowed and reported through the observer. Untracked
// connections (including those the reaper already force-closed) are a no-op.
func (p *AdvancedPool) Release(ctx context.Context, conn ports.Connection) {
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

// Close marks the pool closed, stops the reaper deterministically (no sweep
// starts after Close returns), and closes every tracked connection.
// Idempotent.
func (p *AdvancedPool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true

	conns := make([]ports.Connection, 0, len(p.available)+len(p.leased))
	conns = append(conns, p.available...)
	for conn := range p.leased {
		conns = append(conns, conn)
	}
	p.available = nil
	p.leased = make(map[ports.Connection]time.Time)
	p.mu.Unlock()

	close(p.stop)
	<-p.done

	for _, conn := range conns {
		id := conn.ID().String()
		if err := conn.Close(ctx); err != nil {
			p.log.Warn().Err(err).Str("conn_id", id).Msg("closing connection")
		}
		p.obs.ConnectionClosed(id, "pool closed")
	}

	p.log.Info().Int("closed", len(conns)).Msg("advanced pool closed")
	return nil
}

// Stats reports current occupancy.
func (p *AdvancedPool) Stats() domain.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.PoolStats{
		Active:    len(p.leased),
		Available: len(p.available),
	}
}

// reap runs sweeps on a fixed period equal to the idle timeout until the
// pool is closed.
func (p *AdvancedPool) reap() {
	defer close(p.done)

	ticker := time.NewTicker(p.idleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.sweep(context.Background())
		}
	}
}

// sweep is one reaper pass. Under the pool lock it drops leased connections
// whose lease age reached the maximum lifetime and evicts available
// connections that fail the liveness check; the actual Close calls happen
// after the lock is released so a hanging backend close cannot stall the
// pool. Force-closing a leased connection does not notify the borrower:
// the lifetime policy wins over an overlong lease, and the borrower's next
// use of the connection will fail. That risk is documented, not guarded.
func (p *AdvancedPool) sweep(ctx context.Context) {
	type victim struct {
		conn   ports.Connection
		reason string
	}
	var victims []victim

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	now := p.now()

	for conn, leasedAt := range p.leased {
		if now.Sub(leasedAt) >= p.maxLifetime {
			delete(p.leased, conn)
			p.obs.ConnectionExpired(conn.ID().String())
			victims = append(victims, victim{conn, "lifetime expired"})
		}
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	kept := p.available[:0]
	for _, conn := range p.available {
		if conn.IsValid(probeCtx) {
			kept = append(kept, conn)
			continue
		}
		p.obs.ConnectionInvalidated(conn.ID().String())
		victims = append(victims, victim{conn, "invalid while idle"})
	}
	cancel()
	p.available = kept
	p.mu.Unlock()

	for _, v := range victims {
		id := v.conn.ID().String()
		if err := v.conn.Close(ctx); err != nil {
			p.log.Warn().Err(err).Str("conn_id", id).Str("reason", v.reason).Msg("closing reaped connection")
		}
		p.obs.ConnectionClosed(id, v.reason)
		p.log.Debug().Str("conn_id", id).Str("reason", v.reason).Msg("connection reaped")
	}
}

// create produces one connection, bounded by the connect timeout.
func (p *AdvancedPool) create(ctx context.Context) (ports.Connection, error) {
	cctx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	conn, err := p.factory.New(cctx)
	if err != nil {
		return nil, err
	}
	p.obs.ConnectionCreated(conn.ID().String())
	return conn, nil
}

var _ ports.Pool = (*AdvancedPool)(nil)
