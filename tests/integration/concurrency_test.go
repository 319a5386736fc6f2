package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connection-broker/config"
	"connection-broker/internal/core/ports"
	"connection-broker/internal/service"
	"connection-broker/pkg/brokererr"
)

// leaseTracker records which connections are out at any moment and fails the
// test on a double lease or a capacity breach.
type leaseTracker struct {
	t   *testing.T
	max int

	mu     sync.Mutex
	leased map[string]struct{}
}

func newLeaseTracker(t *testing.T, max int) *leaseTracker {
	return &leaseTracker{t: t, max: max, leased: make(map[string]struct{})}
}

func (lt *leaseTracker) checkout(conn ports.Connection) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	id := conn.ID().String()
	if _, dup := lt.leased[id]; dup {
		lt.t.Errorf("connection %s leased twice", id)
	}
	lt.leased[id] = struct{}{}
	if len(lt.leased) > lt.max {
		lt.t.Errorf("capacity breached: %d connections out, max %d", len(lt.leased), lt.max)
	}
}

func (lt *leaseTracker) checkin(conn ports.Connection) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	delete(lt.leased, conn.ID().String())
}

// TestConcurrentAcquireRelease hammers an elastic pool from many goroutines
// and verifies no connection is ever leased to two callers and the tracked
// total never exceeds the maximum.
func TestConcurrentAcquireRelease(t *testing.T) {
	ctx := context.Background()
	factory := newTxFactory(newLedger())
	obs := &countingObserver{}

	cfg := config.PoolConfig{
		MinSize:        2,
		MaxSize:        8,
		ConnectTimeout: 2 * time.Second,
		IdleTimeout:    time.Hour, // keep the reaper quiet
		MaxLifetime:    time.Hour,
	}

	pool, err := service.NewAdvancedPool(ctx, "elastic", factory, cfg, obs, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close(ctx)

	tracker := newLeaseTracker(t, cfg.MaxSize)

	const (
		workers    = 32
		iterations = 50
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				conn, err := pool.Acquire(ctx)
				if err != nil {
					// Exhaustion is a legitimate answer under contention.
					if !brokererr.IsPoolExhausted(err) {
						t.Errorf("unexpected acquire error: %v", err)
						return
					}
					continue
				}
				tracker.checkout(conn)
				time.Sleep(time.Millisecond)
				tracker.checkin(conn)
				pool.Release(ctx, conn)
			}
		}()
	}
	wg.Wait()

	stats := pool.Stats()
	assert.Equal(t, 0, stats.Active)
	assert.LessOrEqual(t, stats.Tracked(), cfg.MaxSize)
	assert.LessOrEqual(t, factory.createdCount(), cfg.MaxSize)
}

// TestConcurrentTransactions runs transactional work from many goroutines
// against a small fixed pool and checks every commit landed.
func TestConcurrentTransactions(t *testing.T) {
	ctx := context.Background()
	store := newLedger()
	factory := newTxFactory(store)

	pool, err := service.NewBasicPool(ctx, "fixed", factory, 4, 2*time.Second, ports.NopObserver{}, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close(ctx)

	mgr := service.NewTxManager(pool, zerolog.Nop())

	const workers = 16

	var wg sync.WaitGroup
	committed := make([]bool, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "worker:" + string(rune('a'+n))
			err := mgr.RunInTransaction(ctx, func(ctx context.Context, conn ports.TxConnection) error {
				return conn.(*txConn).set(key, "done")
			})
			committed[n] = err == nil
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		key := "worker:" + string(rune('a'+w))
		if committed[w] {
			_, ok := store.get(key)
			assert.True(t, ok, "committed write for %s missing from backend", key)
		}
	}

	// The fixed pool creates extra connections under contention; everything
	// that went out must be back.
	assert.Equal(t, 0, pool.Stats().Active)
	assert.GreaterOrEqual(t, pool.Stats().Available, 4)
}
