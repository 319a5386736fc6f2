package service

import (
	"context"
	"testing"
	"time"

	"connection-broker/config"
	"connection-broker/pkg/brokererr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietPoolConfig keeps the reaper effectively off (period = 1h) so tests
// drive sweeps by hand with a controlled clock.
func quietPoolConfig(min, max int) config.PoolConfig {
	return config.PoolConfig{
		MinSize:        min,
		MaxSize:        max,
		ConnectTimeout: testConnectTimeout,
		IdleTimeout:    time.Hour,
		MaxLifetime:    time.Minute,
	}
}

func newAdvancedPool(t *testing.T, cfg config.PoolConfig) (*AdvancedPool, *fakeFactory, *recordingObserver) {
	t.Helper()
	factory := &fakeFactory{}
	obs := newRecordingObserver()
	pool, err := NewAdvancedPool(context.Background(), "test", factory, cfg, obs, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close(context.Background()) })
	return pool, factory, obs
}

func TestAdvancedPool_EagerMinimumFill(t *testing.T) {
	pool, factory, _ := newAdvancedPool(t, quietPoolConfig(3, 5))

	assert.Equal(t, 3, factory.createdCount())
	stats := pool.Stats()
	assert.Equal(t, 0, stats.Active)
	assert.Equal(t, 3, stats.Available)
}

func TestAdvancedPool_EagerFillToleratesFailures(t *testing.T) {
	factory := &fakeFactory{}
	factory.failNextCreations(2)

	pool, err := NewAdvancedPool(context.Background(), "test", factory, quietPoolConfig(3, 5), nil, zerolog.Nop())
	require.NoError(t, err, "individual eager creation failures must not fail construction")
	defer pool.Close(context.Background())

	assert.Equal(t, 1, pool.Stats().Available, "pool starts smaller")
}

func TestAdvancedPool_InvalidSizingRejected(t *testing.T) {
	cfg := quietPoolConfig(5, 2)
	_, err := NewAdvancedPool(context.Background(), "bad", &fakeFactory{}, cfg, nil, zerolog.Nop())
	require.Error(t, err)
}

func TestAdvancedPool_GrowsUpToMax(t *testing.T) {
	pool, factory, _ := newAdvancedPool(t, quietPoolConfig(1, 3))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := pool.Acquire(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, factory.createdCount())
	assert.Equal(t, 3, pool.Stats().Active)
}

func TestAdvancedPool_ExhaustedFailsImmediately(t *testing.T) {
	// Acquire at capacity fails rather than waiting for a release. The
	// non-blocking contract is deliberate: callers own their retry policy,
	// and tests as well as production code rely on immediate failure.
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(0, 2))
	ctx := context.Background()

	_, err := pool.Acquire(ctx)
	require.NoError(t, err)
	_, err = pool.Acquire(ctx)
	require.NoError(t, err)

	start := time.Now()
	conn, err := pool.Acquire(ctx)
	elapsed := time.Since(start)

	assert.Nil(t, conn)
	require.Error(t, err)
	assert.True(t, brokererr.IsPoolExhausted(err))
	assert.Less(t, elapsed, 100*time.Millisecond, "exhausted acquire must not block")
}

func TestAdvancedPool_ReleaseFreesCapacity(t *testing.T) {
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(0, 1))
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)

	_, err = pool.Acquire(ctx)
	require.Error(t, err)

	pool.Release(ctx, conn)

	again, err := pool.Acquire(ctx)
	require.NoError(t, err)
	assert.Same(t, conn, again)
}

func TestAdvancedPool_CapacityInvariantUnderChurn(t *testing.T) {
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(2, 4))
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			assert.True(t, brokererr.IsPoolExhausted(err))
		} else if i%3 == 0 {
			pool.Release(ctx, conn)
		}
		stats := pool.Stats()
		assert.LessOrEqual(t, stats.Tracked(), 4, "available + leased must never exceed max")
	}
}

func TestAdvancedPool_SweepExpiresLeasedAtMaxLifetime(t *testing.T) {
	pool, _, obs := newAdvancedPool(t, quietPoolConfig(0, 2))
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	leasedAt := time.Now()

	// Just before the lifetime boundary: nothing expires.
	pool.now = func() time.Time { return leasedAt.Add(pool.maxLifetime - time.Millisecond) }
	pool.sweep(ctx)
	assert.Equal(t, 1, pool.Stats().Active, "sweep before T+L must not expire the lease")
	assert.False(t, conn.(*fakeConn).closed.Load())

	// At the boundary: the leased connection is force-closed and dropped.
	pool.now = func() time.Time { return leasedAt.Add(pool.maxLifetime) }
	pool.sweep(ctx)
	assert.Equal(t, 0, pool.Stats().Active)
	assert.True(t, conn.(*fakeConn).closed.Load())
	assert.Equal(t, 1, obs.expiredCount())

	// The borrower still holds the handle; the pool has already moved on.
	// Releasing it afterwards is a no-op, not a crash.
	pool.Release(ctx, conn)
	assert.Equal(t, 0, pool.Stats().Available)
}

func TestAdvancedPool_SweepRacesLiveBorrower(t *testing.T) {
	// A leased connection past its lifetime is force-closed even while the
	// borrower is mid-use. There is no notification signal; the borrower
	// finds out when its next operation fails. This documents the risk.
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(0, 1))
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	fc := conn.(*fakeConn)

	pool.now = func() time.Time { return time.Now().Add(2 * pool.maxLifetime) }
	pool.sweep(ctx)

	assert.True(t, fc.closed.Load(), "pool closed the connection out from under the borrower")
	assert.False(t, fc.IsValid(ctx), "borrower sees an invalid connection on next use")
}

func TestAdvancedPool_SweepEvictsInvalidIdle(t *testing.T) {
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(2, 4))
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	fc := conn.(*fakeConn)
	pool.Release(ctx, conn)
	require.Equal(t, 2, pool.Stats().Available)

	fc.valid.Store(false)
	pool.sweep(ctx)

	assert.Equal(t, 1, pool.Stats().Available, "invalid idle connection evicted")
	assert.True(t, fc.closed.Load())
}

func TestAdvancedPool_ReaperRunsPeriodically(t *testing.T) {
	factory := &fakeFactory{}
	cfg := config.PoolConfig{
		MinSize:        1,
		MaxSize:        2,
		ConnectTimeout: testConnectTimeout,
		IdleTimeout:    10 * time.Millisecond,
		MaxLifetime:    time.Hour,
	}
	pool, err := NewAdvancedPool(context.Background(), "test", factory, cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close(context.Background())

	factory.mu.Lock()
	fc := factory.created[0]
	factory.mu.Unlock()
	fc.valid.Store(false)

	require.Eventually(t, func() bool {
		return fc.closed.Load()
	}, 2*time.Second, 5*time.Millisecond, "reaper should evict the invalid idle connection on its own")
}

func TestAdvancedPool_CloseStopsReaperDeterministically(t *testing.T) {
	cfg := config.PoolConfig{
		MinSize:        0,
		MaxSize:        2,
		ConnectTimeout: testConnectTimeout,
		IdleTimeout:    5 * time.Millisecond,
		MaxLifetime:    time.Hour,
	}
	pool, err := NewAdvancedPool(context.Background(), "test", &fakeFactory{}, cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, pool.Close(context.Background()))

	// The reaper goroutine has exited by the time Close returns.
	select {
	case <-pool.done:
	default:
		t.Fatal("reaper still running after Close returned")
	}
}

func TestAdvancedPool_CloseClosesLeasedAndAvailable(t *testing.T) {
	pool, factory, _ := newAdvancedPool(t, quietPoolConfig(2, 3))
	ctx := context.Background()

	_, err := pool.Acquire(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.Close(ctx))
	assert.True(t, factory.allClosed())

	_, err = pool.Acquire(ctx)
	require.Error(t, err)
	assert.True(t, brokererr.IsPoolClosed(err))
}

func TestAdvancedPool_CloseIsIdempotent(t *testing.T) {
	pool, _, _ := newAdvancedPool(t, quietPoolConfig(0, 1))
	require.NoError(t, pool.Close(context.Background()))
	require.NoError(t, pool.Close(context.Background()))
}

func TestAdvancedPool_InvalidReleaseReplacesWithinCapacity(t *testing.T) {
	pool, factory, obs := newAdvancedPool(t, quietPoolConfig(1, 2))
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.(*fakeConn).valid.Store(false)
	pool.Release(ctx, conn)

	assert.Equal(t, 2, factory.createdCount())
	assert.Equal(t, 1, pool.Stats().Available)

	// And a failed replacement is swallowed but observable.
	conn2, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn2.(*fakeConn).valid.Store(false)
	factory.failNextCreations(1)
	pool.Release(ctx, conn2)
	assert.Equal(t, 1, obs.replacementFailures())
}
