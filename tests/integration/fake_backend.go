package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"connection-broker/internal/core/ports"
)

// ledger is a shared in-memory key/value store with transactional writes.
// Connections stage writes locally and apply them on Commit, which lets the
// tests assert atomicity and isolation across pooled connections.
type ledger struct {
	mu   sync.Mutex
	data map[string]string
}

func newLedger() *ledger {
	return &ledger{data: make(map[string]string)}
}

func (l *ledger) get(key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.data[key]
	return v, ok
}

func (l *ledger) apply(staged map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range staged {
		l.data[k] = v
	}
}

// txConn is a transactional backend connection over the shared ledger.
type txConn struct {
	id     uuid.UUID
	store  *ledger
	valid  atomic.Bool
	closed atomic.Bool

	mu     sync.Mutex
	staged map[string]string // nil when no transaction is open

	begun      atomic.Int32
	committed  atomic.Int32
	rolledBack atomic.Int32
}

func newTxConn(store *ledger) *txConn {
	c := &txConn{id: uuid.New(), store: store}
	c.valid.Store(true)
	return c
}

func (c *txConn) ID() uuid.UUID { return c.id }

func (c *txConn) IsValid(_ context.Context) bool {
	return c.valid.Load() && !c.closed.Load()
}

func (c *txConn) Close(_ context.Context) error {
	c.closed.Store(true)
	return nil
}

func (c *txConn) Begin(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged != nil {
		return fmt.Errorf("transaction already open on connection %s", c.id)
	}
	c.staged = make(map[string]string)
	c.begun.Add(1)
	return nil
}

func (c *txConn) Commit(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return fmt.Errorf("no open transaction on connection %s", c.id)
	}
	c.store.apply(c.staged)
	c.staged = nil
	c.committed.Add(1)
	return nil
}

func (c *txConn) Rollback(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return fmt.Errorf("no open transaction on connection %s", c.id)
	}
	c.staged = nil
	c.rolledBack.Add(1)
	return nil
}

// set stages a write inside the open transaction.
func (c *txConn) set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return fmt.Errorf("no open transaction on connection %s", c.id)
	}
	c.staged[key] = value
	return nil
}

// txFactory creates txConns against a shared ledger.
type txFactory struct {
	store *ledger

	mu      sync.Mutex
	created []*txConn
}

func newTxFactory(store *ledger) *txFactory {
	return &txFactory{store: store}
}

func (f *txFactory) New(_ context.Context) (ports.Connection, error) {
	conn := newTxConn(f.store)
	f.mu.Lock()
	f.created = append(f.created, conn)
	f.mu.Unlock()
	return conn, nil
}

func (f *txFactory) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

// countingObserver tallies pool lifecycle events.
type countingObserver struct {
	created     atomic.Int32
	closed      atomic.Int32
	expired     atomic.Int32
	invalidated atomic.Int32
	replaceFail atomic.Int32
}

func (o *countingObserver) ConnectionCreated(string)        { o.created.Add(1) }
func (o *countingObserver) ConnectionClosed(string, string) { o.closed.Add(1) }
func (o *countingObserver) ConnectionExpired(string)        { o.expired.Add(1) }
func (o *countingObserver) ConnectionInvalidated(string)    { o.invalidated.Add(1) }
func (o *countingObserver) ReplacementFailed(error)         { o.replaceFail.Add(1) }
