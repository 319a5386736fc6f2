package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"connection-broker/internal/core/ports"

	"github.com/google/uuid"
)

// fakeConn is a hand-rolled backend connection for pool tests, with
// switchable liveness and a closed flag the tests assert against.
type fakeConn struct {
	id     uuid.UUID
	valid  atomic.Bool
	closed atomic.Bool

	begun      atomic.Int32
	committed  atomic.Int32
	rolledBack atomic.Int32
}

func newFakeConn() *fakeConn {
	c := &fakeConn{id: uuid.New()}
	c.valid.Store(true)
	return c
}

func (c *fakeConn) ID() uuid.UUID                    { return c.id }
func (c *fakeConn) IsValid(_ context.Context) bool   { return c.valid.Load() && !c.closed.Load() }
func (c *fakeConn) Close(_ context.Context) error    { c.closed.Store(true); return nil }
func (c *fakeConn) Begin(_ context.Context) error    { c.begun.Add(1); return nil }
func (c *fakeConn) Commit(_ context.Context) error   { c.committed.Add(1); return nil }
func (c *fakeConn) Rollback(_ context.Context) error { c.rolledBack.Add(1); return nil }

// fakeFactory produces fakeConns and optionally fails the next N creations.
type fakeFactory struct {
	mu       sync.Mutex
	created  []*fakeConn
	failNext int
}

func (f *fakeFactory) New(_ context.Context) (ports.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext > 0 {
		f.failNext--
		return nil, fmt.Errorf("backend refused connection")
	}
	conn := newFakeConn()
	f.created = append(f.created, conn)
	return conn, nil
}

func (f *fakeFactory) failNextCreations(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = n
}

func (f *fakeFactory) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeFactory) allClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.created {
		if !c.closed.Load() {
			return false
		}
	}
	return true
}

// failAfterFactory succeeds for the first N creations, then fails forever.
type failAfterFactory struct {
	mu      sync.Mutex
	succeed int
	created []*fakeConn
}

func (f *failAfterFactory) New(_ context.Context) (ports.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.created) >= f.succeed {
		return nil, fmt.Errorf("backend refused connection")
	}
	conn := newFakeConn()
	f.created = append(f.created, conn)
	return conn, nil
}

func (f *failAfterFactory) allCreatedClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.created {
		if !c.closed.Load() {
			return false
		}
	}
	return true
}

// recordingObserver counts pool lifecycle events.
type recordingObserver struct {
	mu           sync.Mutex
	created      []string
	closedConns  map[string]string // id -> reason
	expired      []string
	invalidated  []string
	replFailures []error
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{closedConns: make(map[string]string)}
}

func (o *recordingObserver) ConnectionCreated(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created = append(o.created, id)
}

func (o *recordingObserver) ConnectionClosed(id string, reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closedConns[id] = reason
}

func (o *recordingObserver) ConnectionExpired(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.expired = append(o.expired, id)
}

func (o *recordingObserver) ConnectionInvalidated(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.invalidated = append(o.invalidated, id)
}

func (o *recordingObserver) ReplacementFailed(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.replFailures = append(o.replFailures, err)
}

func (o *recordingObserver) replacementFailures() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.replFailures)
}

func (o *recordingObserver) expiredCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.expired)
}
