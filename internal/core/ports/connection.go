package ports

import (
	"context"

	"github.com/google/uuid"
)

// Connection is an opaque backend resource handle. It is owned exclusively
// by whichever pool slot currently holds it; ownership transfers to the
// caller while leased and back to the pool on release.
type Connection interface {
	// ID identifies the connection in logs, observer events and stats.
	ID() uuid.UUID
	// IsValid reports whether the underlying resource is still live.
	IsValid(ctx context.Context) bool
	// Close releases the underlying resource. Close is terminal: a closed
	// connection is never re-admitted to a pool.
	Close(ctx context.Context) error
}

// TxConnection is a Connection whose backend supports transaction
// boundaries. The transaction manager requires this capability; pool-only
// backends (e.g. the redis adapter) need not provide it.
type TxConnection interface {
	Connection
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Factory produces backend connections. Implementations must honor ctx
// cancellation: the pool bounds every call with its connect timeout, and an
// exceeded deadline is an ordinary creation failure.
type Factory interface {
	New(ctx context.Context) (Connection, error)
}

// FactoryFunc adapts a plain function to a Factory.
type FactoryFunc func(ctx context.Context) (Connection, error)

func (f FactoryFunc) New(ctx context.Context) (Connection, error) {
	return f(ctx)
}
