package service

import (
	"context"
	"fmt"

	"connection-broker/internal/core/ports"
)

// PoolHealth implements ports.HealthChecker over a connection pool.
// It borrows a connection, probes it, and returns it.
type PoolHealth struct {
	name string
	pool ports.Pool
}

var _ ports.HealthChecker = (*PoolHealth)(nil)

// NewPoolHealth creates a health checker for the named pool.
func NewPoolHealth(name string, pool ports.Pool) *PoolHealth {
	return &PoolHealth{name: name, pool: pool}
}

// Ping acquires a connection and validates it against the backend.
func (h *PoolHealth) Ping(ctx context.Context) error {
	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring from pool %s: %w", h.name, err)
	}
	defer h.pool.Release(ctx, conn)

	if !conn.IsValid(ctx) {
		return fmt.Errorf("pool %s: connection %s failed liveness probe", h.name, conn.ID())
	}
	return nil
}

// Name returns the pool name.
func (h *PoolHealth) Name() string {
	return h.name
}

// TxHealth implements ports.HealthChecker by running an empty transaction,
// exercising the full acquire, begin, commit, release path.
type TxHealth struct {
	name string
	mgr  *TxManager
}

var _ ports.HealthChecker = (*TxHealth)(nil)

// NewTxHealth creates a transaction-level health checker.
func NewTxHealth(name string, mgr *TxManager) *TxHealth {
	return &TxHealth{name: name, mgr: mgr}
}

// Ping opens and commits a transaction on a pooled connection.
func (h *TxHealth) Ping(ctx context.Context) error {
	return h.mgr.RunInTransaction(ctx, func(ctx context.Context, conn ports.TxConnection) error {
		if !conn.IsValid(ctx) {
			return fmt.Errorf("connection %s failed liveness probe", conn.ID())
		}
		return nil
	})
}

// Name returns the checker name.
func (h *TxHealth) Name() string {
	return h.name
}
