package service

import (
	"context"
	"fmt"

	"connection-broker/internal/core/domain"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"

	"github.com/rs/zerolog"
)

// txCtxKey keys the active transaction binding inside a context.Context.
// The context is the execution-context token: the binding travels with it
// and dies with it, so cleanup holds on every exit path without extra
// bookkeeping, and no binding is ever shared across execution contexts.
type txCtxKey struct{}

// TxContext tracks one logical unit of work: the connection it is bound to
// and its commit/rollback state.
type TxContext struct {
	conn   ports.TxConnection
	status domain.TxStatus
}

// Conn returns the connection the transaction is bound to. Nested work runs
// against this exact connection so all statements share one boundary.
func (t *TxContext) Conn() ports.TxConnection {
	return t.conn
}

// Status returns the current lifecycle state.
func (t *TxContext) Status() domain.TxStatus {
	return t.status
}

// Active reports whether the transaction is still open.
func (t *TxContext) Active() bool {
	return t.status == domain.TxStatusActive
}

// WorkFunc is a unit of work executed inside a transaction. It receives a
// derived context carrying the transaction binding (pass it to nested calls)
// and the bound connection for statement execution.
type WorkFunc func(ctx context.Context, conn ports.TxConnection) error

// TxManager coordinates transactions over a pool. It binds at most one
// active transaction per execution context; nested RunInTransaction calls
// are flattened into the outermost transaction's commit/rollback boundary.
type TxManager struct {
	pool ports.Pool
	log  zerolog.Logger
}

// NewTxManager creates a TxManager on top of pool. The pool's factory must
// produce connections implementing ports.TxConnection.
func NewTxManager(pool ports.Pool, log zerolog.Logger) *TxManager {
	return &TxManager{
		pool: pool,
		log:  log.With().Str("component", "tx_manager").Logger(),
	}
}

// RunInTransaction executes work inside a transaction.
//
// If ctx already carries an active transaction, work runs with that
// transaction's connection directly: no new acquire, no commit or rollback.
// The outer call owns the boundary, so an inner failure propagates outward
// and the outermost caller decides.
//
// Otherwise a connection is acquired (acquire failures propagate untouched,
// so callers can distinguish exhaustion from shutdown), a transaction is
// begun on it, and work runs with a derived context carrying the binding.
// On normal return the transaction commits; on error or panic it rolls back
// best-effort, with a rollback failure logged but never masking the original
// error. The connection is released on every path.
func (m *TxManager) RunInTransaction(ctx context.Context, work WorkFunc) error {
	if tc := CurrentTransaction(ctx); tc != nil && tc.Active() {
		return work(ctx, tc.conn)
	}

	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return err
	}

	txConn, ok := conn.(ports.TxConnection)
	if !ok {
		m.pool.Release(ctx, conn)
		return brokererr.ErrTransactionFailure("begin",
			fmt.Errorf("connection %s does not support transactions", conn.ID()))
	}

	if err := txConn.Begin(ctx); err != nil {
		m.pool.Release(ctx, conn)
		return brokererr.ErrTransactionFailure("begin", err)
	}

	tc := &TxContext{conn: txConn, status: domain.TxStatusActive}
	workCtx := context.WithValue(ctx, txCtxKey{}, tc)

	completed := false
	defer func() {
		if completed {
			return
		}
		// work panicked. Roll back, hand the connection back, re-panic.
		m.rollback(ctx, tc)
		m.pool.Release(ctx, conn)
	}()

	workErr := work(workCtx, txConn)
	completed = true

	if workErr != nil {
		m.rollback(ctx, tc)
		m.pool.Release(ctx, conn)
		return workErr
	}

	if err := txConn.Commit(ctx); err != nil {
		m.pool.Release(ctx, conn)
		return brokererr.ErrTransactionFailure("commit", err)
	}
	tc.status = domain.TxStatusCommitted
	m.pool.Release(ctx, conn)
	return nil
}

// CurrentTransaction returns the transaction bound to the calling execution
// context, or nil when none is active.
func CurrentTransaction(ctx context.Context) *TxContext {
	tc, _ := ctx.Value(txCtxKey{}).(*TxContext)
	return tc
}

// rollback is best-effort: a rollback failure is logged and swallowed so
// the original work error is what the caller sees.
func (m *TxManager) rollback(ctx context.Context, tc *TxContext) {
	if err := tc.conn.Rollback(ctx); err != nil {
		m.log.Warn().Err(err).Str("conn_id", tc.conn.ID().String()).Msg("rollback failed")
	}
	tc.status = domain.TxStatusRolledBack
}
