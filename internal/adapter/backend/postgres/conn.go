package postgres

import (
	"context"
	"fmt"

	"connection-broker/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// PgxConn is the subset of *pgx.Conn the adapter uses. pgxmock's connection
// interface satisfies it in tests.
type PgxConn interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a ports.TxConnection backed by a single PostgreSQL connection.
// A Conn is owned by one borrower at a time (the pool enforces it), so the
// transaction handle needs no locking.
type Conn struct {
	id   uuid.UUID
	conn PgxConn
	tx   pgx.Tx
	log  zerolog.Logger
}

// NewConn wraps an established PostgreSQL connection.
func NewConn(conn PgxConn, log zerolog.Logger) *Conn {
	id := uuid.New()
	return &Conn{
		id:   id,
		conn: conn,
		log:  log.With().Str("conn_id", id.String()).Logger(),
	}
}

// ID identifies the connection in logs and stats.
func (c *Conn) ID() uuid.UUID {
	return c.id
}

// IsValid reports whether the server still answers a ping.
func (c *Conn) IsValid(ctx context.Context) bool {
	return c.conn.Ping(ctx) == nil
}

// Close terminates the connection.
func (c *Conn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// Begin opens a transaction on this connection.
func (c *Conn) Begin(ctx context.Context) error {
	if c.tx != nil {
		return fmt.Errorf("transaction already open on connection %s", c.id)
	}
	tx, err := c.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	c.tx = tx
	return nil
}

// Commit commits the open transaction.
func (c *Conn) Commit(ctx context.Context) error {
	if c.tx == nil {
		return fmt.Errorf("no open transaction on connection %s", c.id)
	}
	err := c.tx.Commit(ctx)
	c.tx = nil
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback aborts the open transaction.
func (c *Conn) Rollback(ctx context.Context) error {
	if c.tx == nil {
		return fmt.Errorf("no open transaction on connection %s", c.id)
	}
	err := c.tx.Rollback(ctx)
	c.tx = nil
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// Exec runs a statement, routed through the open transaction when one exists.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if c.tx != nil {
		return c.tx.Exec(ctx, sql, args...)
	}
	return c.conn.Exec(ctx, sql, args...)
}

// Query runs a query, routed through the open transaction when one exists.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if c.tx != nil {
		return c.tx.Query(ctx, sql, args...)
	}
	return c.conn.Query(ctx, sql, args...)
}

// QueryRow runs a single-row query, routed through the open transaction
// when one exists.
func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if c.tx != nil {
		return c.tx.QueryRow(ctx, sql, args...)
	}
	return c.conn.QueryRow(ctx, sql, args...)
}

var _ ports.TxConnection = (*Conn)(nil)
