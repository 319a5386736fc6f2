package redis

import (
	"context"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"connection-broker/internal/core/ports"
)

// Conn is a pooled Redis connection. Each Conn owns its own goredis.Client
// configured with a single-connection internal pool, so liveness probes and
// commands observe one physical link.
type Conn struct {
	id     uuid.UUID
	client *goredis.Client
	log    zerolog.Logger
}

var _ ports.Connection = (*Conn)(nil)

// NewConn wraps an established Redis client as a pooled connection.
func NewConn(client *goredis.Client, log zerolog.Logger) *Conn {
	id := uuid.New()
	return &Conn{
		id:     id,
		client: client,
		log:    log.With().Str("conn_id", id.String()).Logger(),
	}
}

// ID returns the connection's unique identity.
func (c *Conn) ID() uuid.UUID {
	return c.id
}

// IsValid reports whether the server still answers a PING.
func (c *Conn) IsValid(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

// Close releases the underlying client.
func (c *Conn) Close(ctx context.Context) error {
	return c.client.Close()
}

// Client exposes the underlying Redis client for command execution.
func (c *Conn) Client() *goredis.Client {
	return c.client
}
