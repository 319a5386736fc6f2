package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"connection-broker/config"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"
)

// Factory creates pooled Redis connections.
type Factory struct {
	cfg config.RedisConfig
	log zerolog.Logger
}

var _ ports.Factory = (*Factory)(nil)

// NewFactory creates a Redis connection factory.
func NewFactory(cfg config.RedisConfig, log zerolog.Logger) *Factory {
	return &Factory{cfg: cfg, log: log}
}

// New dials Redis and verifies connectivity before handing the connection
// to the pool. PoolSize is pinned to 1 so each pooled connection maps to a
// single physical link.
func (f *Factory) New(ctx context.Context) (ports.Connection, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     f.cfg.Addr(),
		Password: f.cfg.Password,
		DB:       f.cfg.DB,
		PoolSize: 1,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, brokererr.ErrCreationFailed(err)
	}

	conn := NewConn(client, f.log)
	f.log.Debug().
		Str("conn_id", conn.ID().String()).
		Str("addr", f.cfg.Addr()).
		Int("db", f.cfg.DB).
		Msg("Redis connection established")
	return conn, nil
}
