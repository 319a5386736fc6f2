package postgres

import (
	"context"

	"connection-broker/config"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Factory produces PostgreSQL-backed connections. pgx.Connect honors the
// context deadline, so the pool's connect timeout bounds every attempt.
type Factory struct {
	cfg config.DatabaseConfig
	log zerolog.Logger
}

// NewFactory creates a connection factory for the configured database.
func NewFactory(cfg config.DatabaseConfig, log zerolog.Logger) *Factory {
	return &Factory{cfg: cfg, log: log}
}

// New establishes one connection.
func (f *Factory) New(ctx context.Context) (ports.Connection, error) {
	conn, err := pgx.Connect(ctx, f.cfg.DSN())
	if err != nil {
		return nil, brokererr.ErrCreationFailed(err)
	}

	wrapped := NewConn(conn, f.log)
	f.log.Debug().
		Str("conn_id", wrapped.ID().String()).
		Str("host", f.cfg.Host).
		Str("dbname", f.cfg.DBName).
		Msg("postgres connection established")
	return wrapped, nil
}

var _ ports.Factory = (*Factory)(nil)
