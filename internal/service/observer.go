package service

import (
	"github.com/rs/zerolog"

	"connection-broker/internal/core/ports"
)

// LogObserver emits pool lifecycle events as structured log lines.
type LogObserver struct {
	log zerolog.Logger
}

var _ ports.PoolObserver = (*LogObserver)(nil)

// NewLogObserver creates an observer writing to the given logger.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) ConnectionCreated(id string) {
	o.log.Debug().Str("conn_id", id).Msg("connection created")
}

func (o *LogObserver) ConnectionClosed(id string, reason string) {
	o.log.Debug().Str("conn_id", id).Str("reason", reason).Msg("connection closed")
}

func (o *LogObserver) ConnectionExpired(id string) {
	o.log.Info().Str("conn_id", id).Msg("connection expired")
}

func (o *LogObserver) ConnectionInvalidated(id string) {
	o.log.Warn().Str("conn_id", id).Msg("connection failed validation on release")
}

func (o *LogObserver) ReplacementFailed(err error) {
	o.log.Warn().Err(err).Msg("replacement connection creation failed")
}
