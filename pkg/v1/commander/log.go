package commander

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender writes messages to log instead of sending them anywhere.
// It's used when no message broker is configured.
type LogSender struct {
	logger *zerolog.Logger
}

// NewLogSender returns new LogSender.
func NewLogSender(logger *zerolog.Logger) LogSender {
	return LogSender{
		logger: logger,
	}
}

// Send logs message.
func (s LogSender) Send(_ context.Context, msg []byte) error {
	s.logger.Info().
		RawJSON("command", msg).
		Msg("report command")

	return nil
}
