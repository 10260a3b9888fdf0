// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/funkybob/pgcast"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom pgcast
// logging fascade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "pgcast").Logger(),
	}
}

func (pl *Logger) Log(ctx context.Context, level pgcast.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case pgcast.LogLevelNone:
		zlevel = zerolog.NoLevel
	case pgcast.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case pgcast.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case pgcast.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case pgcast.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	pclog := pl.logger.With().Fields(data).Logger()
	pclog.WithLevel(zlevel).Msg(msg)
}
