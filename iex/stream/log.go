package stream

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type zerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*zerologLogger)(nil)

// ZerologLogger adapts a zerolog logger to Logger.
func ZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{logger: l}
}

func (z *zerologLogger) Infof(format string, v ...interface{}) {
	z.logger.Info().Msgf(format, v...)
}

func (z *zerologLogger) Warnf(format string, v ...interface{}) {
	z.logger.Warn().Msgf(format, v...)
}

func (z *zerologLogger) Errorf(format string, v ...interface{}) {
	z.logger.Error().Msgf(format, v...)
}

// newDefaultLog only prints errors, to stderr.
func newDefaultLog() Logger {
	l := zerolog.New(os.Stderr).
		Level(zerolog.ErrorLevel).
		With().
		Timestamp().
		Str("component", "iexstream").
		Logger()
	return ZerologLogger(l)
}
