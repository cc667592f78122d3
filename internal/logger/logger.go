package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the base logger. The level is debug until the configuration is
// loaded; cmd applies the configured level with SetLevel afterwards.
func New() zerolog.Logger {
	return build(zerolog.DebugLevel)
}

// SetLevel rebuilds the logger at the given level.
func SetLevel(level zerolog.Level) zerolog.Logger {
	return build(level)
}

// Parse maps a configured level string to a zerolog level, falling back to
// info on anything unrecognized.
func Parse(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func build(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}

var Module = fx.Provide(New)
