package game

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. The console doubles as the HUD, so
// human-readable output is the point.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}
