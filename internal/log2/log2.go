// Package log2 configures the zerolog global logger for the draughts binaries.
package log2

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure installs a console logger on stderr at the given level
// ("debug", "info", "warn", ...). An unknown level falls back to info.
func Configure(level string) {
	ConfigureWriter(os.Stderr, level)
}

// ConfigureWriter is Configure with an explicit destination.
func ConfigureWriter(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

func Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}
