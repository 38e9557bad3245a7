package rgbbuild

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the console logger for the CLI. Unknown level strings
// fall back to info rather than failing the run.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
